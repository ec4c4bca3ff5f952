package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/internal/service"
	"github.com/aidocs/doc-browser/internal/store"
	"github.com/aidocs/doc-browser/internal/utils"
	"github.com/aidocs/doc-browser/models"
)

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createComment").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	var request models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createComment").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	document, err := h.services.DocumentService.GetDocument(ctx, chi.URLParam(r, "name"), chi.URLParam(r, "date"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.createComment").Msg("error getting document for comment")
		http.Error(w, "document not found", statusFromError(err))
		return
	}

	comment, err := h.services.CommentService.CreateComment(ctx, models.Comment{
		UserID:     userID,
		DocumentID: document.DocumentID,
		Content:    request.Content,
		ElementID:  request.ElementID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCommentContent):
			log.Err(err).Msg("empty comment content")
			http.Error(w, "comment content must not be empty", http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("func", "*Handler.createComment").Msg("error creating comment")
			http.Error(w, "error creating comment", statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	document, err := h.services.DocumentService.GetDocument(ctx, chi.URLParam(r, "name"), chi.URLParam(r, "date"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.listComments").Msg("error getting document for comments")
		http.Error(w, "document not found", statusFromError(err))
		return
	}

	var comments []models.Comment
	if r.URL.Query().Get("author") == "me" {
		userID, found := utils.GetUserIDFromContext(ctx)
		if !found {
			log.Error().Str("func", "*Handler.listComments").Msg("no user ID was given")
			http.Error(w, "no user ID was given", http.StatusUnauthorized)
			return
		}
		comments, err = h.services.CommentService.UserCommentsForDocument(ctx, userID, document.DocumentID)
	} else {
		comments, err = h.services.CommentService.CommentsForDocument(ctx, document.DocumentID)
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.listComments").Msg("error listing comments")
		http.Error(w, "error listing comments", statusFromError(err))
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateComment").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	commentID, err := commentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid comment id")
		http.Error(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	var request models.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateComment").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.CommentService.EditComment(ctx, commentID, userID, request.Content); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCommentContent):
			log.Err(err).Msg("empty comment content")
			http.Error(w, "comment content must not be empty", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrCommentNotFound):
			// not-found and not-owner are deliberately indistinguishable
			log.Err(err).Int64("comment_id", commentID).Msg("comment not found")
			http.Error(w, "comment not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.updateComment").Msg("error updating comment")
			http.Error(w, "error updating comment", statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteComment").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	commentID, err := commentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid comment id")
		http.Error(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	if err := h.services.CommentService.DeleteComment(ctx, commentID, userID); err != nil {
		switch {
		case errors.Is(err, store.ErrCommentNotFound):
			log.Err(err).Int64("comment_id", commentID).Msg("comment not found")
			http.Error(w, "comment not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.deleteComment").Msg("error deleting comment")
			http.Error(w, "error deleting comment", statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resolveComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	commentID, err := commentIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid comment id")
		http.Error(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	if err := h.services.CommentService.ResolveComment(ctx, commentID); err != nil {
		switch {
		case errors.Is(err, store.ErrCommentNotFound):
			log.Err(err).Int64("comment_id", commentID).Msg("comment not found")
			http.Error(w, "comment not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.resolveComment").Msg("error resolving comment")
			http.Error(w, "error resolving comment", statusFromError(err))
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func commentIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
