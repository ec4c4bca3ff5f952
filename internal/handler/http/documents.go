package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/internal/store"
	"github.com/aidocs/doc-browser/internal/utils"
)

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	documents, err := h.services.DocumentService.ListDocuments(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDocuments").Msg("error listing documents")
		http.Error(w, "error listing documents", statusFromError(err))
		return
	}

	utils.WriteJSON(w, documents, http.StatusOK)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")
	date := chi.URLParam(r, "date")

	document, err := h.services.DocumentService.GetDocument(ctx, name, date)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDocumentNotFound):
			log.Err(err).Str("name", name).Str("date", date).Msg("document not found")
			http.Error(w, "document not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.getDocument").Msg("error getting document")
			http.Error(w, "error getting document", statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, document, http.StatusOK)
}
