package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/internal/store"
	"github.com/aidocs/doc-browser/models"
)

// commentService is the concrete implementation of CommentService.
//
// Ownership enforcement largely rides on the repository keying: edits
// and deletes pass the acting user's id down into the WHERE clause, so
// "not yours" and "does not exist" are the same outcome by construction.
type commentService struct {
	commentRepository store.CommentRepository
	logger            *logger.Logger
}

// NewCommentService constructs a CommentService over the given repository.
func NewCommentService(comments store.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: comments,
		logger:            logger,
	}
}

// CreateComment validates and persists a new comment. The content is
// trimmed before storage; a body that is empty after trimming is
// rejected with [ErrEmptyCommentContent] and never reaches the store.
func (c *commentService) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	comment.Content = strings.TrimSpace(comment.Content)
	if comment.Content == "" {
		log.Warn().Int64("user_id", comment.UserID).Msg("rejected empty comment")
		return models.Comment{}, ErrEmptyCommentContent
	}

	saved, err := c.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Int64("document_id", comment.DocumentID).Msg("comment creation failed")
		return models.Comment{}, fmt.Errorf("comment creation failed: %w", err)
	}

	return saved, nil
}

// CommentsForDocument lists a document's comments, newest first.
func (c *commentService) CommentsForDocument(ctx context.Context, documentID int64) ([]models.Comment, error) {
	comments, err := c.commentRepository.GetCommentsForDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("comment listing failed: %w", err)
	}

	return comments, nil
}

// UserCommentsForDocument lists one author's comments on a document.
func (c *commentService) UserCommentsForDocument(ctx context.Context, userID, documentID int64) ([]models.Comment, error) {
	comments, err := c.commentRepository.GetUserCommentsForDocument(ctx, userID, documentID)
	if err != nil {
		return nil, fmt.Errorf("comment listing failed: %w", err)
	}

	return comments, nil
}

// EditComment changes the content of the caller's own comment and stamps
// updated_at. The repository reports a non-owner attempt as
// store.ErrCommentNotFound, which is exactly what the handler surfaces.
func (c *commentService) EditComment(ctx context.Context, commentID, userID int64, content string) error {
	log := logger.FromContext(ctx)

	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyCommentContent
	}

	if err := c.commentRepository.UpdateCommentContent(ctx, commentID, userID, content); err != nil {
		log.Err(err).Int64("comment_id", commentID).Int64("user_id", userID).Msg("comment edit failed")
		return fmt.Errorf("comment edit failed: %w", err)
	}

	return nil
}

// DeleteComment removes the caller's own comment, with the same
// not-found-or-not-permitted semantics as EditComment.
func (c *commentService) DeleteComment(ctx context.Context, commentID, userID int64) error {
	log := logger.FromContext(ctx)

	if err := c.commentRepository.DeleteComment(ctx, commentID, userID); err != nil {
		log.Err(err).Int64("comment_id", commentID).Int64("user_id", userID).Msg("comment deletion failed")
		return fmt.Errorf("comment deletion failed: %w", err)
	}

	return nil
}

// ResolveComment marks a comment resolved on behalf of any authenticated
// user. The asymmetry with EditComment/DeleteComment is intentional and
// must stay: reviewers resolve threads they did not start.
func (c *commentService) ResolveComment(ctx context.Context, commentID int64) error {
	log := logger.FromContext(ctx)

	if err := c.commentRepository.ResolveComment(ctx, commentID); err != nil {
		log.Err(err).Int64("comment_id", commentID).Msg("comment resolution failed")
		return fmt.Errorf("comment resolution failed: %w", err)
	}

	return nil
}
