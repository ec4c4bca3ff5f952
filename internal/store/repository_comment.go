package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/models"
)

// commentRepository is the SQL-backed implementation of
// [CommentRepository]. Owner-restricted mutations key their WHERE clause
// on (comment_id, user_id): the database never reveals whether a failed
// mutation targeted a missing comment or someone else's.
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateComment persists a new comment and returns it with
// server-assigned fields. A foreign-key violation (the document or user
// row disappeared between authorization and insert) is reported as
// [ErrDocumentNotFound].
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createComment,
		comment.UserID, comment.DocumentID, comment.Content,
		toNullString(comment.ElementID), time.Now().UTC())

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error: row is nil")
		if isForeignKeyViolation(err) {
			return models.Comment{}, ErrDocumentNotFound
		}
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanCommentRow(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Comment{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error: scanning error")
		return models.Comment{}, err
	}

	return saved, nil
}

// GetCommentsForDocument returns all comments on a document, newest first.
func (r *commentRepository) GetCommentsForDocument(ctx context.Context, documentID int64) ([]models.Comment, error) {
	return r.listComments(ctx, documentID, nil)
}

// GetUserCommentsForDocument returns one author's comments on a document,
// newest first.
func (r *commentRepository) GetUserCommentsForDocument(ctx context.Context, userID, documentID int64) ([]models.Comment, error) {
	return r.listComments(ctx, documentID, &userID)
}

func (r *commentRepository) listComments(ctx context.Context, documentID int64, userID *int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCommentsQuery(documentID, userID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.listComments").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.listComments").Msg("error executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		comment, err := scanCommentRows(rows)
		if err != nil {
			log.Err(err).Str("func", "*commentRepository.listComments").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// UpdateCommentContent replaces the content of the caller's own comment
// and stamps updated_at. Zero affected rows — the comment does not exist
// or belongs to another user — surfaces as [ErrCommentNotFound].
func (r *commentRepository) UpdateCommentContent(ctx context.Context, commentID, userID int64, content string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCommentQuery(commentID, userID, content, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateCommentContent").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, "*commentRepository.UpdateCommentContent", query, args)
}

// DeleteComment removes the caller's own comment. Same keying and same
// [ErrCommentNotFound] semantics as UpdateCommentContent.
func (r *commentRepository) DeleteComment(ctx context.Context, commentID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCommentQuery(commentID, userID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, "*commentRepository.DeleteComment", query, args)
}

// ResolveComment marks any comment resolved, regardless of author.
func (r *commentRepository) ResolveComment(ctx context.Context, commentID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildResolveCommentQuery(commentID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ResolveComment").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, "*commentRepository.ResolveComment", query, args)
}

// execExpectingRow runs a DML statement that must touch exactly one row;
// zero affected rows maps to [ErrCommentNotFound].
func (r *commentRepository) execExpectingRow(ctx context.Context, fn, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// scanCommentRow reads the canonical comments column set from a single row.
func scanCommentRow(row *sql.Row) (models.Comment, error) {
	var comment models.Comment
	var elementID sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(&comment.CommentID, &comment.UserID, &comment.DocumentID,
		&comment.Content, &elementID, &comment.CreatedAt, &updatedAt, &comment.IsResolved)
	if err != nil {
		return models.Comment{}, err
	}

	comment.ElementID = elementID.String
	comment.UpdatedAt = updatedAt.Time
	return comment, nil
}

// scanCommentRows is the *sql.Rows twin of scanCommentRow.
func scanCommentRows(rows *sql.Rows) (models.Comment, error) {
	var comment models.Comment
	var elementID sql.NullString
	var updatedAt sql.NullTime

	err := rows.Scan(&comment.CommentID, &comment.UserID, &comment.DocumentID,
		&comment.Content, &elementID, &comment.CreatedAt, &updatedAt, &comment.IsResolved)
	if err != nil {
		return models.Comment{}, err
	}

	comment.ElementID = elementID.String
	comment.UpdatedAt = updatedAt.Time
	return comment, nil
}
