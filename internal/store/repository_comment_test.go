package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"

	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/models"
)

func newTestCommentRepo(t *testing.T) (*commentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &commentRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func commentTestRows(comments ...models.Comment) *sqlmock.Rows {
	rows := sqlmock.NewRows(commentColumns)
	for _, c := range comments {
		var updatedAt any
		if !c.UpdatedAt.IsZero() {
			updatedAt = c.UpdatedAt
		}
		rows.AddRow(c.CommentID, c.UserID, c.DocumentID, c.Content, c.ElementID, c.CreatedAt, updatedAt, c.IsResolved)
	}
	return rows
}

func TestCreateComment_Success(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()
	comment := models.Comment{
		UserID:     1,
		DocumentID: 2,
		Content:    "looks wrong in section 3",
		ElementID:  "figure-7",
	}

	mock.ExpectQuery("INSERT INTO comments").
		WithArgs(comment.UserID, comment.DocumentID, comment.Content, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(commentTestRows(models.Comment{
			CommentID:  5,
			UserID:     comment.UserID,
			DocumentID: comment.DocumentID,
			Content:    comment.Content,
			ElementID:  comment.ElementID,
			CreatedAt:  time.Now().UTC(),
		}))

	saved, err := repo.CreateComment(ctx, comment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.CommentID != 5 {
		t.Errorf("expected CommentID=5, got %d", saved.CommentID)
	}
	if !saved.UpdatedAt.IsZero() {
		t.Errorf("expected zero UpdatedAt for a fresh comment, got %v", saved.UpdatedAt)
	}
	if saved.IsResolved {
		t.Error("expected a fresh comment to be unresolved")
	}
}

func TestCreateComment_MissingDocument(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO comments").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateComment(ctx, models.Comment{UserID: 1, DocumentID: 404, Content: "x"})
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestCreateComment_MissingDocumentSQLite(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO comments").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey})

	_, err := repo.CreateComment(ctx, models.Comment{UserID: 1, DocumentID: 404, Content: "x"})
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestGetCommentsForDocument_Success(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM comments").
		WithArgs(int64(2)).
		WillReturnRows(commentTestRows(
			models.Comment{CommentID: 9, UserID: 3, DocumentID: 2, Content: "newer", CreatedAt: now},
			models.Comment{CommentID: 8, UserID: 1, DocumentID: 2, Content: "older", CreatedAt: now.Add(-time.Hour), UpdatedAt: now, IsResolved: true},
		))

	comments, err := repo.GetCommentsForDocument(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].CommentID != 9 {
		t.Errorf("expected newest comment first, got id %d", comments[0].CommentID)
	}
	if comments[1].UpdatedAt.IsZero() {
		t.Error("expected edited comment to carry UpdatedAt")
	}
}

func TestGetUserCommentsForDocument_FiltersByAuthor(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM comments").
		WithArgs(int64(2), int64(1)).
		WillReturnRows(commentTestRows(
			models.Comment{CommentID: 8, UserID: 1, DocumentID: 2, Content: "mine", CreatedAt: time.Now().UTC()},
		))

	comments, err := repo.GetUserCommentsForDocument(ctx, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	if comments[0].UserID != 1 {
		t.Errorf("expected only the author's comments, got user %d", comments[0].UserID)
	}
}

func TestUpdateCommentContent_Success(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE comments").
		WithArgs("new content", sqlmock.AnyArg(), int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateCommentContent(ctx, 5, 1, "new content"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestUpdateCommentContent_NotOwner verifies that a mismatch on the
// (comment_id, user_id) key — whether the comment is missing or belongs
// to someone else — produces the same ErrCommentNotFound.
func TestUpdateCommentContent_NotOwner(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE comments").
		WithArgs("new content", sqlmock.AnyArg(), int64(5), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateCommentContent(ctx, 5, 99, "new content")
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestDeleteComment_Success(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM comments").
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteComment(ctx, 5, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteComment_NotOwner(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM comments").
		WithArgs(int64(5), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteComment(ctx, 5, 99)
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

// TestResolveComment_AnyUser pins the intentional asymmetry with edit and
// delete: the resolve statement is keyed on comment_id alone, so no
// user_id ever reaches the database.
func TestResolveComment_AnyUser(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE comments").
		WithArgs(true, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ResolveComment(ctx, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResolveComment_NotFound(t *testing.T) {
	repo, mock, db := newTestCommentRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE comments").
		WithArgs(true, int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ResolveComment(ctx, 404)
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}
