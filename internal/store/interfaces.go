package store

import (
	"context"
	"time"

	"github.com/aidocs/doc-browser/models"
)

// UserRepository persists user accounts keyed on (email, oauth_provider).
type UserRepository interface {
	// UpsertUser atomically gets-or-creates the user matching the
	// profile's (email, provider) pair. On an existing match it updates
	// name, avatar and last_login in place; the user id never changes.
	UpsertUser(ctx context.Context, profile models.Profile) (models.User, error)

	// FindUserByID returns the user with the given id or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SessionRepository persists session tokens and answers the single
// question "is this token currently valid".
type SessionRepository interface {
	// CreateSession mints a fresh random token for userID with the given
	// time-to-live and persists it.
	CreateSession(ctx context.Context, userID int64, ttl time.Duration) (models.Session, error)

	// ResolveSession returns the owner of an active, unexpired session
	// with the given token, else ErrNoSessionWasFound. Expired and
	// never-issued tokens are indistinguishable to the caller.
	ResolveSession(ctx context.Context, token string) (models.User, error)

	// InvalidateSession marks the session inactive. Idempotent: unknown
	// or already-inactive tokens are not an error.
	InvalidateSession(ctx context.Context, token string) error
}

// DocumentRepository persists catalog entries keyed on (name, date).
type DocumentRepository interface {
	// GetOrCreateDocument returns the existing document matching
	// (doc.Name, doc.Date) or creates it. Documents are registered
	// lazily on first view or first comment.
	GetOrCreateDocument(ctx context.Context, doc models.Document) (models.Document, error)

	// FindDocumentByNameDate returns the matching document or
	// ErrDocumentNotFound.
	FindDocumentByNameDate(ctx context.Context, name, date string) (models.Document, error)

	// ListDocuments returns all registered documents, newest date first.
	ListDocuments(ctx context.Context) ([]models.Document, error)
}

// CommentRepository persists feedback comments. Mutations that are
// owner-restricted take the acting user's id and key their WHERE clause
// on it, so authorization failures surface as ErrCommentNotFound.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	GetCommentsForDocument(ctx context.Context, documentID int64) ([]models.Comment, error)
	GetUserCommentsForDocument(ctx context.Context, userID, documentID int64) ([]models.Comment, error)
	UpdateCommentContent(ctx context.Context, commentID, userID int64, content string) error
	DeleteComment(ctx context.Context, commentID, userID int64) error
	ResolveComment(ctx context.Context, commentID int64) error
}
