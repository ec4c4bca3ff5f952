package service

import (
	"context"

	"github.com/aidocs/doc-browser/internal/oauth"
	"github.com/aidocs/doc-browser/models"
)

// AuthService drives the login state machine and serves identity queries
// to the rest of the application.
//
// The flow is anonymous → redirecting (LoginURL) → callback_pending →
// authenticated (HandleCallback), with Logout and session expiry leading
// back to anonymous. Identity is always explicit: every operation takes
// the session token, never ambient state.
type AuthService interface {
	// Providers returns the names of the providers a user may log in with.
	Providers() []string

	// LoginURL starts a login attempt: it mints a CSRF state value,
	// records the pending attempt, and returns the provider's
	// authorization URL. Returns oauth.ErrProviderNotConfigured when the
	// provider has no credentials.
	LoginURL(ctx context.Context, provider string) (string, error)

	// HandleCallback completes a login attempt. The presented state must
	// match a pending attempt ([ErrInvalidState] otherwise); the code is
	// then exchanged for a profile, the user is upserted, and a fresh
	// session is minted. On any exchange failure nothing is persisted.
	HandleCallback(ctx context.Context, state, code string) (models.User, models.Session, error)

	// CurrentUser resolves a session token to its user. A token that
	// resolves to no valid session yields ok=false with a nil error:
	// absence of identity is a normal state, not a failure. The error is
	// non-nil only for storage unavailability.
	CurrentUser(ctx context.Context, token string) (models.User, bool, error)

	// Logout invalidates the presented session. Idempotent.
	Logout(ctx context.Context, token string) error
}

// CommentService enforces who may mutate a comment, independent of the
// storage layer. All methods assume the caller has already been
// authenticated; the acting user's id is an explicit parameter.
type CommentService interface {
	// CreateComment validates and persists a new comment. Content is
	// trimmed; empty-after-trim is rejected with [ErrEmptyCommentContent].
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// CommentsForDocument lists a document's comments, newest first.
	CommentsForDocument(ctx context.Context, documentID int64) ([]models.Comment, error)

	// UserCommentsForDocument lists one author's comments on a document.
	UserCommentsForDocument(ctx context.Context, userID, documentID int64) ([]models.Comment, error)

	// EditComment changes the content of the caller's own comment.
	// A non-owner's attempt fails exactly like a missing comment.
	EditComment(ctx context.Context, commentID, userID int64, content string) error

	// DeleteComment removes the caller's own comment, with the same
	// not-found-or-not-permitted semantics as EditComment.
	DeleteComment(ctx context.Context, commentID, userID int64) error

	// ResolveComment marks any comment resolved. Deliberately not
	// owner-restricted: reviewers other than the author may close
	// feedback threads.
	ResolveComment(ctx context.Context, commentID int64) error
}

// DocumentService exposes the lazily-registered document catalog.
type DocumentService interface {
	// ListDocuments registers every catalog entry (get-or-create) and
	// returns the stored documents, newest date first.
	ListDocuments(ctx context.Context) ([]models.Document, error)

	// GetDocument returns the document keyed by (name, date), registering
	// it on first view if the catalog knows it. Unknown documents yield
	// store.ErrDocumentNotFound.
	GetDocument(ctx context.Context, name, date string) (models.Document, error)
}

// ProviderRegistry is the slice of *oauth.Registry the auth service
// needs; narrowed to an interface so tests can substitute stub providers.
type ProviderRegistry interface {
	Get(name string) (oauth.Provider, error)
	Names() []string
}

// DocumentCatalog is the catalog collaborator consumed by the document
// service.
type DocumentCatalog interface {
	Load() ([]models.Document, error)
	Lookup(name, date string) (models.Document, bool)
}
