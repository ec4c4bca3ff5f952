package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoSessionWasFound is returned when a token does not resolve to an
	// active, unexpired session. Expired, invalidated, and never-issued
	// tokens all produce this same error so that the caller cannot tell
	// them apart.
	ErrNoSessionWasFound = errors.New("no session was found")

	// ErrDocumentNotFound is returned when a lookup targets a document
	// (identified by name and date) that does not exist in the database.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrCommentNotFound is returned when a comment mutation matches zero
	// rows. Because edits and deletes are keyed on (comment_id, user_id),
	// "someone else's comment" and "no such comment" are indistinguishable
	// here on purpose.
	ErrCommentNotFound = errors.New("comment was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
