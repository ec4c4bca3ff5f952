package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Fixed queries use $N placeholders, which both the pgx and sqlite3
// drivers accept. The upserts rely on ON CONFLICT ... RETURNING so that
// get-or-create stays a single atomic statement.
const (
	upsertUser = `INSERT INTO users (email, name, avatar_url, oauth_provider, oauth_id, is_active, created_at, last_login)
    VALUES ($1, $2, $3, $4, $5, TRUE, $6, $6)
    ON CONFLICT (email, oauth_provider) DO UPDATE
    SET name = excluded.name, avatar_url = excluded.avatar_url, last_login = excluded.last_login
    RETURNING user_id, email, name, avatar_url, oauth_provider, oauth_id, is_active, created_at, last_login;`

	findUserByID = `SELECT user_id, email, name, avatar_url, oauth_provider, oauth_id, is_active, created_at, last_login
    FROM users
    WHERE user_id = $1;`

	createSession = `INSERT INTO sessions (session_token, user_id, expires_at, created_at, is_active)
    VALUES ($1, $2, $3, $4, TRUE)
    RETURNING session_id, session_token, user_id, expires_at, created_at, is_active;`

	resolveSession = `SELECT u.user_id, u.email, u.name, u.avatar_url, u.oauth_provider, u.oauth_id, u.is_active, u.created_at, u.last_login
    FROM sessions s
    JOIN users u ON u.user_id = s.user_id
    WHERE s.session_token = $1 AND s.is_active = TRUE AND s.expires_at > $2;`

	invalidateSession = `UPDATE sessions
    SET is_active = FALSE
    WHERE session_token = $1;`

	upsertDocument = `INSERT INTO documents (name, date, file_path, document_type, description, created_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (name, date) DO UPDATE SET name = excluded.name
    RETURNING document_id, name, date, file_path, document_type, description, created_at;`

	findDocumentByNameDate = `SELECT document_id, name, date, file_path, document_type, description, created_at
    FROM documents
    WHERE name = $1 AND date = $2;`

	listDocuments = `SELECT document_id, name, date, file_path, document_type, description, created_at
    FROM documents
    ORDER BY date DESC, name;`

	createComment = `INSERT INTO comments (user_id, document_id, content, element_id, created_at, is_resolved)
    VALUES ($1, $2, $3, $4, $5, FALSE)
    RETURNING comment_id, user_id, document_id, content, element_id, created_at, updated_at, is_resolved;`
)

// commentColumns is the canonical column order scanned into models.Comment.
var commentColumns = []string{
	"comment_id", "user_id", "document_id", "content",
	"element_id", "created_at", "updated_at", "is_resolved",
}

// queryBuilder is the squirrel statement builder shared by the dynamic
// comment queries. Dollar placeholders keep the generated SQL valid for
// both drivers.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListCommentsQuery builds the comment listing query for a document,
// optionally narrowed to a single author. Newest comments come first.
func buildListCommentsQuery(documentID int64, userID *int64) (string, []any, error) {
	query := queryBuilder.
		Select(commentColumns...).
		From("comments").
		Where(sq.Eq{"document_id": documentID}).
		OrderBy("created_at DESC")

	if userID != nil {
		query = query.Where(sq.Eq{"user_id": *userID})
	}

	return query.ToSql()
}

// buildUpdateCommentQuery builds the owner-keyed content update. Keying the
// WHERE clause on both comment_id and user_id is what makes a non-owner
// edit indistinguishable from a missing comment.
func buildUpdateCommentQuery(commentID, userID int64, content string, updatedAt any) (string, []any, error) {
	return queryBuilder.
		Update("comments").
		Set("content", content).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"comment_id": commentID, "user_id": userID}).
		ToSql()
}

// buildDeleteCommentQuery builds the owner-keyed delete.
func buildDeleteCommentQuery(commentID, userID int64) (string, []any, error) {
	return queryBuilder.
		Delete("comments").
		Where(sq.Eq{"comment_id": commentID, "user_id": userID}).
		ToSql()
}

// buildResolveCommentQuery builds the resolve update. Unlike edit and
// delete it is keyed on comment_id only: any authenticated user may
// resolve any comment.
func buildResolveCommentQuery(commentID int64) (string, []any, error) {
	return queryBuilder.
		Update("comments").
		Set("is_resolved", true).
		Where(sq.Eq{"comment_id": commentID}).
		ToSql()
}
