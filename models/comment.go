package models

import "time"

// Comment is feedback attached to a document by an authenticated user.
//
// Ownership rules: only the author may edit the content or delete the
// comment; any authenticated user may mark it resolved. Deleting a user
// or a document cascades to its comments at the database level.
type Comment struct {
	// CommentID is the internal unique identifier of the comment.
	CommentID int64 `json:"id"`

	// UserID is the author and exclusive owner of the comment.
	UserID int64 `json:"user_id"`

	// DocumentID is the document this comment belongs to.
	DocumentID int64 `json:"document_id"`

	// Content is the comment text. Stored trimmed and never empty.
	Content string `json:"content"`

	// ElementID optionally anchors the comment to an element inside the
	// rendered document. Empty means the comment targets the whole
	// document and is stored as NULL.
	ElementID string `json:"element_id,omitempty"`

	// CreatedAt is the timestamp the comment was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is zero until the first content edit.
	UpdatedAt time.Time `json:"updated_at,omitzero"`

	// IsResolved marks a feedback thread as addressed. Not owner-restricted.
	IsResolved bool `json:"is_resolved"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
