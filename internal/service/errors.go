package service

import "errors"

var (
	// ErrInvalidState is returned when a callback presents a state value
	// that matches no pending login attempt. Possible CSRF; the flow is
	// aborted and nothing is persisted.
	ErrInvalidState = errors.New("invalid oauth state")

	// ErrEmptyCommentContent is returned when a comment body is empty
	// after trimming whitespace.
	ErrEmptyCommentContent = errors.New("comment content is empty")
)
