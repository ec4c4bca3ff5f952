package store

import (
	"github.com/aidocs/doc-browser/internal/logger"
)

// Storages bundles all repositories behind their interfaces so the
// service layer receives a single dependency.
type Storages struct {
	UserRepository     UserRepository
	SessionRepository  SessionRepository
	DocumentRepository DocumentRepository
	CommentRepository  CommentRepository
}

// NewStorages constructs every repository over the shared database
// connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		SessionRepository:  NewSessionRepository(db, logger),
		DocumentRepository: NewDocumentRepository(db, logger),
		CommentRepository:  NewCommentRepository(db, logger),
	}
}
