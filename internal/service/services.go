package service

import (
	"github.com/aidocs/doc-browser/internal/config"
	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/internal/store"
)

type Services struct {
	AuthService     AuthService
	CommentService  CommentService
	DocumentService DocumentService
}

func NewServices(storages *store.Storages, registry ProviderRegistry, catalog DocumentCatalog, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(registry, storages.UserRepository, storages.SessionRepository, cfg.App.SessionTTL, logger),
		CommentService:  NewCommentService(storages.CommentRepository, logger),
		DocumentService: NewDocumentService(storages.DocumentRepository, catalog, logger),
	}
}
