package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/internal/store"
	"github.com/aidocs/doc-browser/models"
)

// documentService is the concrete implementation of DocumentService.
// Documents live in two places: the catalog (files on disk plus the
// manifest) and the database (rows comments hang off). This service
// reconciles the two lazily — a row is created the first time an entry
// is listed or viewed.
type documentService struct {
	documentRepository store.DocumentRepository
	catalog            DocumentCatalog
	logger             *logger.Logger
}

// NewDocumentService constructs a DocumentService over the given
// repository and catalog.
func NewDocumentService(documents store.DocumentRepository, catalog DocumentCatalog, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documents,
		catalog:            catalog,
		logger:             logger,
	}
}

// ListDocuments scans the catalog, registers every entry (get-or-create
// keyed on name+date), and returns the stored rows, newest date first.
func (d *documentService) ListDocuments(ctx context.Context) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	entries, err := d.catalog.Load()
	if err != nil {
		log.Err(err).Msg("catalog load failed")
		return nil, fmt.Errorf("catalog load failed: %w", err)
	}

	for _, entry := range entries {
		if _, err = d.documentRepository.GetOrCreateDocument(ctx, entry); err != nil {
			log.Err(err).Str("name", entry.Name).Str("date", entry.Date).Msg("document registration failed")
			return nil, fmt.Errorf("document registration failed: %w", err)
		}
	}

	docs, err := d.documentRepository.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("document listing failed: %w", err)
	}

	return docs, nil
}

// GetDocument returns the document keyed by (name, date). A document
// unknown to the database but present in the catalog is registered on
// this first view; one unknown to both yields store.ErrDocumentNotFound.
func (d *documentService) GetDocument(ctx context.Context, name, date string) (models.Document, error) {
	log := logger.FromContext(ctx)

	doc, err := d.documentRepository.FindDocumentByNameDate(ctx, name, date)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, store.ErrDocumentNotFound) {
		return models.Document{}, fmt.Errorf("document lookup failed: %w", err)
	}

	entry, ok := d.catalog.Lookup(name, date)
	if !ok {
		return models.Document{}, store.ErrDocumentNotFound
	}

	created, err := d.documentRepository.GetOrCreateDocument(ctx, entry)
	if err != nil {
		log.Err(err).Str("name", name).Str("date", date).Msg("document registration failed")
		return models.Document{}, fmt.Errorf("document registration failed: %w", err)
	}

	return created, nil
}
