package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/models"
)

// documentRepository is the SQL-backed implementation of
// [DocumentRepository]. Documents are registered lazily: rows appear the
// first time a catalog entry is viewed or commented on.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// GetOrCreateDocument returns the document matching (doc.Name, doc.Date),
// creating it if unseen. A single INSERT ... ON CONFLICT ... RETURNING
// keeps the operation atomic under concurrent first views.
func (r *documentRepository) GetOrCreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertDocument,
		doc.Name, doc.Date, doc.FilePath, doc.DocumentType,
		toNullString(doc.Description), time.Now().UTC())

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.GetOrCreateDocument").Msg("error: row is nil")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanDocumentRow(row)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.GetOrCreateDocument").Msg("error: scanning error")
		return models.Document{}, err
	}

	return saved, nil
}

// FindDocumentByNameDate retrieves a document by its (name, date) key.
//
// Error handling:
//   - empty result set → [ErrDocumentNotFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *documentRepository) FindDocumentByNameDate(ctx context.Context, name, date string) (models.Document, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findDocumentByNameDate, name, date)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*documentRepository.FindDocumentByNameDate").Msg("error: row is nil")
		return models.Document{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	doc, err := scanDocumentRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*documentRepository.FindDocumentByNameDate").Msg("error: scanning error")
		return models.Document{}, err
	}

	return doc, nil
}

// ListDocuments returns every registered document ordered by date
// descending, then name. Dates are strings and sort lexicographically.
func (r *documentRepository) ListDocuments(ctx context.Context) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listDocuments)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("error executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var doc models.Document
		var description sql.NullString

		err = rows.Scan(&doc.DocumentID, &doc.Name, &doc.Date, &doc.FilePath,
			&doc.DocumentType, &description, &doc.CreatedAt)
		if err != nil {
			log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		doc.Description = description.String
		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return docs, nil
}

// scanDocumentRow reads the canonical documents column set from a single row.
func scanDocumentRow(row *sql.Row) (models.Document, error) {
	var doc models.Document
	var description sql.NullString

	err := row.Scan(&doc.DocumentID, &doc.Name, &doc.Date, &doc.FilePath,
		&doc.DocumentType, &description, &doc.CreatedAt)
	if err != nil {
		return models.Document{}, err
	}

	doc.Description = description.String
	return doc, nil
}
