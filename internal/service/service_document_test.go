// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/internal/store"
	"github.com/aidocs/doc-browser/models"
)

// ─────────────────────────────────────────────
// Mocks: store.DocumentRepository + catalog
// ─────────────────────────────────────────────

type mockDocumentRepository struct {
	getOrCreateFn func(ctx context.Context, doc models.Document) (models.Document, error)
	findFn        func(ctx context.Context, name, date string) (models.Document, error)
	listFn        func(ctx context.Context) ([]models.Document, error)
}

func (m *mockDocumentRepository) GetOrCreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	if m.getOrCreateFn != nil {
		return m.getOrCreateFn(ctx, doc)
	}
	return doc, nil
}

func (m *mockDocumentRepository) FindDocumentByNameDate(ctx context.Context, name, date string) (models.Document, error) {
	if m.findFn != nil {
		return m.findFn(ctx, name, date)
	}
	return models.Document{}, store.ErrDocumentNotFound
}

func (m *mockDocumentRepository) ListDocuments(ctx context.Context) ([]models.Document, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockCatalog struct {
	loadFn   func() ([]models.Document, error)
	lookupFn func(name, date string) (models.Document, bool)
}

func (m *mockCatalog) Load() ([]models.Document, error) {
	if m.loadFn != nil {
		return m.loadFn()
	}
	return nil, nil
}

func (m *mockCatalog) Lookup(name, date string) (models.Document, bool) {
	if m.lookupFn != nil {
		return m.lookupFn(name, date)
	}
	return models.Document{}, false
}

func newTestDocumentService(repo *mockDocumentRepository, cat *mockCatalog) DocumentService {
	return NewDocumentService(repo, cat, logger.Nop())
}

// ─────────────────────────────────────────────
// ListDocuments
// ─────────────────────────────────────────────

func TestDocumentService_ListDocuments_RegistersCatalogEntries(t *testing.T) {
	entries := []models.Document{
		{Name: "roadmap", Date: "2025-07-15", DocumentType: models.DocumentTypePDF},
		{Name: "quarterly-report", Date: "2025-06-01", DocumentType: models.DocumentTypeHTML},
	}

	var registered []string
	repo := &mockDocumentRepository{
		getOrCreateFn: func(_ context.Context, doc models.Document) (models.Document, error) {
			registered = append(registered, doc.Name)
			return doc, nil
		},
		listFn: func(_ context.Context) ([]models.Document, error) {
			return []models.Document{
				{DocumentID: 2, Name: "roadmap", Date: "2025-07-15"},
				{DocumentID: 1, Name: "quarterly-report", Date: "2025-06-01"},
			}, nil
		},
	}
	cat := &mockCatalog{
		loadFn: func() ([]models.Document, error) { return entries, nil },
	}

	docs, err := newTestDocumentService(repo, cat).ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"roadmap", "quarterly-report"}, registered)
	require.Len(t, docs, 2)
	assert.Equal(t, "roadmap", docs[0].Name, "newest date first")
}

func TestDocumentService_ListDocuments_EmptyCatalog(t *testing.T) {
	repo := &mockDocumentRepository{
		listFn: func(_ context.Context) ([]models.Document, error) { return nil, nil },
	}
	cat := &mockCatalog{}

	docs, err := newTestDocumentService(repo, cat).ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocumentService_ListDocuments_RegistrationFailure(t *testing.T) {
	repo := &mockDocumentRepository{
		getOrCreateFn: func(_ context.Context, _ models.Document) (models.Document, error) {
			return models.Document{}, errStorage
		},
	}
	cat := &mockCatalog{
		loadFn: func() ([]models.Document, error) {
			return []models.Document{{Name: "roadmap", Date: "2025-07-15"}}, nil
		},
	}

	_, err := newTestDocumentService(repo, cat).ListDocuments(context.Background())
	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// GetDocument
// ─────────────────────────────────────────────

func TestDocumentService_GetDocument_KnownToStore(t *testing.T) {
	repo := &mockDocumentRepository{
		findFn: func(_ context.Context, name, date string) (models.Document, error) {
			return models.Document{DocumentID: 1, Name: name, Date: date}, nil
		},
	}
	cat := &mockCatalog{
		lookupFn: func(_, _ string) (models.Document, bool) {
			t.Fatal("a stored document must not consult the catalog")
			return models.Document{}, false
		},
	}

	doc, err := newTestDocumentService(repo, cat).GetDocument(context.Background(), "roadmap", "2025-07-15")
	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.DocumentID)
}

// TestDocumentService_GetDocument_FirstView covers lazy registration: a
// document present on disk but never viewed gets its row on first access.
func TestDocumentService_GetDocument_FirstView(t *testing.T) {
	repo := &mockDocumentRepository{
		getOrCreateFn: func(_ context.Context, doc models.Document) (models.Document, error) {
			doc.DocumentID = 9
			return doc, nil
		},
	}
	cat := &mockCatalog{
		lookupFn: func(name, date string) (models.Document, bool) {
			return models.Document{
				Name:         name,
				Date:         date,
				FilePath:     "documents/roadmap_2025-07-15.pdf",
				DocumentType: models.DocumentTypePDF,
			}, true
		},
	}

	doc, err := newTestDocumentService(repo, cat).GetDocument(context.Background(), "roadmap", "2025-07-15")
	require.NoError(t, err)
	assert.Equal(t, int64(9), doc.DocumentID)
	assert.Equal(t, models.DocumentTypePDF, doc.DocumentType)
}

func TestDocumentService_GetDocument_UnknownEverywhere(t *testing.T) {
	repo := &mockDocumentRepository{}
	cat := &mockCatalog{}

	_, err := newTestDocumentService(repo, cat).GetDocument(context.Background(), "ghost", "2025-01-01")
	require.ErrorIs(t, err, store.ErrDocumentNotFound)
}
