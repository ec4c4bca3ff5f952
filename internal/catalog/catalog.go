// Package catalog reads the external document-catalog input: a JSON
// manifest listing known documents plus a content directory holding
// files named {name}_{date}.html or {name}_{date}.pdf.
//
// The catalog is a pure collaborator: it yields (name, date, type, path)
// tuples for the rest of the application to key comments on, and never
// interprets document bytes.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidocs/doc-browser/internal/config"
	"github.com/aidocs/doc-browser/internal/logger"
	"github.com/aidocs/doc-browser/models"
)

// manifest is the shape of the documents JSON file:
// {"documents": [{"name": ..., "date": ..., "description": ...}]}.
type manifest struct {
	Documents []manifestEntry `json:"documents"`
}

type manifestEntry struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Catalog resolves catalog entries from the manifest and content dir.
type Catalog struct {
	manifestPath string
	contentDir   string
	logger       *logger.Logger
}

// New constructs a Catalog from configuration.
func New(cfg config.Catalog, log *logger.Logger) *Catalog {
	return &Catalog{
		manifestPath: cfg.ManifestPath,
		contentDir:   cfg.ContentDir,
		logger:       log,
	}
}

// Load returns every document found in the content directory, enriched
// with descriptions from the manifest when present.
//
// A missing or unreadable manifest is not an error — the directory scan
// alone still yields a usable catalog. A missing content directory
// yields an empty catalog.
func (c *Catalog) Load() ([]models.Document, error) {
	descriptions := c.loadDescriptions()

	entries, err := os.ReadDir(c.contentDir)
	if err != nil {
		if os.IsNotExist(err) {
			c.logger.Warn().Str("dir", c.contentDir).Msg("document content directory does not exist")
			return nil, nil
		}
		return nil, fmt.Errorf("error reading content directory: %w", err)
	}

	var docs []models.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		doc, ok := parseFileName(entry.Name())
		if !ok {
			continue
		}

		doc.FilePath = filepath.Join(c.contentDir, entry.Name())
		doc.Description = descriptions[doc.Name+"\x00"+doc.Date]
		docs = append(docs, doc)
	}

	return docs, nil
}

// Lookup returns the catalog entry for (name, date) if a matching file
// exists on disk. HTML is preferred when both flavours are present,
// matching the original browser's load order.
func (c *Catalog) Lookup(name, date string) (models.Document, bool) {
	descriptions := c.loadDescriptions()

	for _, docType := range []string{models.DocumentTypeHTML, models.DocumentTypePDF} {
		path := filepath.Join(c.contentDir, fmt.Sprintf("%s_%s.%s", name, date, docType))
		if _, err := os.Stat(path); err == nil {
			return models.Document{
				Name:         name,
				Date:         date,
				FilePath:     path,
				DocumentType: docType,
				Description:  descriptions[name+"\x00"+date],
			}, true
		}
	}

	return models.Document{}, false
}

// loadDescriptions reads the manifest into a (name, date) → description
// map. Any failure degrades to an empty map.
func (c *Catalog) loadDescriptions() map[string]string {
	descriptions := make(map[string]string)

	if c.manifestPath == "" {
		return descriptions
	}

	data, err := os.ReadFile(c.manifestPath)
	if err != nil {
		c.logger.Warn().Err(err).Str("path", c.manifestPath).Msg("cannot read documents manifest")
		return descriptions
	}

	var m manifest
	if err = json.Unmarshal(data, &m); err != nil {
		c.logger.Warn().Err(err).Str("path", c.manifestPath).Msg("cannot decode documents manifest")
		return descriptions
	}

	for _, entry := range m.Documents {
		descriptions[entry.Name+"\x00"+entry.Date] = entry.Description
	}

	return descriptions
}

// parseFileName splits "{name}_{date}.html|pdf" into a document. The
// date is everything after the LAST underscore, so names containing
// underscores survive.
func parseFileName(fileName string) (models.Document, bool) {
	ext := strings.ToLower(filepath.Ext(fileName))

	var docType string
	switch ext {
	case ".html":
		docType = models.DocumentTypeHTML
	case ".pdf":
		docType = models.DocumentTypePDF
	default:
		return models.Document{}, false
	}

	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	idx := strings.LastIndex(base, "_")
	if idx <= 0 || idx == len(base)-1 {
		return models.Document{}, false
	}

	return models.Document{
		Name:         base[:idx],
		Date:         base[idx+1:],
		DocumentType: docType,
	}, true
}
