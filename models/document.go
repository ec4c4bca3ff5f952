package models

import "time"

// Document types recognised by the catalog.
const (
	DocumentTypeHTML = "html"
	DocumentTypePDF  = "pdf"
)

// Document is a catalog entry that comments attach to. Documents are
// uniquely identified by the (Name, Date) pair and are created lazily on
// first view or first comment, never pre-seeded.
//
// Date is stored as a string on purpose: document dates come from file
// names like "report_2025-06-01.pdf" and are compared lexicographically.
type Document struct {
	// DocumentID is the internal unique identifier of the document.
	DocumentID int64 `json:"id"`

	// Name is the human-readable document name from the catalog.
	Name string `json:"name"`

	// Date is the catalog date string, not parsed as a timestamp.
	Date string `json:"date"`

	// FilePath is the location of the document content on disk.
	FilePath string `json:"file_path"`

	// DocumentType is "html" or "pdf", derived from the file extension.
	DocumentType string `json:"document_type"`

	// Description is optional free text carried from the catalog manifest.
	Description string `json:"description,omitempty"`

	// CreatedAt is the timestamp the document row was first registered.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Document model.
func (d Document) TableName() string {
	return "documents"
}
