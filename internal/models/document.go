package models

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatTXT  DocumentFormat = "txt"
	FormatDOC  DocumentFormat = "doc"
	FormatDOCX DocumentFormat = "docx"
)

// Supported reports whether the extractor knows how to read the format.
func (f DocumentFormat) Supported() bool {
	switch f {
	case FormatPDF, FormatTXT, FormatDOC, FormatDOCX:
		return true
	}
	return false
}

// FormatFromFilename derives the declared format from the file extension.
// Unknown extensions are kept as-is so error messages can name them.
func FormatFromFilename(name string) DocumentFormat {
	ext := strings.ToLower(filepath.Ext(name))
	return DocumentFormat(strings.TrimPrefix(ext, "."))
}

// Document is an uploaded file. It is never modified after it is loaded.
type Document struct {
	ID             uuid.UUID
	Name           string
	DeclaredFormat DocumentFormat
	Bytes          []byte
}

func NewDocument(name string, data []byte) Document {
	return Document{
		ID:             uuid.New(),
		Name:           name,
		DeclaredFormat: FormatFromFilename(name),
		Bytes:          data,
	}
}
