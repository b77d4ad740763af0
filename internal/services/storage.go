package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"alfredoptarigan/resume-screener/internal/models"
)

// DocumentLoader reads uploads into memory. Nothing is written to disk.
type DocumentLoader interface {
	FromFileHeader(file *multipart.FileHeader) (models.Document, error)
	FromPath(path string) (models.Document, error)
}

type documentLoader struct {
	maxFileSize int64
}

func NewDocumentLoader(maxFileSize int64) DocumentLoader {
	return &documentLoader{
		maxFileSize: maxFileSize,
	}
}

// FromFileHeader implements DocumentLoader.
func (s *documentLoader) FromFileHeader(file *multipart.FileHeader) (models.Document, error) {
	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return models.Document{}, s.tooLarge(file.Filename)
	}

	src, err := file.Open()
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to open uploaded file %s: %w", file.Filename, err)
	}
	defer src.Close()

	return s.read(file.Filename, src)
}

// FromPath implements DocumentLoader.
func (s *documentLoader) FromPath(path string) (models.Document, error) {
	src, err := os.Open(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	return s.read(filepath.Base(path), src)
}

func (s *documentLoader) read(name string, src io.Reader) (models.Document, error) {
	if s.maxFileSize > 0 {
		src = io.LimitReader(src, s.maxFileSize+1)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to read file %s: %w", name, err)
	}
	if s.maxFileSize > 0 && int64(len(data)) > s.maxFileSize {
		return models.Document{}, s.tooLarge(name)
	}

	return models.NewDocument(name, data), nil
}

func (s *documentLoader) tooLarge(name string) error {
	return &ScreeningError{
		Document: name,
		Op:       "load",
		BaseErr:  ErrFileTooLarge,
		Detail:   fmt.Sprintf("max size is %d bytes", s.maxFileSize),
	}
}
