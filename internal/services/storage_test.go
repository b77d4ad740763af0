package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-screener/internal/models"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&body, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func TestLoaderFromFileHeader(t *testing.T) {
	loader := NewDocumentLoader(16)

	doc, err := loader.FromFileHeader(fileHeader(t, "cv.PDF", []byte("%PDF hello")))
	require.NoError(t, err)
	assert.Equal(t, "cv.PDF", doc.Name)
	assert.Equal(t, models.FormatPDF, doc.DeclaredFormat)
	assert.Equal(t, []byte("%PDF hello"), doc.Bytes)
	assert.NotEmpty(t, doc.ID.String())

	_, err = loader.FromFileHeader(fileHeader(t, "big.txt", bytes.Repeat([]byte("a"), 17)))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestLoaderFromPath(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "resume.txt")
	big := filepath.Join(dir, "huge.txt")
	require.NoError(t, os.WriteFile(small, []byte("0123456789"), 0o644))
	require.NoError(t, os.WriteFile(big, []byte("0123456789A"), 0o644))

	loader := NewDocumentLoader(10)

	doc, err := loader.FromPath(small)
	require.NoError(t, err)
	assert.Equal(t, "resume.txt", doc.Name)
	assert.Equal(t, models.FormatTXT, doc.DeclaredFormat)

	_, err = loader.FromPath(big)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = loader.FromPath(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestLoaderWithoutLimit(t *testing.T) {
	doc, err := NewDocumentLoader(0).FromFileHeader(fileHeader(t, "a.docx", bytes.Repeat([]byte("x"), 4096)))
	require.NoError(t, err)
	assert.Len(t, doc.Bytes, 4096)
}
