package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-screener/internal/models"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestScreenCommand(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"jd.txt":     "Looking for a Python developer with leadership skills",
		"john.txt":   "John Smith, Python Developer, 3 years experience, leadership",
		"chef.txt":   "Chef, pastry and bread",
		"sheet.xlsx": "python developer",
	})
	resumes := []string{
		filepath.Join(dir, "chef.txt"),
		filepath.Join(dir, "sheet.xlsx"),
		filepath.Join(dir, "missing.txt"),
		filepath.Join(dir, "john.txt"),
	}

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, screen(context.Background(), &out, filepath.Join(dir, "jd.txt"), resumes, formatJSON))

		var resp models.ScreenResponse
		require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
		require.Len(t, resp.Results, 2)
		assert.Equal(t, "John Smith", resp.Results[0].Name.String())
	})

	t.Run("csv", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, screen(context.Background(), &out, filepath.Join(dir, "jd.txt"), resumes, formatCSV))

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[1], `"John Smith",`))
	})

	t.Run("summary", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, screen(context.Background(), &out, filepath.Join(dir, "jd.txt"), resumes, formatSummary))

		var resp models.SummaryResponse
		require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
		assert.Equal(t, 2, resp.Summary.TotalCandidates)
	})
}

func TestScreenCommandErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "go"})

	err := screen(context.Background(), &bytes.Buffer{}, filepath.Join(dir, "a.txt"), []string{filepath.Join(dir, "a.txt")}, "xml")
	assert.ErrorContains(t, err, "unknown output format")

	err = screen(context.Background(), &bytes.Buffer{}, filepath.Join(dir, "nope.txt"), []string{filepath.Join(dir, "a.txt")}, formatJSON)
	assert.ErrorContains(t, err, "failed to load job description")
}
