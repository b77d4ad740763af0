package services

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"alfredoptarigan/resume-screener/internal/models"
)

const ExportFilename = "resume_screening_results.csv"

var exportHeader = []string{"Name", "Similarity", "University", "Email", "Skills", "Soft Skills", "Experience", "Location"}

// WriteCSV writes the ranked candidates with every cell quoted, which
// encoding/csv does not do for cells that need no escaping.
func WriteCSV(w io.Writer, candidates []models.ScoredCandidate) error {
	buf := bufio.NewWriter(w)

	rows := make([][]string, 0, len(candidates)+1)
	rows = append(rows, exportHeader)
	for _, c := range candidates {
		rows = append(rows, []string{
			c.Name.String(),
			c.Percent(),
			c.University.String(),
			c.Email.String(),
			c.Skills.String(),
			c.SoftSkills.String(),
			c.Experience.String(),
			c.Location.String(),
		})
	}

	for i, row := range rows {
		if i > 0 {
			if _, err := buf.WriteString("\n"); err != nil {
				return fmt.Errorf("failed to write csv: %w", err)
			}
		}
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = quoteCell(cell)
		}
		if _, err := buf.WriteString(strings.Join(cells, ",")); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func quoteCell(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
