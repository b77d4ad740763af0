package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"alfredoptarigan/resume-screener/internal/models"
)

type TextExtractor interface {
	ExtractText(doc models.Document) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// ExtractText implements TextExtractor.
//
// PDFs are not parsed structurally: the raw bytes are decoded like any other
// text file and everything outside printable ASCII is blanked out, so callers
// must expect some noise from the PDF object syntax.
func (t *textExtractor) ExtractText(doc models.Document) (string, error) {
	if !doc.DeclaredFormat.Supported() {
		return "", newUnsupportedFormatError(doc.Name, string(doc.DeclaredFormat))
	}

	text, err := decodePermissive(doc.Bytes)
	if err != nil {
		return "", newInternalError(doc.Name, "decode", err)
	}

	if doc.DeclaredFormat == models.FormatPDF {
		return CleanPDFText(text), nil
	}
	return text, nil
}

// decodePermissive decodes UTF-8 (or UTF-16 when a BOM says so), replacing
// invalid sequences with U+FFFD instead of failing.
func decodePermissive(data []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode document bytes: %w", err)
	}
	return string(out), nil
}

// CleanPDFText blanks every non printable ASCII character, collapses
// whitespace runs to a single space and trims the result.
func CleanPDFText(text string) string {
	blanked := strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7E {
			return ' '
		}
		return r
	}, text)

	return strings.Join(strings.Fields(blanked), " ")
}
