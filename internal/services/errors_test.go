package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreeningErrorMessage(t *testing.T) {
	err := newUnsupportedFormatError("cv.xlsx", "xlsx")
	assert.Equal(t, `unsupported file format (op: extract) [cv.xlsx]: format "xlsx"`, err.Error())

	err = newInternalError("", "process_batch", errors.New("deadline"))
	assert.Equal(t, "internal processing error (op: process_batch): deadline", err.Error())
}

func TestScreeningErrorMatchesSentinel(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", newInvalidRequestError("no resumes"))

	assert.ErrorIs(t, wrapped, ErrInvalidRequest)
	assert.NotErrorIs(t, wrapped, ErrInternalProcessing)

	var screeningErr *ScreeningError
	assert.ErrorAs(t, wrapped, &screeningErr)
	assert.Equal(t, "validate", screeningErr.Op)
}
