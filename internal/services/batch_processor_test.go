package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/models"
)

func txt(name, content string) models.Document {
	return models.NewDocument(name, []byte(content))
}

// panickyFields blows up on any resume mentioning "boom".
type panickyFields struct {
	FieldExtractor
}

func (p panickyFields) ExtractProfile(text string) models.CandidateProfile {
	if strings.Contains(text, "boom") {
		panic("unexpected layout")
	}
	return p.FieldExtractor.ExtractProfile(text)
}

func TestProcessScreensAndRanks(t *testing.T) {
	processor := NewDefaultBatchProcessor(4, zap.NewNop())
	jd := txt("jd.txt", "Looking for a Python developer with leadership skills")

	batch, err := processor.Process(context.Background(), &jd, []models.Document{
		txt("unrelated.txt", "Chef, pastry and bread"),
		txt("john.txt", "John Smith, Python Developer, john@example.com, 3 years experience, "+
			"leadership and teamwork, Stanford University, Boston, MA"),
	})

	require.NoError(t, err)
	require.Len(t, batch.Candidates, 2)
	assert.Empty(t, batch.Skipped)

	top := batch.Candidates[0]
	assert.Equal(t, "john.txt", top.Source)
	assert.Equal(t, "John Smith", top.Name.String())
	assert.Greater(t, top.Similarity, 0.0)
	assert.Equal(t, 0.0, batch.Candidates[1].Similarity)
}

func TestProcessRejectsEmptyInput(t *testing.T) {
	processor := NewDefaultBatchProcessor(2, nil)
	jd := txt("jd.txt", "python")

	_, err := processor.Process(context.Background(), &jd, nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = processor.Process(context.Background(), nil, []models.Document{txt("a.txt", "python")})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestProcessSkipsUnsupportedResume(t *testing.T) {
	processor := NewDefaultBatchProcessor(2, nil)
	jd := txt("jd.txt", "python developer")

	batch, err := processor.Process(context.Background(), &jd, []models.Document{
		txt("sheet.xlsx", "python developer"),
		txt("valid.txt", "python developer"),
	})

	require.NoError(t, err)
	require.Len(t, batch.Candidates, 1)
	assert.Equal(t, "valid.txt", batch.Candidates[0].Source)
	require.Len(t, batch.Skipped, 1)
	assert.Equal(t, "sheet.xlsx", batch.Skipped[0].Document)
	assert.Contains(t, batch.Skipped[0].Reason, ErrUnsupportedFormat.Error())
}

func TestProcessKeepsSubmissionOrderOnTies(t *testing.T) {
	processor := NewDefaultBatchProcessor(4, nil)
	jd := txt("jd.txt", "golang")

	resumes := []models.Document{
		txt("first.txt", "golang alpha"),
		txt("second.txt", "golang beta"),
		txt("third.txt", "golang gamma"),
		txt("best.txt", "golang"),
	}
	batch, err := processor.Process(context.Background(), &jd, resumes)

	require.NoError(t, err)
	assert.Equal(t, []string{"best.txt", "first.txt", "second.txt", "third.txt"}, sources(batch.Candidates))
}

func TestProcessIsolatesPanics(t *testing.T) {
	processor := NewBatchProcessor(
		NewTextExtractor(),
		NewSimilarityScorer(nil),
		panickyFields{NewFieldExtractor()},
		NewResultRanker(),
		NewWorker(2, nil),
		nil,
	)
	jd := txt("jd.txt", "go developer")

	batch, err := processor.Process(context.Background(), &jd, []models.Document{
		txt("bad.txt", "boom"),
		txt("good.txt", "go developer"),
	})

	require.NoError(t, err)
	require.Len(t, batch.Candidates, 1)
	assert.Equal(t, "good.txt", batch.Candidates[0].Source)
	require.Len(t, batch.Skipped, 1)
	assert.Contains(t, batch.Skipped[0].Reason, "panic")
}

func TestProcessFailsOnUnreadableJobDescription(t *testing.T) {
	processor := NewDefaultBatchProcessor(1, nil)
	jd := txt("jd.xlsx", "python")

	_, err := processor.Process(context.Background(), &jd, []models.Document{txt("a.txt", "python")})

	assert.ErrorIs(t, err, ErrInternalProcessing)
}

func TestProcessCancelled(t *testing.T) {
	processor := NewDefaultBatchProcessor(1, nil)
	jd := txt("jd.txt", "python")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := processor.Process(ctx, &jd, []models.Document{txt("a.txt", "python")})

	assert.ErrorIs(t, err, ErrInternalProcessing)
}
