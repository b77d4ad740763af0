package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/logger"
	"alfredoptarigan/resume-screener/internal/models"
)

type BatchProcessor interface {
	Process(ctx context.Context, jobDescription *models.Document, resumes []models.Document) (*models.RankedBatch, error)
}

type batchProcessor struct {
	extractor TextExtractor
	scorer    SimilarityScorer
	fields    FieldExtractor
	ranker    ResultRanker
	worker    Worker
	logger    *zap.Logger
}

func NewBatchProcessor(
	extractor TextExtractor,
	scorer SimilarityScorer,
	fields FieldExtractor,
	ranker ResultRanker,
	worker Worker,
	logger *zap.Logger,
) BatchProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &batchProcessor{
		extractor: extractor,
		scorer:    scorer,
		fields:    fields,
		ranker:    ranker,
		worker:    worker,
		logger:    logger,
	}
}

// NewDefaultBatchProcessor wires the standard engine components.
func NewDefaultBatchProcessor(concurrency int, logger *zap.Logger) BatchProcessor {
	return NewBatchProcessor(
		NewTextExtractor(),
		NewSimilarityScorer(NewTextTokenizer()),
		NewFieldExtractor(),
		NewResultRanker(),
		NewWorker(concurrency, logger),
		logger,
	)
}

// Process implements BatchProcessor.
func (b *batchProcessor) Process(ctx context.Context, jobDescription *models.Document, resumes []models.Document) (*models.RankedBatch, error) {
	if jobDescription == nil {
		return nil, newInvalidRequestError("job description is missing")
	}
	if len(resumes) == 0 {
		return nil, newInvalidRequestError("no resumes submitted")
	}

	batchID := uuid.New()
	log := b.logger.With(zap.String("batch_id", batchID.String()))

	jdText, err := b.extractor.ExtractText(*jobDescription)
	if err != nil {
		log.Error("failed to extract job description", zap.String("document", jobDescription.Name), zap.Error(err))
		return nil, newInternalError(jobDescription.Name, "extract_job_description", err)
	}

	log.Debug("job description extracted",
		zap.String("document", jobDescription.Name),
		zap.String("preview", logger.Preview(jdText, 120)),
	)
	log.Info("screening resumes", zap.Int("resumes", len(resumes)))

	outcomes := make([]models.ResumeOutcome, len(resumes))

	runErr := b.worker.Run(ctx, len(resumes), func(_ context.Context, index int) {
		outcomes[index] = b.screenResume(index, resumes[index], jdText)
	})
	if runErr != nil {
		log.Error("batch interrupted", zap.Error(runErr))
		return nil, newInternalError("", "process_batch", runErr)
	}

	batch := &models.RankedBatch{ID: batchID}
	candidates := make([]models.ScoredCandidate, 0, len(resumes))
	for _, outcome := range outcomes {
		if outcome.IsSkipped() {
			log.Warn("skipping resume",
				zap.String("document", outcome.Document),
				zap.Error(outcome.Err),
			)
			batch.Skipped = append(batch.Skipped, models.SkippedDocument{
				Document: outcome.Document,
				Reason:   outcome.Err.Error(),
			})
			continue
		}
		candidates = append(candidates, *outcome.Candidate)
	}

	batch.Candidates = b.ranker.Rank(candidates)

	log.Info("screening completed",
		zap.Int("ranked", len(batch.Candidates)),
		zap.Int("skipped", len(batch.Skipped)),
	)
	return batch, nil
}

// screenResume runs one resume through the pipeline. Panics are turned into a
// skipped outcome so one bad document cannot take the batch down.
func (b *batchProcessor) screenResume(index int, doc models.Document, jdText string) (outcome models.ResumeOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = models.Skipped(index, doc.Name, newInternalError(doc.Name, "screen_resume", fmt.Errorf("panic: %v", r)))
		}
	}()

	resumeText, err := b.extractor.ExtractText(doc)
	if err != nil {
		return models.Skipped(index, doc.Name, err)
	}

	candidate := models.ScoredCandidate{
		CandidateProfile: b.fields.ExtractProfile(resumeText),
		Similarity:       b.scorer.Score(jdText, resumeText),
		Source:           doc.Name,
	}
	return models.Screened(index, doc.Name, candidate)
}
