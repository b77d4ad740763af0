package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/services"
)

const (
	FieldJobDescription = "jd_file"
	FieldResumes        = "resume_files"

	MessageInvalidRequest = "Please upload both a job description and resumes."
	MessageInternalError  = "Failed to process files. Please try again."
)

type ScreenHandler struct {
	loader    services.DocumentLoader
	processor services.BatchProcessor
	timeout   time.Duration
	logger    *zap.Logger
}

func NewScreenHandler(
	loader services.DocumentLoader,
	processor services.BatchProcessor,
	timeout time.Duration,
	logger *zap.Logger,
) *ScreenHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScreenHandler{
		loader:    loader,
		processor: processor,
		timeout:   timeout,
		logger:    logger,
	}
}

// HandleScreen handles POST /process_resumes/ and POST /api/v1/screen
func (h *ScreenHandler) HandleScreen(c *fiber.Ctx) error {
	batch, err := h.screen(c)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(models.ScreenResponse{
		Success: true,
		Results: batch.Candidates,
	})
}

// screen loads the multipart upload and runs it through the batch processor.
// Resumes that cannot be loaded are skipped like any other per-resume failure.
func (h *ScreenHandler) screen(c *fiber.Ctx) (*models.RankedBatch, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, &services.ScreeningError{Op: "parse_form", BaseErr: services.ErrInvalidRequest, Detail: err.Error()}
	}

	jdFiles := form.File[FieldJobDescription]
	resumeFiles := form.File[FieldResumes]
	if len(jdFiles) == 0 || len(resumeFiles) == 0 {
		return nil, &services.ScreeningError{Op: "parse_form", BaseErr: services.ErrInvalidRequest, Detail: "job description or resumes missing"}
	}

	jd, err := h.loader.FromFileHeader(jdFiles[0])
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) {
			return nil, &services.ScreeningError{Document: jdFiles[0].Filename, Op: "load", BaseErr: services.ErrInvalidRequest, Detail: err.Error()}
		}
		return nil, err
	}

	resumes := make([]models.Document, 0, len(resumeFiles))
	for _, file := range resumeFiles {
		doc, err := h.loader.FromFileHeader(file)
		if err != nil {
			h.logger.Warn("skipping resume upload", zap.String("document", file.Filename), zap.Error(err))
			continue
		}
		resumes = append(resumes, doc)
	}
	if len(resumes) == 0 {
		return &models.RankedBatch{Candidates: []models.ScoredCandidate{}}, nil
	}

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	return h.processor.Process(ctx, &jd, resumes)
}

func (h *ScreenHandler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrInvalidRequest) {
		h.logger.Info("rejected screening request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: MessageInvalidRequest,
		})
	}

	h.logger.Error("failed to process resumes", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error: MessageInternalError,
	})
}
