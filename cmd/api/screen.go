package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/services"
)

const (
	formatJSON    = "json"
	formatCSV     = "csv"
	formatSummary = "summary"
)

var screenCmd = &cobra.Command{
	Use:   "screen --jd JOB_DESCRIPTION RESUME...",
	Short: "Screen local resume files against a job description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jdPath, _ := cmd.Flags().GetString("jd")
		format, _ := cmd.Flags().GetString("format")
		return screen(cmd.Context(), cmd.OutOrStdout(), jdPath, args, format)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().String("jd", "", "job description file (pdf, txt, doc, docx)")
	screenCmd.Flags().StringP("format", "f", formatJSON, "output format: json, csv or summary")
	_ = screenCmd.MarkFlagRequired("jd")
}

func screen(ctx context.Context, out io.Writer, jdPath string, resumePaths []string, format string) error {
	switch format {
	case formatJSON, formatCSV, formatSummary:
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	cfg, logger, err := setup()
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer logger.Sync()

	if ctx == nil {
		ctx = context.Background()
	}

	loader := services.NewDocumentLoader(cfg.Storage.MaxFileSize)
	processor := services.NewDefaultBatchProcessor(cfg.Worker.Concurrency, logger)

	jd, err := loader.FromPath(jdPath)
	if err != nil {
		return fmt.Errorf("failed to load job description: %w", err)
	}

	resumes := make([]models.Document, 0, len(resumePaths))
	for _, path := range resumePaths {
		doc, err := loader.FromPath(path)
		if err != nil {
			logger.Warn("skipping resume file", zap.String("path", path), zap.Error(err))
			continue
		}
		resumes = append(resumes, doc)
	}

	candidates := []models.ScoredCandidate{}
	if len(resumes) > 0 {
		batch, err := processor.Process(ctx, &jd, resumes)
		if err != nil {
			if errors.Is(err, services.ErrInvalidRequest) {
				return fmt.Errorf("nothing to screen: %w", err)
			}
			return fmt.Errorf("failed to screen resumes: %w", err)
		}
		candidates = batch.Candidates
	}

	switch format {
	case formatCSV:
		if err := services.WriteCSV(out, candidates); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out)
		return err
	case formatSummary:
		return writeJSON(out, models.SummaryResponse{Success: true, Summary: services.Summarize(candidates)})
	default:
		return writeJSON(out, models.ScreenResponse{Success: true, Results: candidates})
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
