package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/services"
)

// HandleSummary handles POST /api/v1/screen/summary
func (h *ScreenHandler) HandleSummary(c *fiber.Ctx) error {
	batch, err := h.screen(c)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(models.SummaryResponse{
		Success: true,
		Summary: services.Summarize(batch.Candidates),
	})
}
