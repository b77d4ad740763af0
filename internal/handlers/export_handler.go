package handlers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-screener/internal/services"
)

// HandleExport handles POST /api/v1/screen/export
func (h *ScreenHandler) HandleExport(c *fiber.Ctx) error {
	batch, err := h.screen(c)
	if err != nil {
		return h.fail(c, err)
	}

	var buf bytes.Buffer
	if err := services.WriteCSV(&buf, batch.Candidates); err != nil {
		return h.fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, services.ExportFilename))
	return c.Send(buf.Bytes())
}
