package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/handlers"
	"alfredoptarigan/resume-screener/internal/middleware"
	"alfredoptarigan/resume-screener/internal/models"
)

// New builds the Fiber app with middleware and routes registered.
func New(cfg *config.Config, screenHandler *handlers.ScreenHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Resume Screener API",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxRequestSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !cfg.IsProduction(),
	}))
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "POST,OPTIONS",
		AllowHeaders: "authorization, x-client-info, apikey, content-type",
	}))

	limit := middleware.RateLimiter(cfg.RateLimit)

	// Path used by the dashboard frontend
	app.Post("/process_resumes", limit, screenHandler.HandleScreen)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/screen", limit, screenHandler.HandleScreen)
	api.Post("/screen/export", limit, screenHandler.HandleExport)
	api.Post("/screen/summary", limit, screenHandler.HandleSummary)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Screener API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /process_resumes/",
				"POST /api/v1/screen",
				"POST /api/v1/screen/export",
				"POST /api/v1/screen/summary",
				"GET /api/v1/health",
			},
		})
	})

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	message := err.Error()
	if message == "" {
		message = "Internal Server Error"
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: message,
	})
}
