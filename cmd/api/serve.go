package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/handlers"
	"alfredoptarigan/resume-screener/internal/server"
	"alfredoptarigan/resume-screener/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8000", "port to listen on")
	if err := viper.BindPFlag(config.KeyPort, serveCmd.Flags().Lookup("port")); err != nil {
		panic(err)
	}
}

func serve() error {
	cfg, logger, err := setup()
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer logger.Sync()

	loader := services.NewDocumentLoader(cfg.Storage.MaxFileSize)
	processor := services.NewDefaultBatchProcessor(cfg.Worker.Concurrency, logger)
	screenHandler := handlers.NewScreenHandler(loader, processor, cfg.Server.ScreenTimeout, logger)

	app := server.New(cfg, screenHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			logger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server starting",
		zap.String("addr", addr),
		zap.String("env", cfg.Server.Env),
		zap.Int("workers", cfg.Worker.Concurrency),
	)

	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
