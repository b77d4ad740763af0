package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/logger"
)

const appName = "resume-screener"

var rootCmd = &cobra.Command{
	Use:          appName,
	Short:        "resume-screener ranks resumes against a job description by lexical overlap",
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().Int("workers", 4, "number of resumes screened in parallel")
	rootCmd.PersistentFlags().Int64("max-file-size", 10485760, "maximum size of a single document in bytes")

	// Unchanged flags fall through to the environment and the defaults.
	bindFlag(config.KeyLogDebug, "debug")
	bindFlag(config.KeyLogJSON, "json")
	bindFlag(config.KeyWorkerConcurrency, "workers")
	bindFlag(config.KeyMaxFileSize, "max-file-size")
}

func bindFlag(key, name string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(name)); err != nil {
		log.Fatalf("binding flag %s: %v", name, err)
	}
}

// setup loads the configuration and builds the logger shared by all commands.
func setup() (*config.Config, *zap.Logger, error) {
	cfg := config.Load()

	l, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, nil, err
	}
	return cfg, l, nil
}
