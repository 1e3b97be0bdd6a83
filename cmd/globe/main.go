// Package main is the entry point for the globe viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/app"
	"github.com/Faultbox/globe/internal/config"
	"github.com/Faultbox/globe/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := initLogger(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("=== Globe ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.WriteConfig() {
		path, err := cfg.Save()
		if err != nil {
			logger.Error("failed to write config", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", path))
		logger.Sync()
		return
	}

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		if cfg.Debug.ErrorDialog {
			dialog.Message("%v", err).Title(app.Title).Error()
		}
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
	logger.Sync()
}

func initLogger(cfg config.LoggingConfig) error {
	opts := logger.Options{Level: cfg.Level, Console: true}
	if cfg.LogFile != "" {
		opts.File = logger.Rotate(cfg.LogFile)
		if cfg.MaxSizeMB > 0 {
			opts.File.MaxSizeMB = cfg.MaxSizeMB
		}
		if cfg.MaxBackups > 0 {
			opts.File.MaxBackups = cfg.MaxBackups
		}
	}
	return logger.Init(opts)
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create viewer: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}
