package main

import (
	"fmt"
	"os"

	"release-gantt/internal/app"
	"release-gantt/internal/config"
	"release-gantt/internal/logger"
)

func main() {
	cfg, err := config.FromEnvironment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration failed: %v\n", err)
		os.Exit(1)
	}

	appLogger := newLogger(cfg)

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Main", "run failed", err, nil)
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	if cfg.Headless() {
		return app.RunTerminal(cfg, log, os.Stdout)
	}

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("application initialization failed: %w", err)
	}
	return application.Run()
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(os.Stderr, logger.ParseLevel(cfg.LogLevel), !cfg.JSONLogs)
}
