// Package main is the entry point for the 2D spline editor.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/nurbs-editor/internal/app"
	"github.com/Faultbox/nurbs-editor/internal/config"
	"github.com/Faultbox/nurbs-editor/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Window.Title == config.Default().Window.Title {
		cfg.Window.Title = "Spline editor"
	}

	if err := logger.Init(cfg.Logging.LoggerOptions()); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	editor, err := app.NewSpline(cfg)
	if err != nil {
		logger.Error("failed to create editor", zap.Error(err))
		os.Exit(1)
	}
	defer editor.Close()

	if err := editor.Run(); err != nil {
		logger.Error("editor error", zap.Error(err))
		os.Exit(1)
	}
}
