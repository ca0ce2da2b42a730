package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/lexis/internal/config"
	"github.com/sant0-9/lexis/internal/generation"
	"github.com/sant0-9/lexis/internal/llm"
	"github.com/sant0-9/lexis/internal/logging"
	"github.com/sant0-9/lexis/internal/preset"
	"github.com/sant0-9/lexis/internal/tui"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	closeLog, err := logging.Init(logPath, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return err
	}
	defer closeLog()

	slog.Info("starting lexis",
		"version", version,
		logging.FieldProvider, cfg.Provider,
		logging.FieldModel, cfg.Model,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create provider: %w", err)
	}

	var presets *preset.Index
	if dir, err := preset.Dir(); err == nil {
		presets, err = preset.NewIndex(dir, slog.Default())
		if err != nil {
			slog.Warn("reading presets", logging.FieldPath, dir, logging.FieldError, err.Error())
		}
	}

	app := tui.NewApp(ctx, tui.Options{
		Config:  cfg,
		Client:  generation.NewClient(provider, cfg.Model, slog.Default()),
		Presets: presets,
		Logger:  slog.Default(),
	})
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return err
	}
	slog.Info("exiting")
	return nil
}
