package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nissyi-gh/quadro/internal/board"
	"github.com/nissyi-gh/quadro/internal/config"
	"github.com/nissyi-gh/quadro/internal/dates"
	"github.com/nissyi-gh/quadro/internal/i18n"
	"github.com/nissyi-gh/quadro/internal/logging"
	"github.com/nissyi-gh/quadro/internal/store"
	"github.com/nissyi-gh/quadro/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.Open(logging.Options{
		Path:      cfg.LogFile,
		Level:     cfg.LogLevel,
		Formatter: cfg.LogFormat,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer st.Close()

	tr, err := i18n.New(cfg.Locale)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	b := board.New(logger)
	if err := b.Load(context.Background(), st, cfg.StorageKey); err != nil {
		return fmt.Errorf("restore board: %w", err)
	}
	logger.Info("board restored", "tasks", b.Tasks().Len(), "config", cfg.ConfigFile)

	p := tea.NewProgram(ui.NewModel(ui.Options{
		Board:      b,
		Storage:    st,
		StorageKey: cfg.StorageKey,
		Dates:      dates.New(),
		Translator: tr,
		Logger:     logger,
	}), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	if m, ok := final.(ui.Model); ok {
		if err := m.SaveErr(); err != nil {
			return fmt.Errorf("save board: %w", err)
		}
	}
	return nil
}
