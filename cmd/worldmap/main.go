package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"worldmap/internal/config"
	"worldmap/internal/logger"
	"worldmap/internal/tui"
	"worldmap/internal/worldmap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "worldmap: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer log.Sync()

	catalog, err := worldmap.LoadCatalog(cfg.Data.Paths(), log)
	if err != nil {
		log.Error("load datasets", zap.Error(err))
		return err
	}

	m := tui.New(catalog, cfg.ActiveResolution(), lipgloss.Color(cfg.Color), log)
	final, err := tui.Run(m)
	if err != nil {
		log.Error("viewer stopped", zap.Error(err))
		return err
	}
	log.Info("viewer exited", zap.Stringer("viewport", final.Viewport()))
	return nil
}
