package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/saadkhalil01/portfolio/internal/catalog"
	"github.com/saadkhalil01/portfolio/internal/config"
	"github.com/saadkhalil01/portfolio/internal/logging"
	"github.com/saadkhalil01/portfolio/internal/profile"
	"github.com/saadkhalil01/portfolio/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "portfolio-tui:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// the alternate screen owns the terminal, so logs go to a file if asked
	var out io.Writer = io.Discard
	if cfg.TUILogFile != "" {
		f, err := os.OpenFile(cfg.TUILogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := logging.Component(logging.New(cfg.LogLevel, "json", out), "tui")

	apps, err := catalog.Open(cfg.AppsFile)
	if err != nil {
		return err
	}
	prof, err := profile.Default()
	if err != nil {
		return err
	}

	log.Info().Int("apps", apps.Len()).Msg("starting terminal portfolio")
	return tui.Run(tui.Params{
		Catalog: apps,
		Profile: prof,
		Log:     log,
	})
}
