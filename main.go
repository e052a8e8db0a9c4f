package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/saadkhalil01/portfolio/internal/catalog"
	"github.com/saadkhalil01/portfolio/internal/config"
	"github.com/saadkhalil01/portfolio/internal/logging"
	"github.com/saadkhalil01/portfolio/internal/profile"
	"github.com/saadkhalil01/portfolio/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	apps, err := catalog.Open(cfg.AppsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load app roster")
	}
	prof, err := profile.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("load profile")
	}

	srv, err := web.New(cfg, apps, prof, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
