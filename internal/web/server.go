package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/saadkhalil01/portfolio/internal/catalog"
	"github.com/saadkhalil01/portfolio/internal/config"
	"github.com/saadkhalil01/portfolio/internal/logging"
	"github.com/saadkhalil01/portfolio/internal/profile"
)

// Server serves the portfolio page and its view-state endpoints.
type Server struct {
	engine  *gin.Engine
	pages   *pageStore
	catalog *catalog.Catalog
	profile *profile.Profile
	siteURL string
	log     zerolog.Logger
}

// New builds the gin engine and registers every route.
func New(cfg *config.Config, cat *catalog.Catalog, prof *profile.Profile, log zerolog.Logger) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		pages:   newPageStore(cfg.PageTTL, cfg.MaxPages, logging.Component(log, "viewstate")),
		catalog: cat,
		profile: prof,
		siteURL: cfg.SiteURL,
		log:     log,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.Gin(logging.Component(log, "http")))
	r.Use(htmxMiddleware())
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))
	if info, err := os.Stat(cfg.PublicDir); err == nil && info.IsDir() {
		r.Static("/assets", cfg.PublicDir)
	} else {
		log.Warn().Str("dir", cfg.PublicDir).Msg("public assets directory not found, /assets disabled")
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// Full pages
	r.GET("/", s.handleHome)
	r.GET("/apps/:name", s.handleApp)

	// htmx view-state endpoints, each returns the view fragment
	view := r.Group("/view")
	view.Use(s.pageMiddleware())
	view.POST("/select/:id", s.handleSelect)
	view.POST("/back", s.handleBack)
	view.POST("/popstate", s.handlePopState)
	view.POST("/menu", s.handleMenu)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not_found", s.notFoundData())
	})

	s.engine = r
	return s, nil
}

// Handler exposes the engine for tests and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.pages.run(sweepCtx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Int("apps", s.catalog.Len()).Msg("portfolio listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
