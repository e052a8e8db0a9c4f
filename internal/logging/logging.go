package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// New builds the root logger. format is "json" or "console".
func New(level zerolog.Level, format string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// quietPrefixes are not logged per request.
var quietPrefixes = []string{"/static/", "/assets/", "/favicon", "/healthz"}

// Gin logs one event per request: 5xx at error level, 4xx at warn.
func Gin(l zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range quietPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var ev *zerolog.Event
		switch {
		case status >= 500:
			ev = l.Error()
		case status >= 400:
			ev = l.Warn()
		default:
			ev = l.Info()
		}
		if err := c.Errors.Last(); err != nil {
			ev = ev.Err(err.Err)
		}
		ev.Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("remote_ip", c.ClientIP()).
			Bool("htmx", c.GetHeader("HX-Request") == "true").
			Str("page", c.GetHeader("X-Page-ID")).
			Msg("request")
	}
}
