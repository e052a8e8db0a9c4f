package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ctxKeyHTMX = "htmx"
	ctxKeyPage = "page"

	headerPageID = "X-Page-ID"
)

// htmxMiddleware marks requests issued by htmx so handlers can adapt responses.
func htmxMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxKeyHTMX, c.GetHeader("HX-Request") == "true")
		c.Next()
	}
}

func isHTMX(c *gin.Context) bool {
	return c.GetBool(ctxKeyHTMX)
}

// pageMiddleware resolves the page instance named by X-Page-ID. Unknown
// pages (expired, or from before a restart) get 410 and a full refresh.
func (s *Server) pageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerPageID)
		if id == "" {
			id = c.PostForm("page")
		}
		p, ok := s.pages.get(id)
		if !ok {
			c.Header("HX-Refresh", "true")
			c.AbortWithStatus(http.StatusGone)
			return
		}
		c.Set(ctxKeyPage, p)

		p.mu.Lock()
		defer p.mu.Unlock()
		p.history.begin(isHTMX(c))
		c.Next()
	}
}

func pageFrom(c *gin.Context) *page {
	return c.MustGet(ctxKeyPage).(*page)
}
