package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saadkhalil01/portfolio/internal/seo"
)

// Gallery page
func (s *Server) handleHome(c *gin.Context) {
	p := s.pages.open()
	c.HTML(http.StatusOK, "page", s.viewData(p))
}

// Detail page reached by URL. Nothing was pushed for it, so going back
// closes the detail in place.
func (s *Server) handleApp(c *gin.Context) {
	item, err := s.catalog.ByName(c.Param("name"))
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found", s.notFoundData())
		return
	}
	p := s.pages.open()
	_ = p.ctrl.Show(item)
	c.HTML(http.StatusOK, "page", s.viewData(p))
}

func (s *Server) handleSelect(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	item, err := s.catalog.ByID(id)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	p := pageFrom(c)
	_ = p.ctrl.SelectItem(item)
	s.renderView(c, p)
}

func (s *Server) handleBack(c *gin.Context) {
	p := pageFrom(c)
	p.ctrl.GoBack()
	s.renderView(c, p)
}

func (s *Server) handlePopState(c *gin.Context) {
	p := pageFrom(c)
	p.ctrl.OnBackNavigation()
	s.renderView(c, p)
}

func (s *Server) handleMenu(c *gin.Context) {
	p := pageFrom(c)
	p.ctrl.ToggleMenu()
	s.renderView(c, p)
}

// renderView sends queued history events along with the view fragment.
func (s *Server) renderView(c *gin.Context, p *page) {
	if trigger, ok := p.history.trigger(); ok {
		c.Header("HX-Trigger", trigger)
	}
	if !isHTMX(c) {
		// plain form posts land back on a full page
		c.HTML(http.StatusOK, "page", s.viewData(p))
		return
	}
	c.HTML(http.StatusOK, "view", s.viewData(p))
}

func (s *Server) notFoundData() viewData {
	meta := seo.ForHome(s.siteURL, s.profile, s.catalog.Items())
	meta.Title = "Not found - " + meta.Title
	meta.Robots = "noindex"
	meta.JSONLD = nil
	return viewData{
		Profile: s.profile,
		Meta:    meta,
	}
}
