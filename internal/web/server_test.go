package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadkhalil01/portfolio/internal/catalog"
	"github.com/saadkhalil01/portfolio/internal/config"
	"github.com/saadkhalil01/portfolio/internal/profile"
	"github.com/saadkhalil01/portfolio/internal/viewstate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	public := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(public, "saadKhalil.pdf"), []byte("%PDF"), 0o644))

	cfg := &config.Config{
		SiteURL:   "https://saadkhalil.dev",
		PublicDir: public,
		PageTTL:   time.Minute,
	}
	prof, err := profile.Default()
	require.NoError(t, err)
	s, err := New(cfg, catalog.Default(), prof, zerolog.Nop())
	require.NoError(t, err)
	return s
}

type client struct {
	t      *testing.T
	s      *Server
	pageID string
}

func (c *client) do(method, target string, htmx bool) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if c.pageID != "" {
		req.Header.Set(headerPageID, c.pageID)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	c.s.Handler().ServeHTTP(rec, req)
	return rec
}

// load fetches a full page and remembers its page id.
func (c *client) load(target string) *goquery.Document {
	c.t.Helper()
	rec := c.do(http.MethodGet, target, false)
	require.Equal(c.t, http.StatusOK, rec.Code)
	doc := parse(c.t, rec)
	id, ok := doc.Find("body").Attr("data-page-id")
	require.True(c.t, ok)
	require.NotEmpty(c.t, id)
	c.pageID = id
	return doc
}

func parse(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func triggers(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	raw := rec.Header().Get("HX-Trigger")
	if raw == "" {
		return nil
	}
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestHomePage(t *testing.T) {
	c := &client{t: t, s: newTestServer(t)}
	doc := c.load("/")

	assert.Equal(t, 1, doc.Find("#view").Length())
	assert.Equal(t, 4, doc.Find(".gallery .app").Length())
	assert.Equal(t, 1, doc.Find(".about").Length())
	assert.Zero(t, doc.Find(".detail").Length())
	assert.Zero(t, doc.Find("#contact-menu").Length())

	first := doc.Find(".gallery .app").First()
	assert.Equal(t, "MyndSpark", first.AttrOr("data-app", ""))
	assert.Equal(t, "/apps/MyndSpark", first.AttrOr("href", ""))
	assert.Equal(t, "/view/select/1", first.AttrOr("hx-post", ""))
	assert.True(t, first.Find(".disc").HasClass("disc-light"))

	assert.Equal(t, "Muhammad Saad - React Native Developer", doc.Find("title").Text())
	assert.Equal(t, "summary_large_image", doc.Find(`meta[name="twitter:card"]`).AttrOr("content", ""))
	assert.Equal(t, 2, doc.Find(`script[type="application/ld+json"]`).Length())
	assert.Contains(t, doc.Find("body").AttrOr("hx-headers", ""), c.pageID)
	assert.Equal(t, "/assets/saadKhalil.pdf", doc.Find(`a:contains("Resume")`).AttrOr("href", ""))
}

func TestSelectPushesHistoryAndBackConsumesIt(t *testing.T) {
	c := &client{t: t, s: newTestServer(t)}
	c.load("/")

	rec := c.do(http.MethodPost, "/view/select/1", true)
	require.Equal(t, http.StatusOK, rec.Code)
	ev := triggers(t, rec)
	require.Contains(t, ev, eventPush)
	var entry viewstate.Entry
	require.NoError(t, json.Unmarshal(ev[eventPush], &entry))
	assert.Equal(t, viewstate.Entry{App: "MyndSpark", URL: "#MyndSpark"}, entry)

	doc := parse(t, rec)
	assert.Zero(t, doc.Find("title").Length(), "fragment only")
	assert.Equal(t, "MyndSpark", doc.Find(".detail").AttrOr("data-app", ""))
	assert.Zero(t, doc.Find(".gallery").Length())
	assert.Equal(t, 2, doc.Find(".stores a").Length())

	// back asks the browser to pop the entry; the view stays until popstate
	rec = c.do(http.MethodPost, "/view/back", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, triggers(t, rec), eventBack)
	assert.Equal(t, 1, parse(t, rec).Find(".detail").Length())

	rec = c.do(http.MethodPost, "/view/popstate", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, triggers(t, rec))
	doc = parse(t, rec)
	assert.Zero(t, doc.Find(".detail").Length())
	assert.Equal(t, 4, doc.Find(".gallery .app").Length())
}

func TestDeepLinkGoesBackInPlace(t *testing.T) {
	c := &client{t: t, s: newTestServer(t)}
	doc := c.load("/apps/FanGenie")

	assert.Equal(t, "FanGenie", doc.Find(".detail").AttrOr("data-app", ""))
	assert.Equal(t, "https://saadkhalil.dev/apps/FanGenie", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	assert.Equal(t, 1, doc.Find(".stores a").Length())
	assert.Zero(t, doc.Find(".screenshots").Length())

	rec := c.do(http.MethodPost, "/view/back", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, triggers(t, rec))
	assert.Equal(t, 4, parse(t, rec).Find(".gallery .app").Length())
}

func TestDeepLinkCaseInsensitive(t *testing.T) {
	c := &client{t: t, s: newTestServer(t)}
	doc := c.load("/apps/loyalai")
	assert.Equal(t, "LoyalAI", doc.Find(".detail").AttrOr("data-app", ""))
	shots := doc.Find(".screenshots img")
	assert.Equal(t, 9, shots.Length())
	assert.Equal(t, "LoyalAI Screenshot 1", shots.First().AttrOr("alt", ""))
	assert.True(t, strings.HasPrefix(shots.First().AttrOr("src", ""), "/assets/loyalai/iMockup%20-%20"))
}

func TestSelectWithoutScriptSkipsPush(t *testing.T) {
	c := &client{t: t, s: newTestServer(t)}
	c.load("/")

	rec := c.do(http.MethodPost, "/view/select/2", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("HX-Trigger"))
	doc := parse(t, rec)
	assert.Equal(t, 1, doc.Find("title").Length(), "full page for plain posts")
	assert.Equal(t, "LoyalAI", doc.Find(".detail").AttrOr("data-app", ""))

	rec = c.do(http.MethodPost, "/view/back", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("HX-Trigger"))
	assert.Zero(t, parse(t, rec).Find(".detail").Length())
}

func TestMenuClosedByBackNavigation(t *testing.T) {
	c := &client{t: t, s: newTestServer(t)}
	c.load("/")

	rec := c.do(http.MethodPost, "/view/menu", true)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parse(t, rec)
	links := doc.Find("#contact-menu a")
	require.Equal(t, 3, links.Length())
	assert.Equal(t, "mailto:saadkhalil9999@gmail.com", links.Eq(0).AttrOr("href", ""))
	assert.Equal(t, "https://wa.me/923229953346", links.Eq(1).AttrOr("href", ""))
	assert.Equal(t, "tel:+923229953346", links.Eq(2).AttrOr("href", ""))
	assert.Equal(t, "true", doc.Find(".contact button").AttrOr("aria-expanded", ""))

	rec = c.do(http.MethodPost, "/view/popstate", true)
	require.Equal(t, http.StatusOK, rec.Code)
	doc = parse(t, rec)
	assert.Zero(t, doc.Find("#contact-menu").Length())
	assert.Equal(t, 4, doc.Find(".gallery .app").Length())
}

func TestPageIDFromForm(t *testing.T) {
	s := newTestServer(t)
	c := &client{t: t, s: s}
	c.load("/")

	form := url.Values{"page": {c.pageID}}
	req := httptest.NewRequest(http.MethodPost, "/view/menu", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, parse(t, rec).Find("#contact-menu").Length())
}

func TestUnknownPageRefreshes(t *testing.T) {
	s := newTestServer(t)
	for _, id := range []string{"", "does-not-exist"} {
		c := &client{t: t, s: s, pageID: id}
		rec := c.do(http.MethodPost, "/view/menu", true)
		assert.Equal(t, http.StatusGone, rec.Code)
		assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
	}
}

func TestSelectBadIDs(t *testing.T) {
	c := &client{t: t, s: newTestServer(t)}
	c.load("/")
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/view/select/abc", true).Code)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/view/select/42", true).Code)
}

func TestNotFound(t *testing.T) {
	c := &client{t: t, s: newTestServer(t)}
	for _, target := range []string{"/apps/Nope", "/nothing/here"} {
		rec := c.do(http.MethodGet, target, false)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		doc := parse(t, rec)
		assert.Equal(t, "noindex", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
		assert.Equal(t, "/", doc.Find(".not-found a").AttrOr("href", ""))
	}
}

func TestHealthAndStatic(t *testing.T) {
	c := &client{t: t, s: newTestServer(t)}

	rec := c.do(http.MethodGet, "/healthz", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = c.do(http.MethodGet, "/static/portfolio.js", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "portfolio:push")

	rec = c.do(http.MethodGet, "/assets/saadKhalil.pdf", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEachLoadIsAFreshPage(t *testing.T) {
	s := newTestServer(t)
	a := &client{t: t, s: s}
	b := &client{t: t, s: s}
	a.load("/")
	b.load("/")
	require.NotEqual(t, a.pageID, b.pageID)

	a.do(http.MethodPost, "/view/select/3", true)
	doc := parse(t, b.do(http.MethodPost, "/view/menu", true))
	assert.Zero(t, doc.Find(".detail").Length())
	assert.Equal(t, 2, s.pages.len())
}

func TestBackScriptGuardsOnPushedEntry(t *testing.T) {
	c := &client{t: t, s: newTestServer(t)}
	rec := c.do(http.MethodGet, "/static/portfolio.js", false)
	require.Equal(t, http.StatusOK, rec.Code)
	js := rec.Body.String()

	start := strings.Index(js, `"portfolio:back"`)
	require.GreaterOrEqual(t, start, 0)
	handler := js[start:]
	handler = handler[:strings.Index(handler, "});")]

	guard := strings.Index(handler, "history.state && history.state.app")
	back := strings.Index(handler, "history.back()")
	require.GreaterOrEqual(t, guard, 0, "history.back must be guarded by the pushed entry")
	require.Greater(t, back, guard)
	assert.Contains(t, handler[back:], "backNavigation()", "unpushed entries close in place")
	assert.Contains(t, js, `htmx.ajax("POST", "/view/popstate"`)
}

// When the browser could not push, the script answers a back event with a
// popstate post; the page must then stay on the gallery for good.
func TestUnconfirmedPushClosesInPlace(t *testing.T) {
	c := &client{t: t, s: newTestServer(t)}
	c.load("/")

	require.Contains(t, triggers(t, c.do(http.MethodPost, "/view/select/4", true)), eventPush)
	require.Contains(t, triggers(t, c.do(http.MethodPost, "/view/back", true)), eventBack)

	rec := c.do(http.MethodPost, "/view/popstate", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, parse(t, rec).Find(".gallery .app").Length())

	// nothing left to pop, so a second back never asks the browser to leave
	rec = c.do(http.MethodPost, "/view/back", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, triggers(t, rec))
	assert.Zero(t, parse(t, rec).Find(".detail").Length())
}

func TestPageLimit(t *testing.T) {
	s := newTestServer(t)
	s.pages = newPageStore(time.Minute, 1, zerolog.Nop())

	old := &client{t: t, s: s}
	old.load("/")
	current := &client{t: t, s: s}
	current.load("/apps/SplitMart")
	assert.Equal(t, 1, s.pages.len())

	rec := old.do(http.MethodPost, "/view/menu", true)
	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))

	rec = current.do(http.MethodPost, "/view/back", true)
	assert.Equal(t, http.StatusOK, rec.Code)
}
