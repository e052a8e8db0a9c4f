package web

import (
	"embed"
	"html/template"
	"net/url"
	"strings"

	"github.com/saadkhalil01/portfolio/internal/catalog"
	"github.com/saadkhalil01/portfolio/internal/profile"
	"github.com/saadkhalil01/portfolio/internal/seo"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// viewData is the model of both the full page and the view fragment.
type viewData struct {
	PageID   string
	Profile  *profile.Profile
	Apps     []*catalog.Item
	Selected *catalog.Item
	MenuOpen bool
	Meta     seo.Meta
}

func (s *Server) viewData(p *page) viewData {
	st := p.ctrl.State()
	d := viewData{
		PageID:   p.id,
		Profile:  s.profile,
		Apps:     s.catalog.Items(),
		Selected: st.Selected,
		MenuOpen: st.MenuOpen,
	}
	if st.Selected != nil {
		d.Meta = seo.ForApp(s.siteURL, s.profile, st.Selected)
	} else {
		d.Meta = seo.ForHome(s.siteURL, s.profile, d.Apps)
	}
	return d
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"asset":   assetPath,
		"appHref": appHref,
		"jsonld":  func(s string) template.JS { return template.JS(s) },
		"inc":     func(i int) int { return i + 1 },
	}
	return template.New("_root").Funcs(funcMap).ParseFS(templatesFS, "templates/*.tmpl")
}

// assetPath maps a relative asset path to its public URL.
func assetPath(rel string) string {
	parts := strings.Split(strings.TrimPrefix(rel, "/"), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return "/assets/" + strings.Join(parts, "/")
}

// appHref is the no-script URL of an app's detail page.
func appHref(it *catalog.Item) string {
	return "/apps/" + strings.TrimPrefix(it.Fragment(), "#")
}
