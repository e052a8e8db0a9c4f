package seo

import (
	"encoding/json"
	"strings"

	"github.com/saadkhalil01/portfolio/internal/catalog"
	"github.com/saadkhalil01/portfolio/internal/profile"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Person returns the schema.org Person of the site owner.
func Person(p *profile.Profile, siteURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     p.FullName,
		"jobTitle": p.Role,
		"email":    "mailto:" + p.Email,
	}
	if siteURL != "" {
		m["url"] = siteURL
	}
	var same []string
	for _, u := range []string{p.LinkedIn, p.GitHub} {
		if u != "" {
			same = append(same, u)
		}
	}
	if len(same) > 0 {
		m["sameAs"] = same
	}
	return m
}

// SoftwareApplication returns a minimal mobile app schema payload.
func SoftwareApplication(siteURL string, p *profile.Profile, app *catalog.Item) map[string]any {
	m := map[string]any{
		"@context":            "https://schema.org",
		"@type":               "SoftwareApplication",
		"name":                app.Name,
		"description":         app.Description,
		"applicationCategory": "MobileApplication",
		"url":                 AppURL(siteURL, app),
		"author":              map[string]any{"@type": "Person", "name": p.FullName},
	}
	var systems, downloads []string
	if app.Links.AppStore != "" {
		systems = append(systems, "iOS")
		downloads = append(downloads, app.Links.AppStore)
	}
	if app.Links.PlayStore != "" {
		systems = append(systems, "Android")
		downloads = append(downloads, app.Links.PlayStore)
	}
	if len(systems) > 0 {
		m["operatingSystem"] = strings.Join(systems, ", ")
		m["downloadUrl"] = downloads
	}
	if len(app.Features) > 0 {
		m["featureList"] = app.Features
	}
	return m
}

// AppList builds a schema.org ItemList of the roster.
func AppList(siteURL string, apps []*catalog.Item) map[string]any {
	el := make([]map[string]any, 0, len(apps))
	for i, app := range apps {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     app.Name,
			"url":      AppURL(siteURL, app),
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"itemListElement": el,
	}
}
