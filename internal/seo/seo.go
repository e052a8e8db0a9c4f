package seo

import (
	"strings"

	"github.com/saadkhalil01/portfolio/internal/catalog"
	"github.com/saadkhalil01/portfolio/internal/profile"
)

const (
	siteName     = "Saad Khalil Portfolio"
	defaultTitle = "Muhammad Saad - React Native Developer"
	defaultDesc  = "Portfolio of Muhammad Saad - React Native Developer with 2.5+ years experience"
	shareImage   = "/android-chrome-512x512.png"
)

type OpenGraph struct {
	Title       string
	Description string
	URL         string
	SiteName    string
	Image       string
	ImageAlt    string
	ImageWidth  int
	ImageHeight int
	Locale      string
	Type        string
}

type Twitter struct {
	Card        string
	Title       string
	Description string
	Image       string
}

// Meta is the head metadata of a page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// ForHome builds the metadata of the gallery page.
func ForHome(siteURL string, p *profile.Profile, apps []*catalog.Item) Meta {
	m := base(siteURL, defaultTitle, defaultDesc, siteURL+"/")
	m.JSONLD = []string{
		JSON(Person(p, siteURL)),
		JSON(AppList(siteURL, apps)),
	}
	return m
}

// ForApp builds the metadata of an app's detail page.
func ForApp(siteURL string, p *profile.Profile, app *catalog.Item) Meta {
	title := app.Name + " - " + defaultTitle
	m := base(siteURL, title, app.Description, AppURL(siteURL, app))
	m.JSONLD = []string{
		JSON(Person(p, siteURL)),
		JSON(SoftwareApplication(siteURL, p, app)),
	}
	return m
}

// AppURL is the canonical URL of an app's detail page.
func AppURL(siteURL string, app *catalog.Item) string {
	return strings.TrimRight(siteURL, "/") + "/apps/" + strings.TrimPrefix(app.Fragment(), "#")
}

func base(siteURL, title, desc, canonical string) Meta {
	image := strings.TrimRight(siteURL, "/") + shareImage
	return Meta{
		Title:       title,
		Description: desc,
		Canonical:   canonical,
		Robots:      "index, follow, max-video-preview:-1, max-image-preview:large, max-snippet:-1",
		OG: OpenGraph{
			Title:       title,
			Description: desc,
			URL:         canonical,
			SiteName:    siteName,
			Image:       image,
			ImageAlt:    "Saad Khalil - React Native Developer",
			ImageWidth:  512,
			ImageHeight: 512,
			Locale:      "en_US",
			Type:        "website",
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       title,
			Description: desc,
			Image:       image,
		},
	}
}
