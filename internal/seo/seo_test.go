package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadkhalil01/portfolio/internal/catalog"
	"github.com/saadkhalil01/portfolio/internal/profile"
)

func fixtures(t *testing.T) (*profile.Profile, *catalog.Catalog) {
	t.Helper()
	p, err := profile.Default()
	require.NoError(t, err)
	return p, catalog.Default()
}

func TestForHome(t *testing.T) {
	p, c := fixtures(t)
	m := ForHome("https://saadkhalil.dev", p, c.Items())

	assert.Equal(t, "Muhammad Saad - React Native Developer", m.Title)
	assert.Equal(t, "https://saadkhalil.dev/", m.Canonical)
	assert.Equal(t, "summary_large_image", m.Twitter.Card)
	assert.Equal(t, "https://saadkhalil.dev/android-chrome-512x512.png", m.OG.Image)
	assert.Equal(t, "Saad Khalil Portfolio", m.OG.SiteName)
	require.Len(t, m.JSONLD, 2)

	var list map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[1]), &list))
	assert.Equal(t, "ItemList", list["@type"])
	assert.Len(t, list["itemListElement"], 4)
}

func TestForApp(t *testing.T) {
	p, c := fixtures(t)
	app, err := c.ByName("MyndSpark")
	require.NoError(t, err)

	m := ForApp("https://saadkhalil.dev/", p, app)
	assert.Equal(t, "MyndSpark - Muhammad Saad - React Native Developer", m.Title)
	assert.Equal(t, app.Description, m.Description)
	assert.Equal(t, "https://saadkhalil.dev/apps/MyndSpark", m.Canonical)

	var sa map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[1]), &sa))
	assert.Equal(t, "SoftwareApplication", sa["@type"])
	assert.Equal(t, "iOS, Android", sa["operatingSystem"])
}

func TestSoftwareApplicationSingleStore(t *testing.T) {
	p, c := fixtures(t)
	app, err := c.ByName("FanGenie")
	require.NoError(t, err)

	sa := SoftwareApplication("https://saadkhalil.dev", p, app)
	assert.Equal(t, "iOS", sa["operatingSystem"])
	assert.Equal(t, []string{app.Links.AppStore}, sa["downloadUrl"])
}

func TestPerson(t *testing.T) {
	p, _ := fixtures(t)
	person := Person(p, "")
	assert.NotContains(t, person, "url")
	assert.Equal(t, []string{p.LinkedIn, p.GitHub}, person["sameAs"])
}

func TestJSONInvalid(t *testing.T) {
	assert.Empty(t, JSON(map[string]any{"bad": make(chan int)}))
}
