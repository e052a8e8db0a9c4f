package catalog

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNotFound is returned by lookups for an unknown id or name.
var ErrNotFound = errors.New("app not found")

// Links holds the optional store listings of an app. Both are independent.
type Links struct {
	AppStore  string `yaml:"appstore" json:"appstore,omitempty"`
	PlayStore string `yaml:"playstore" json:"playstore,omitempty"`
}

// Empty reports whether the app has no store listing at all.
func (l Links) Empty() bool {
	return l.AppStore == "" && l.PlayStore == ""
}

// Item is a showcased application. Items are built once and never mutated.
type Item struct {
	ID           int      `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Screens      []string `yaml:"screens"`
	Features     []string `yaml:"features"`
	Technologies []string `yaml:"technologies"`
	Links        Links    `yaml:"links"`

	// Presentation
	Variant     Variant  `yaml:"variant"`
	Icon        Icon     `yaml:"icon"`
	Logo        string   `yaml:"logo"`
	Screenshots []string `yaml:"screenshots"`
}

// Fragment is the shareable fragment identifier for the app's detail view,
// e.g. "#MyndSpark". The name is encoded like a URI component.
func (it *Item) Fragment() string {
	return "#" + encodeComponent(it.Name)
}

// componentMarks stay literal in a URI component but are escaped by
// url.QueryEscape.
var componentMarks = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentMarks.Replace(url.QueryEscape(s))
}

// HasLogo reports whether a logo image should be rendered instead of the icon.
func (it *Item) HasLogo() bool {
	return it.Logo != ""
}

// Catalog is an ordered, read-only set of items.
type Catalog struct {
	items  []*Item
	byID   map[int]*Item
	byName map[string]*Item
}

// New builds a catalog after validating the items.
func New(items []Item) (*Catalog, error) {
	if err := Validate(items); err != nil {
		return nil, err
	}
	c := &Catalog{
		items:  make([]*Item, 0, len(items)),
		byID:   make(map[int]*Item, len(items)),
		byName: make(map[string]*Item, len(items)),
	}
	for i := range items {
		it := items[i]
		c.items = append(c.items, &it)
		c.byID[it.ID] = &it
		c.byName[it.Name] = &it
	}
	return c, nil
}

// Items returns the items in display order. The returned slice is a copy.
func (c *Catalog) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// ByID looks an item up by its id.
func (c *Catalog) ByID(id int) (*Item, error) {
	if it, ok := c.byID[id]; ok {
		return it, nil
	}
	return nil, ErrNotFound
}

// ByName looks an item up by exact name, then case-insensitively.
func (c *Catalog) ByName(name string) (*Item, error) {
	if it, ok := c.byName[name]; ok {
		return it, nil
	}
	for _, it := range c.items {
		if strings.EqualFold(it.Name, name) {
			return it, nil
		}
	}
	return nil, ErrNotFound
}
