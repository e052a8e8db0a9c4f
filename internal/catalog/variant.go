package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Variant selects the visual treatment of an app's logo disc.
type Variant string

const (
	VariantLight Variant = "light"
	VariantSky   Variant = "sky"
	VariantDark  Variant = "dark"
)

var variantBackgrounds = map[Variant]string{
	VariantLight: "#ffffff",
	VariantSky:   "#E5F8FF",
	VariantDark:  "#000000",
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	_, ok := variantBackgrounds[v]
	return ok
}

// Background returns the CSS colour of the logo disc.
func (v Variant) Background() string {
	if bg, ok := variantBackgrounds[v]; ok {
		return bg
	}
	return variantBackgrounds[VariantDark]
}

// Dark reports whether the disc needs light foreground content.
func (v Variant) Dark() bool {
	return v == VariantDark || !v.Valid()
}

func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed := Variant(s)
	if s != "" && !parsed.Valid() {
		return fmt.Errorf("line %d: unknown variant %q", node.Line, s)
	}
	*v = parsed
	return nil
}

// Icon names the fallback glyph drawn when an app has no logo image.
type Icon string

const (
	IconSparkles    Icon = "sparkles"
	IconCPUChip     Icon = "cpu-chip"
	IconUserGroup   Icon = "user-group"
	IconAcademicCap Icon = "academic-cap"
)

var iconGlyphs = map[Icon]string{
	IconSparkles:    "✦",
	IconCPUChip:     "▣",
	IconUserGroup:   "☻",
	IconAcademicCap: "⌂",
}

// Valid reports whether i is one of the known icons.
func (i Icon) Valid() bool {
	_, ok := iconGlyphs[i]
	return ok
}

// Glyph is a single-character rendition used by the terminal UI.
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return iconGlyphs[IconSparkles]
}

func (i *Icon) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed := Icon(s)
	if s != "" && !parsed.Valid() {
		return fmt.Errorf("line %d: unknown icon %q", node.Line, s)
	}
	*i = parsed
	return nil
}
