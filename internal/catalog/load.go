package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// rosterFile is the on-disk shape of a roster override.
type rosterFile struct {
	Apps []Item `yaml:"apps"`
}

// Load decodes a YAML roster. Unknown keys are rejected, an empty variant
// defaults to dark and an empty icon to sparkles.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f rosterFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("roster is empty")
		}
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	for i := range f.Apps {
		if f.Apps[i].Variant == "" {
			f.Apps[i].Variant = VariantDark
		}
		if f.Apps[i].Icon == "" {
			f.Apps[i].Icon = IconSparkles
		}
	}
	return New(f.Apps)
}

// LoadFile reads a YAML roster from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Open returns the roster at path, or the built-in roster when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Validate checks that ids and names are unique and presentation fields
// hold known values.
func Validate(items []Item) error {
	if len(items) == 0 {
		return errors.New("roster has no apps")
	}
	ids := make(map[int]struct{}, len(items))
	names := make(map[string]struct{}, len(items))
	for i, it := range items {
		label := fmt.Sprintf("app #%d", i+1)
		if it.Name != "" {
			label = fmt.Sprintf("app %q", it.Name)
		}
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("%s: name is required", label)
		}
		if it.ID <= 0 {
			return fmt.Errorf("%s: id must be positive", label)
		}
		if _, dup := ids[it.ID]; dup {
			return fmt.Errorf("%s: duplicate id %d", label, it.ID)
		}
		ids[it.ID] = struct{}{}
		key := strings.ToLower(it.Name)
		if _, dup := names[key]; dup {
			return fmt.Errorf("%s: duplicate name", label)
		}
		names[key] = struct{}{}
		if !it.Variant.Valid() {
			return fmt.Errorf("%s: unknown variant %q", label, it.Variant)
		}
		if !it.Icon.Valid() {
			return fmt.Errorf("%s: unknown icon %q", label, it.Icon)
		}
	}
	return nil
}
