package data

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FallbackCategory is used for categories the catalog does not know.
const FallbackCategory = "other"

// Category is a waste material with a default processing energy intensity.
type Category struct {
	Name           string  `yaml:"name" json:"name"`
	Label          string  `yaml:"label" json:"label"`
	WattHoursPerKg float64 `yaml:"watt_hours_per_kg" json:"watt_hours_per_kg"`
	Description    string  `yaml:"description,omitempty" json:"description,omitempty"`
}

// Catalog is the set of known waste categories.
type Catalog struct {
	Categories []Category `yaml:"categories" json:"categories"`
}

// DefaultCatalog returns the built-in categories. Intensities are typical
// sorting-line figures (conveyors, optical sorters, balers) per kg processed.
func DefaultCatalog() *Catalog {
	return &Catalog{Categories: []Category{
		{Name: "plastic", Label: "Plastic", WattHoursPerKg: 45, Description: "PET/HDPE sorting, washing and baling"},
		{Name: "paper", Label: "Paper & cardboard", WattHoursPerKg: 30, Description: "Screening and baling"},
		{Name: "organic", Label: "Organic", WattHoursPerKg: 20, Description: "Shredding and conveying to composting"},
		{Name: "glass", Label: "Glass", WattHoursPerKg: 25, Description: "Colour sorting and crushing"},
		{Name: "metal", Label: "Metal", WattHoursPerKg: 60, Description: "Magnetic/eddy-current separation and compaction"},
		{Name: FallbackCategory, Label: "Other", WattHoursPerKg: 35, Description: "Mixed residual stream"},
	}}
}

// LoadCatalog reads a YAML catalog and overlays it onto the defaults:
// entries with a known name replace the default, new names are appended.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read waste catalog: %w", err)
	}
	var loaded Catalog
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse waste catalog: %w", err)
	}

	out := DefaultCatalog()
	for _, c := range loaded.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("waste catalog %s: category without name", path)
		}
		if c.WattHoursPerKg < 0 {
			return nil, fmt.Errorf("waste catalog %s: %s watt_hours_per_kg must be >= 0", path, c.Name)
		}
		out.upsert(c)
	}
	return out, nil
}

// LoadCatalogOrDefault loads path when set, otherwise returns the defaults.
func LoadCatalogOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalog(path)
}

// Lookup finds a category by name, case-insensitively.
func (c *Catalog) Lookup(name string) (Category, bool) {
	if c == nil {
		return Category{}, false
	}
	key := normalize(name)
	for _, cat := range c.Categories {
		if normalize(cat.Name) == key {
			return cat, true
		}
	}
	return Category{}, false
}

// Intensity returns the Wh/kg for name, falling back to FallbackCategory and
// then to 0 when neither is known.
func (c *Catalog) Intensity(name string) float64 {
	if cat, ok := c.Lookup(name); ok {
		return cat.WattHoursPerKg
	}
	if cat, ok := c.Lookup(FallbackCategory); ok {
		return cat.WattHoursPerKg
	}
	return 0
}

func (c *Catalog) upsert(cat Category) {
	cat.Name = normalize(cat.Name)
	if cat.Label == "" {
		cat.Label = cat.Name
	}
	for i := range c.Categories {
		if c.Categories[i].Name == cat.Name {
			c.Categories[i] = cat
			return
		}
	}
	c.Categories = append(c.Categories, cat)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GetDefaultCatalogPath returns the catalog override path from the
// environment, or "" for the built-in catalog.
func GetDefaultCatalogPath() string {
	return os.Getenv("WASTE_CATALOG_FILE")
}
