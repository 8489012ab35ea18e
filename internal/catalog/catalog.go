package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Category identifies one of the fixed health-topic buckets the engine
// scores against. The set is closed: every condition, remedy and tip in the
// catalog belongs to exactly one of these.
type Category string

const (
	CategoryHeadache        Category = "headache"
	CategoryRespiratory     Category = "respiratory"
	CategoryDigestive       Category = "digestive"
	CategoryStress          Category = "stress"
	CategorySleep           Category = "sleep"
	CategoryMusculoskeletal Category = "musculoskeletal"
	CategorySkin            Category = "skin"
)

// Categories lists every known category in definition order. Ranking uses
// this order to break score ties, so it must stay stable.
var Categories = []Category{
	CategoryHeadache,
	CategoryRespiratory,
	CategoryDigestive,
	CategoryStress,
	CategorySleep,
	CategoryMusculoskeletal,
	CategorySkin,
}

// Condition is a named possible health issue with the keywords used to match
// it against symptom text.
type Condition struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Remedy is a suggested homeopathic item. Dosage, frequency and duration are
// free text taken straight from the reference tables.
type Remedy struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Dosage      string `yaml:"dosage"`
	Frequency   string `yaml:"frequency"`
	Duration    string `yaml:"duration"`
}

type categoryEntry struct {
	ID         Category    `yaml:"id"`
	Phrase     string      `yaml:"phrase"`
	Triggers   []string    `yaml:"triggers"`
	Conditions []Condition `yaml:"conditions"`
	Remedies   []Remedy    `yaml:"remedies"`
	Lifestyle  []string    `yaml:"lifestyle"`
	Dietary    []string    `yaml:"dietary"`
}

type catalogFile struct {
	Categories []categoryEntry `yaml:"categories"`
}

// Catalog holds the static reference tables. It is built once at startup and
// never mutated afterwards; engines receive it by injection.
type Catalog struct {
	entries map[Category]categoryEntry
}

//go:embed data.yaml
var rawData []byte

// Load parses and validates the embedded reference tables.
func Load() (*Catalog, error) {
	return parse(rawData)
}

func parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog data: %w", err)
	}

	known := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		known[c] = true
	}

	entries := make(map[Category]categoryEntry, len(file.Categories))
	for _, entry := range file.Categories {
		if !known[entry.ID] {
			return nil, fmt.Errorf("catalog references unknown category %q", entry.ID)
		}
		if _, dup := entries[entry.ID]; dup {
			return nil, fmt.Errorf("catalog defines category %q twice", entry.ID)
		}
		if len(entry.Triggers) == 0 {
			return nil, fmt.Errorf("category %q has no trigger keywords", entry.ID)
		}
		if len(entry.Conditions) == 0 {
			return nil, fmt.Errorf("category %q has no conditions", entry.ID)
		}
		entries[entry.ID] = entry
	}

	for _, c := range Categories {
		if _, ok := entries[c]; !ok {
			return nil, fmt.Errorf("catalog is missing category %q", c)
		}
	}

	return &Catalog{entries: entries}, nil
}

// Triggers returns the trigger keyword list for a category, in rule order.
func (c *Catalog) Triggers(cat Category) []string {
	return c.entries[cat].Triggers
}

// Conditions returns the condition list for a category.
func (c *Catalog) Conditions(cat Category) []Condition {
	return c.entries[cat].Conditions
}

// Remedies returns the remedy list for a category, in catalog order.
func (c *Catalog) Remedies(cat Category) []Remedy {
	return c.entries[cat].Remedies
}

// Lifestyle returns the lifestyle tips for a category.
func (c *Catalog) Lifestyle(cat Category) []string {
	return c.entries[cat].Lifestyle
}

// Dietary returns the dietary suggestions for a category.
func (c *Catalog) Dietary(cat Category) []string {
	return c.entries[cat].Dietary
}

// Phrase returns the human-readable display phrase for a category, falling
// back to the raw identifier when none is configured.
func (c *Catalog) Phrase(cat Category) string {
	if entry, ok := c.entries[cat]; ok && entry.Phrase != "" {
		return entry.Phrase
	}
	return string(cat)
}
