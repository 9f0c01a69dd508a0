// Package catalog holds the static state reference data. The catalog is read
// from a JSON document once at startup and treated as immutable for the
// process lifetime.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"medcard/models"
)

// Catalog answers lookups against the loaded state list. A lookup miss is not
// an error; callers treat Find's second return as an optional result.
type Catalog struct {
	states []models.StateInfo
	bySlug map[string]models.StateInfo
}

// Load reads the state catalog from the given JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read state catalog %s: %w", path, err)
	}

	var states []models.StateInfo
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, fmt.Errorf("failed to parse state catalog %s: %w", path, err)
	}

	bySlug := make(map[string]models.StateInfo, len(states))
	for _, s := range states {
		if s.Slug == "" {
			return nil, fmt.Errorf("state catalog %s: entry %q has no slug", path, s.Name)
		}
		if _, dup := bySlug[s.Slug]; dup {
			return nil, fmt.Errorf("state catalog %s: duplicate slug %q", path, s.Slug)
		}
		bySlug[s.Slug] = s
	}

	return &Catalog{states: states, bySlug: bySlug}, nil
}

// List returns all states in catalog order.
func (c *Catalog) List() []models.StateInfo {
	out := make([]models.StateInfo, len(c.states))
	copy(out, c.states)
	return out
}

// Find returns the state for the given slug, if present.
func (c *Catalog) Find(slug string) (models.StateInfo, bool) {
	s, ok := c.bySlug[slug]
	return s, ok
}
