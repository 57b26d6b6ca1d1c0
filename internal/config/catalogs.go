package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalogs are the host-supplied read-only enumerations of the identifiers
// the quest model may reference. The model itself never enforces them;
// they power selector population and authoring lint.
type Catalogs struct {
	Version   int      `yaml:"version"`
	Skills    []string `yaml:"skills"`
	Items     []string `yaml:"items"`
	Locations []string `yaml:"locations"`

	skillIndex    map[string]struct{}
	itemIndex     map[string]struct{}
	locationIndex map[string]struct{}
}

func LoadCatalogs(path string) (*Catalogs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalogs: %w", err)
	}

	var catalogs Catalogs
	if err := yaml.Unmarshal(data, &catalogs); err != nil {
		return nil, fmt.Errorf("loading catalogs: %w", err)
	}

	if err := validateCatalogs(&catalogs); err != nil {
		return nil, fmt.Errorf("loading catalogs: %w", err)
	}

	catalogs.index()
	return &catalogs, nil
}

func validateCatalogs(c *Catalogs) error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported version: %d", c.Version)
	}
	for kind, ids := range map[string][]string{
		"skills":    c.Skills,
		"items":     c.Items,
		"locations": c.Locations,
	} {
		seen := make(map[string]struct{})
		for i, id := range ids {
			if strings.TrimSpace(id) == "" {
				return fmt.Errorf("%s entry %d is empty", kind, i)
			}
			if _, exists := seen[id]; exists {
				return fmt.Errorf("duplicate %s entry: %s", kind, id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}

func (c *Catalogs) index() {
	c.skillIndex = indexOf(c.Skills)
	c.itemIndex = indexOf(c.Items)
	c.locationIndex = indexOf(c.Locations)
}

func indexOf(ids []string) map[string]struct{} {
	index := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		index[id] = struct{}{}
	}
	return index
}

func (c *Catalogs) HasSkill(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.skillIndex[id]
	return ok
}

func (c *Catalogs) HasItem(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.itemIndex[id]
	return ok
}

func (c *Catalogs) HasLocation(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.locationIndex[id]
	return ok
}
