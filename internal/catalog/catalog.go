package catalog

import (
	"errors"
	"maps"
	"slices"
)

var (
	ErrLoad        = errors.New("cannot load companies")
	ErrInvalidSort = errors.New("invalid sort order")
)

// Catalog is the loaded directory: every record in source order plus the
// distinct categories and wilayas found in them. A Catalog never changes
// after New; reloading means building a new one.
type Catalog struct {
	all        []Record
	categories map[string]struct{}
	wilayas    map[string]struct{}
}

func New(records []Record) *Catalog {
	c := &Catalog{
		all:        slices.Clone(records),
		categories: make(map[string]struct{}),
		wilayas:    make(map[string]struct{}),
	}
	for _, r := range c.all {
		if r.Category != "" {
			c.categories[r.Category] = struct{}{}
		}
		if r.Wilaya != "" {
			c.wilayas[r.Wilaya] = struct{}{}
		}
	}
	return c
}

// All returns a copy of the records in source order.
func (c *Catalog) All() []Record {
	return slices.Clone(c.records())
}

func (c *Catalog) Len() int {
	return len(c.records())
}

// Categories returns the distinct non-empty categories, sorted.
func (c *Catalog) Categories() []string {
	if c == nil {
		return []string{}
	}
	return sortedKeys(c.categories)
}

// Wilayas returns the distinct non-empty wilayas, sorted.
func (c *Catalog) Wilayas() []string {
	if c == nil {
		return []string{}
	}
	return sortedKeys(c.wilayas)
}

func (c *Catalog) HasCategory(category string) bool {
	if c == nil {
		return false
	}
	_, ok := c.categories[category]
	return ok
}

func (c *Catalog) HasWilaya(wilaya string) bool {
	if c == nil {
		return false
	}
	_, ok := c.wilayas[wilaya]
	return ok
}

func (c *Catalog) records() []Record {
	if c == nil {
		return nil
	}
	return c.all
}

func sortedKeys(set map[string]struct{}) []string {
	keys := slices.Sorted(maps.Keys(set))
	if keys == nil {
		return []string{}
	}
	return keys
}
