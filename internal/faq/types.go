package faq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEntry is returned when a catalog entry is missing a question,
// an answer or keywords.
var ErrInvalidEntry = errors.New("invalid faq entry")

// Entry is a single question/answer record.
type Entry struct {
	Question string   `json:"question" yaml:"question"`
	Answer   string   `json:"answer" yaml:"answer"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Validate checks the entry invariants.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Question) == "" {
		return fmt.Errorf("%w: empty question", ErrInvalidEntry)
	}
	if strings.TrimSpace(e.Answer) == "" {
		return fmt.Errorf("%w: empty answer for %q", ErrInvalidEntry, e.Question)
	}
	if len(e.Keywords) == 0 {
		return fmt.Errorf("%w: no keywords for %q", ErrInvalidEntry, e.Question)
	}
	return nil
}

// Category is a named, ordered group of entries.
type Category struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Catalog is the immutable, ordered FAQ dataset. Iteration order is
// category order, then entry order, exactly as loaded.
type Catalog struct {
	categories []Category
	sources    []string
}

// NewCatalog validates the categories and builds a catalog. Categories that
// share a name are merged, keeping the position of the first one.
func NewCatalog(categories ...Category) (*Catalog, error) {
	c := &Catalog{}
	index := make(map[string]int)
	for _, cat := range categories {
		for _, e := range cat.Entries {
			if err := e.Validate(); err != nil {
				return nil, fmt.Errorf("category %s: %w", cat.Name, err)
			}
		}
		if i, ok := index[cat.Name]; ok {
			c.categories[i].Entries = append(c.categories[i].Entries, cat.Entries...)
			continue
		}
		index[cat.Name] = len(c.categories)
		entries := make([]Entry, len(cat.Entries))
		copy(entries, cat.Entries)
		c.categories = append(c.categories, Category{Name: cat.Name, Entries: entries})
	}
	return c, nil
}

// Categories returns a copy of the categories in catalog order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		entries := make([]Entry, len(cat.Entries))
		copy(entries, cat.Entries)
		out[i] = Category{Name: cat.Name, Entries: entries}
	}
	return out
}

// CategoryNames returns category names in catalog order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Len returns the total number of entries.
func (c *Catalog) Len() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Entries)
	}
	return n
}

// Sources lists the files the catalog was loaded from.
func (c *Catalog) Sources() []string {
	out := make([]string, len(c.sources))
	copy(out, c.sources)
	return out
}
