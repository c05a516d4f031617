package faq

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Load reads every file matching the given doublestar patterns and merges
// them into one catalog. Files are JSON or YAML documents mapping category
// name to a list of entries. Patterns that match nothing are skipped, so a
// missing dataset yields an empty catalog rather than an error.
func Load(patterns ...string) (*Catalog, error) {
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding faq pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	var categories []Category
	for _, path := range files {
		cats, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cats...)
	}

	c, err := NewCatalog(categories...)
	if err != nil {
		return nil, err
	}
	c.sources = files
	return c, nil
}

// loadFile decodes through yaml.Node so that category order follows the
// document rather than Go's map iteration order.
func loadFile(path string) ([]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading faq file %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing faq file %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parsing faq file %s: top level must map category names to entries", path)
	}

	cats := make([]Category, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		var entries []Entry
		if err := root.Content[i+1].Decode(&entries); err != nil {
			return nil, fmt.Errorf("decoding category %s in %s: %w", name, path, err)
		}
		cats = append(cats, Category{Name: name, Entries: entries})
	}
	return cats, nil
}
