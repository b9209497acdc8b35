// Package keywords defines the static keyword-rule table mapping category
// names to the keyword lists the lexical scorer matches against.
package keywords

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"palpite/internal/common"
)

// Table maps a category name to its ordered keyword list. A Table is
// loaded once at startup and treated as immutable afterwards.
type Table struct {
	categories map[string][]string
	names      []string
}

// NewTable builds a table from a category→keywords mapping. Keywords are
// lowercased; category names are kept as given.
func NewTable(categories map[string][]string) (*Table, error) {
	if len(categories) == 0 {
		return nil, common.ErrNoCategories
	}

	normalized := make(map[string][]string, len(categories))
	names := make([]string, 0, len(categories))

	for name, kws := range categories {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: category with empty name", common.ErrInvalidConfig)
		}

		list := make([]string, 0, len(kws))
		for _, kw := range kws {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				list = append(list, kw)
			}
		}

		normalized[name] = list
		names = append(names, name)
	}

	sort.Strings(names)

	return &Table{categories: normalized, names: names}, nil
}

// Categories returns the category names in lexical order.
func (t *Table) Categories() []string {
	return t.names
}

// Keywords returns the keyword list for a category. The returned slice
// must not be modified.
func (t *Table) Keywords(category string) []string {
	return t.categories[category]
}

// Has reports whether the table knows a category.
func (t *Table) Has(category string) bool {
	_, ok := t.categories[category]
	return ok
}

// tableFile is the YAML shape of a keyword table override file.
type tableFile struct {
	Categories map[string][]string `yaml:"categories"`
}

// LoadFile reads a keyword table from a YAML file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user config
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword file: %w", err)
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidKeywordFile, err)
	}

	table, err := NewTable(file.Categories)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidKeywordFile, err)
	}
	return table, nil
}
