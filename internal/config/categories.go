package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

var DefaultCategories = []string{
	"Web Development",
	"Mobile Development",
	"Design",
	"Writing",
	"Marketing",
	"Data Entry",
	"Other",
}

type categoriesFile struct {
	Categories []string `yaml:"categories"`
}

// LoadCategories reads the ticket category list from a YAML file of the form
//
//	categories:
//	  - Design
//	  - Writing
//
// An empty path yields DefaultCategories.
func LoadCategories(path string) ([]string, error) {
	if path == "" {
		return append([]string(nil), DefaultCategories...), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read categories file: %w", err)
	}
	return ParseCategories(raw)
}

func ParseCategories(raw []byte) ([]string, error) {
	var f categoriesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse categories: %w", err)
	}
	seen := make(map[string]struct{}, len(f.Categories))
	out := make([]string, 0, len(f.Categories))
	for _, c := range f.Categories {
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("parse categories: no categories defined")
	}
	return out, nil
}
