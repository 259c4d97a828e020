// Package corpus loads the static knowledge dataset: domain records and
// knowledge items, either from YAML files or from the built-in seed.
// The dataset is read once at startup and never changes afterwards.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/execai/kbase/internal/domain"
)

// LoadItems reads knowledge items from a YAML file.
func LoadItems(path string) ([]domain.KnowledgeItem, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return ParseItems(data)
}

// ParseItems decodes knowledge items from YAML bytes.
func ParseItems(data []byte) ([]domain.KnowledgeItem, error) {
	var file itemsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	items := make([]domain.KnowledgeItem, len(file.Items))
	for i, dto := range file.Items {
		items[i] = dto.toDomain()
	}
	return items, nil
}

// LoadDomains reads domain records from a YAML file.
func LoadDomains(path string) ([]domain.Domain, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read domains %s: %w", path, err)
	}
	return ParseDomains(data)
}

// ParseDomains decodes domain records from YAML bytes.
func ParseDomains(data []byte) ([]domain.Domain, error) {
	var file domainsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse domains: %w", err)
	}
	domains := make([]domain.Domain, len(file.Domains))
	for i, dto := range file.Domains {
		domains[i] = dto.toDomain()
	}
	return domains, nil
}

// Validate checks dataset integrity: unique item IDs, non-empty content, and
// every item referencing a loaded domain.
func Validate(items []domain.KnowledgeItem, domains []domain.Domain) error {
	known := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		known[d.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ID == "" {
			return fmt.Errorf("item with empty id: %w", domain.ErrDuplicateItem)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("item %q: %w", item.ID, domain.ErrDuplicateItem)
		}
		seen[item.ID] = struct{}{}

		if strings.TrimSpace(item.Content) == "" {
			return fmt.Errorf("item %q has empty content", item.ID)
		}
		if _, ok := known[item.Domain]; !ok {
			return fmt.Errorf("item %q references domain %q: %w", item.ID, item.Domain, domain.ErrUnknownDomain)
		}
	}
	return nil
}
