package tree

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadIndex reads a local icon index: a YAML or JSON sequence of icon
// paths. Entries that still carry prefix are made relative to it, blank
// entries are dropped, and the result is deduplicated and sorted.
func LoadIndex(path, prefix string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var entries []string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal index: %w", err)
	}

	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		entry = strings.TrimPrefix(entry, prefix)
		if entry == "" {
			continue
		}
		seen[entry] = struct{}{}
	}

	index := make([]string, 0, len(seen))
	for entry := range seen {
		index = append(index, entry)
	}
	sort.Strings(index)

	return index, nil
}
