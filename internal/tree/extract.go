package tree

import (
	"sort"
	"strings"
)

// Extract returns the icon paths under prefix, relative to it. The result
// is deduplicated and sorted byte-wise. It is empty, never nil, when the
// payload has no matching entries.
func Extract(p Payload, prefix string) []string {
	seen := make(map[string]struct{})
	for _, path := range p.Paths() {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		if !strings.HasSuffix(path, IconSuffix) {
			continue
		}
		seen[strings.TrimPrefix(path, prefix)] = struct{}{}
	}

	icons := make([]string, 0, len(seen))
	for rel := range seen {
		icons = append(icons, rel)
	}
	sort.Strings(icons)

	return icons
}
