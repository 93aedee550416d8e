// Package search narrows an icon listing down to the paths a user asked for.
package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the paths that contain at least one of terms, compared
// after lowercasing both sides. Lowercasing, unlike full case folding, keeps
// "ss" from matching "ß". Order is preserved. With no terms the input is
// returned unchanged.
func Filter(paths, terms []string) []string {
	if len(terms) == 0 {
		return paths
	}

	lower := cases.Lower(language.Und)
	lowered := make([]string, 0, len(terms))
	for _, term := range terms {
		lowered = append(lowered, lower.String(term))
	}

	matches := make([]string, 0)
	for _, path := range paths {
		p := lower.String(path)
		for _, term := range lowered {
			if strings.Contains(p, term) {
				matches = append(matches, path)
				break
			}
		}
	}
	return matches
}

// CleanTerms trims whitespace and drops empty terms, which would otherwise
// match every path.
func CleanTerms(terms []string) []string {
	cleaned := make([]string, 0, len(terms))
	for _, term := range terms {
		if term = strings.TrimSpace(term); term != "" {
			cleaned = append(cleaned, term)
		}
	}
	return cleaned
}
