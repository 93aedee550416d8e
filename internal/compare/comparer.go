package compare

import (
	"fmt"
	"sort"
	"strings"

	"iconsearch-go/internal/hash"
)

type ChangeType string

const (
	Missing ChangeType = "MISSING"
	Stale   ChangeType = "STALE"
)

type Change struct {
	Type ChangeType
	Path string
}

// CompareResult describes how a local icon index differs from the remote
// listing. Missing holds remote icons the index lacks; Stale holds index
// entries that no longer exist remotely.
type CompareResult struct {
	RemoteCount  int
	IndexCount   int
	RemoteDigest string
	IndexDigest  string
	Missing      []Change
	Stale        []Change
}

func (r *CompareResult) HasChanges() bool {
	return len(r.Missing) > 0 || len(r.Stale) > 0
}

// Compare diffs two sorted, duplicate-free listings.
func Compare(index, remote []string) *CompareResult {
	result := &CompareResult{
		RemoteCount:  len(remote),
		IndexCount:   len(index),
		RemoteDigest: hash.HashListing(remote),
		IndexDigest:  hash.HashListing(index),
		Missing:      make([]Change, 0),
		Stale:        make([]Change, 0),
	}

	// Identical digests mean identical listings
	if result.RemoteDigest == result.IndexDigest {
		return result
	}

	indexed := make(map[string]struct{}, len(index))
	for _, path := range index {
		indexed[path] = struct{}{}
	}
	available := make(map[string]struct{}, len(remote))
	for _, path := range remote {
		available[path] = struct{}{}
		if _, ok := indexed[path]; !ok {
			result.Missing = append(result.Missing, Change{Type: Missing, Path: path})
		}
	}
	for _, path := range index {
		if _, ok := available[path]; !ok {
			result.Stale = append(result.Stale, Change{Type: Stale, Path: path})
		}
	}

	sort.Slice(result.Missing, func(i, j int) bool {
		return result.Missing[i].Path < result.Missing[j].Path
	})
	sort.Slice(result.Stale, func(i, j int) bool {
		return result.Stale[i].Path < result.Stale[j].Path
	})

	return result
}

func FormatReport(result *CompareResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Remote icons: %d (digest %s)\n", result.RemoteCount, result.RemoteDigest)
	fmt.Fprintf(&b, "Index icons:  %d (digest %s)\n", result.IndexCount, result.IndexDigest)

	if !result.HasChanges() {
		b.WriteString("Index is up to date.\n")
		return b.String()
	}

	b.WriteString("\n")

	if len(result.Missing) > 0 {
		fmt.Fprintf(&b, "MISSING (%d icons):\n", len(result.Missing))
		for _, change := range result.Missing {
			fmt.Fprintf(&b, "  + %s\n", change.Path)
		}
		b.WriteString("\n")
	}

	if len(result.Stale) > 0 {
		fmt.Fprintf(&b, "STALE (%d entries):\n", len(result.Stale))
		for _, change := range result.Stale {
			fmt.Fprintf(&b, "  - %s\n", change.Path)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Summary: %d missing, %d stale\n", len(result.Missing), len(result.Stale))

	return b.String()
}
