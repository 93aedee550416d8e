package hash

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// HashListing computes the xxHash of a listing of icon paths. Each path is
// terminated by a newline so ["ab"] and ["a", "b"] hash differently. The
// caller is responsible for ordering; equal sorted listings hash equal.
func HashListing(paths []string) string {
	h := xxhash.New()
	for _, p := range paths {
		h.WriteString(p)
		h.WriteString("\n")
	}
	return hex.EncodeToString(h.Sum(nil))
}
