package tree

import "github.com/spf13/cast"

// IconSuffix is the file extension every icon path ends with.
const IconSuffix = ".svg"

// Payload is a decoded git-trees API response. It is read as an opaque
// mapping: missing or mistyped fields degrade to empty values.
type Payload map[string]any

// Paths returns the "path" field of every entry in the "tree" list, in
// payload order. Entries without a path yield "".
func (p Payload) Paths() []string {
	items := cast.ToSlice(p["tree"])
	paths := make([]string, 0, len(items))
	for _, item := range items {
		entry := cast.ToStringMap(item)
		paths = append(paths, cast.ToString(entry["path"]))
	}
	return paths
}
