package dedupe

import (
	"reflect"
	"strings"
)

// EquivalentIgnoringDescriptions reports whether two schemas are structurally
// equal once "description" entries are stripped at every depth, including
// inside nested sequences. Two variants of the same schema that differ only
// in their documentation compare as equivalent.
func EquivalentIgnoringDescriptions(a, b any) bool {
	return reflect.DeepEqual(stripDescriptions(a), stripDescriptions(b))
}

// stripDescriptions returns a copy of the tree with every "description" key
// removed from every mapping.
func stripDescriptions(node any) any {
	switch n := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(n))
		for key, value := range n {
			if key == "description" {
				continue
			}
			out[key] = stripDescriptions(value)
		}
		return out
	case []any:
		out := make([]any, len(n))
		for i, item := range n {
			out[i] = stripDescriptions(item)
		}
		return out
	default:
		return node
	}
}

// CountDescriptions counts mappings in the tree that carry a non-empty
// "description" string. The count is used to report which variant of a
// duplicate pair is the richer-documented one.
func CountDescriptions(node any) int {
	switch n := node.(type) {
	case map[string]any:
		count := 0
		if desc, ok := n["description"].(string); ok && strings.TrimSpace(desc) != "" {
			count++
		}
		for _, value := range n {
			count += CountDescriptions(value)
		}
		return count
	case []any:
		count := 0
		for _, item := range n {
			count += CountDescriptions(item)
		}
		return count
	default:
		return 0
	}
}
