package dedupe

// DefinitionRef returns the reference path for a definition name.
func DefinitionRef(name string) string {
	return "#/definitions/" + name
}

// RewriteRefs rewrites every "$ref" whose value exactly equals
// "#/definitions/<retired>" to point at replacement instead.
//
// The walk is pure: it returns a new tree along with the number of references
// rewritten, leaving the input untouched. Mappings keep all other keys,
// sequences keep element order and count, and scalars pass through unchanged.
// Only exact full-string matches on the "$ref" key are rewritten; other
// string values containing the same text are never altered.
func RewriteRefs(node any, retired, replacement string) (any, int) {
	return rewriteRefs(node, DefinitionRef(retired), DefinitionRef(replacement))
}

func rewriteRefs(node any, oldRef, newRef string) (any, int) {
	switch n := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(n))
		count := 0
		for key, value := range n {
			if key == "$ref" {
				if ref, ok := value.(string); ok && ref == oldRef {
					out[key] = newRef
					count++
					continue
				}
			}
			child, c := rewriteRefs(value, oldRef, newRef)
			out[key] = child
			count += c
		}
		return out, count
	case []any:
		out := make([]any, len(n))
		count := 0
		for i, item := range n {
			child, c := rewriteRefs(item, oldRef, newRef)
			out[i] = child
			count += c
		}
		return out, count
	default:
		return node, 0
	}
}

// CountRefs counts "$ref" values in the tree that exactly equal ref.
//
// This is a structural walk, not a serialize-and-substring count, so a
// reference to "Pet.Tag" is never mistaken for one to "Pet.Tags" and
// reference-shaped text inside descriptions or examples is not counted.
func CountRefs(node any, ref string) int {
	switch n := node.(type) {
	case map[string]any:
		count := 0
		for key, value := range n {
			if key == "$ref" {
				if s, ok := value.(string); ok && s == ref {
					count++
					continue
				}
			}
			count += CountRefs(value, ref)
		}
		return count
	case []any:
		count := 0
		for _, item := range n {
			count += CountRefs(item, ref)
		}
		return count
	default:
		return 0
	}
}
