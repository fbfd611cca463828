package dedupe

import "fmt"

// TypeFix records a single type-array normalization.
type TypeFix struct {
	// Path is the JSON path to the fixed location (e.g. "definitions.Pet.properties.id")
	Path string
	// From is the original array value
	From []any
	// To is the scalar value chosen to replace it
	To any
}

// String returns a human-readable description of the fix.
func (f TypeFix) String() string {
	return fmt.Sprintf("%s: %v -> %v", f.Path, f.From, f.To)
}

// NormalizeTypes collapses array-valued "type" fields to a single scalar.
//
// For every mapping containing a "type" key whose value is a sequence, the
// value is replaced by one element chosen by fixed priority: "string" if
// present, else "number", else "integer", else the first element. The
// priority order is a policy choice carried over from how this cleanup has
// always been applied, not a semantic ranking. Scalar "type" values are never
// modified, and empty sequences are left alone.
//
// The walk is pure: it returns a new tree plus the list of fixes applied,
// and covers the entire document so inline parameter and response schemas
// are normalized along with the definitions section.
func NormalizeTypes(node any) (any, []TypeFix) {
	return normalizeTypes(node, "")
}

func normalizeTypes(node any, path string) (any, []TypeFix) {
	switch n := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(n))
		var fixes []TypeFix
		for key, value := range n {
			childPath := joinPath(path, key)
			if key == "type" {
				if arr, ok := value.([]any); ok && len(arr) > 0 {
					chosen := chooseScalarType(arr)
					out[key] = chosen
					fixes = append(fixes, TypeFix{Path: childPath, From: arr, To: chosen})
					continue
				}
			}
			child, childFixes := normalizeTypes(value, childPath)
			out[key] = child
			fixes = append(fixes, childFixes...)
		}
		return out, fixes
	case []any:
		out := make([]any, len(n))
		var fixes []TypeFix
		for i, item := range n {
			child, childFixes := normalizeTypes(item, fmt.Sprintf("%s[%d]", path, i))
			out[i] = child
			fixes = append(fixes, childFixes...)
		}
		return out, fixes
	default:
		return node, nil
	}
}

// chooseScalarType picks the replacement for a type array by fixed priority.
func chooseScalarType(arr []any) any {
	for _, want := range []string{"string", "number", "integer"} {
		for _, item := range arr {
			if s, ok := item.(string); ok && s == want {
				return s
			}
		}
	}
	return arr[0]
}

// joinPath appends a key to a dotted JSON path.
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
