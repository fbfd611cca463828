package dedupe

import (
	"sort"
	"strings"
)

// DuplicatePair identifies a dotted definition name and its plain counterpart.
// Both names exist as keys under "definitions"; after deduplication only the
// plain name remains.
type DuplicatePair struct {
	// Dotted is the definition name containing at least one '.' character
	Dotted string
	// Plain is Dotted with all '.' characters removed
	Plain string
}

// FindDuplicates scans definition names for dotted/plain pairs.
//
// A pair is emitted for every name containing '.' whose dot-stripped form is
// also a definition. Pairs are returned in the source key order given by
// order; names absent from order (or all names, when order is nil) follow in
// sorted order so results stay deterministic. The scan has no side effects
// and is run both before and after fixing - a clean document yields an empty
// slice.
func FindDuplicates(definitions map[string]any, order []string) []DuplicatePair {
	pairs := make([]DuplicatePair, 0)
	for _, name := range orderedNames(definitions, order) {
		if !strings.Contains(name, ".") {
			continue
		}
		plain := strings.ReplaceAll(name, ".", "")
		if _, ok := definitions[plain]; ok {
			pairs = append(pairs, DuplicatePair{Dotted: name, Plain: plain})
		}
	}
	return pairs
}

// orderedNames returns the definition names, honoring the given source order
// where known. Names missing from order are appended in sorted order; order
// entries that no longer exist (e.g. already pruned) are skipped.
func orderedNames(definitions map[string]any, order []string) []string {
	names := make([]string, 0, len(definitions))
	seen := make(map[string]bool, len(definitions))

	for _, name := range order {
		if _, ok := definitions[name]; ok && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}

	rest := make([]string, 0, len(definitions)-len(names))
	for name := range definitions {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(names, rest...)
}
