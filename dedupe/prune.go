package dedupe

// pruneDefinition removes the named entry from definitions, reporting whether
// it was present. Absence means the detector and pruner disagree about the
// document; callers surface that as a warning rather than an error.
func pruneDefinition(definitions map[string]any, name string) bool {
	if _, ok := definitions[name]; !ok {
		return false
	}
	delete(definitions, name)
	return true
}
