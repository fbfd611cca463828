package dedupe

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rename records an opt-in rename of a dotted-only definition.
type Rename struct {
	// From is the original dotted definition name
	From string
	// To is the PascalCase replacement name
	To string
	// RewrittenRefs is the number of references updated to the new name
	RewrittenRefs int
}

// pascalizeName converts a dotted definition name to PascalCase by
// title-casing each dot-separated segment and concatenating them, so
// "user.profile" becomes "UserProfile" and "Pet.Tag" becomes "PetTag".
// Segments that are already capitalized keep their interior casing.
func pascalizeName(name string) string {
	// Use golang.org/x/text/cases for proper Unicode title casing
	titleCaser := cases.Title(language.English, cases.NoLower)

	var b strings.Builder
	for _, segment := range strings.Split(name, ".") {
		if segment == "" {
			continue
		}
		b.WriteString(titleCaser.String(segment))
	}
	return b.String()
}
