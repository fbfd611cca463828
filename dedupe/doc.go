// Package dedupe merges duplicate schema definitions in OpenAPI 2.0 documents.
//
// A definition name is considered a duplicate when it contains dots and the
// same name with all dots removed also exists under "definitions" (e.g.
// "Pet.Tag" alongside "PetTag"). For every such pair the deduper rewrites all
// "#/definitions/<dotted>" references onto the plain name and removes the
// dotted definition. The plain name is always the one kept.
//
// While walking the document the deduper also normalizes array-valued "type"
// fields to a single scalar, preferring "string", then "number", then
// "integer", then the first element of the array. This normalization applies
// to the whole document, not just the definitions section, so inline
// parameter and response schemas are covered too.
//
// After all fixes are applied the detector runs again; any remaining pairs
// are reported in [Result.Residual] as a warning condition, never an error.
// Rerunning the pipeline on its own output finds nothing to do.
//
// # Quick Start
//
// Deduplicate a file using functional options:
//
//	result, err := dedupe.DedupeWithOptions(
//		dedupe.WithFilePath("swagger.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, pair := range result.Pairs {
//		fmt.Printf("removed %s, kept %s (%d refs rewritten)\n",
//			pair.Dotted, pair.Plain, pair.RewrittenRefs)
//	}
//
// Or use a reusable Deduper instance:
//
//	d := dedupe.New()
//	d.RenameDotted = true // also rename dotted-only definitions to PascalCase
//	result1, _ := d.Dedupe("api1.json")
//	result2, _ := d.Dedupe("api2.json")
//
// # Related Packages
//
//   - [github.com/erraggy/oasdedupe/parser] - Load specifications before deduplicating
package dedupe
