// Package parser loads OpenAPI documents into a raw tree for transformation.
//
// Unlike a full specification parser, this package does not decode documents
// into typed structures. The deduplication pipeline rewrites arbitrary nested
// content, so the document is kept as the raw map[string]any / []any / scalar
// tree produced by unmarshaling, and serialized back from the same tree.
//
// Both JSON and YAML input are supported; YAML is a superset of JSON so a
// single decode path serves both. The source format is detected from the file
// extension, falling back to content sniffing, and is recorded in
// [ParseResult.SourceFormat] so callers can write output in the same format.
//
// # Quick Start
//
//	p := parser.New()
//	result, err := p.Parse("swagger.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Definitions: %d\n", len(result.Definitions))
package parser
