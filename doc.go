// Package oasdedupe provides tooling to clean up duplicate schema definitions
// in OpenAPI 2.0 (Swagger) documents.
//
// Code generators and API gateways frequently emit the same schema twice under
// a dotted name (e.g. "Pet.Tag") and a plain name (e.g. "PetTag"). This module
// detects those pairs, rewrites every "#/definitions/<name>" reference onto the
// plain name, removes the dotted definition, and normalizes array-valued "type"
// fields to a single scalar.
//
// # Overview
//
// The module consists of the following packages:
//
//   - dedupe: The deduplication pipeline (detect, rewrite, prune, normalize, verify)
//   - parser: Document loading and serialization (JSON and YAML)
//   - cmd/oasdedupe: Command-line interface
//
// # Quick Start
//
// Deduplicate a specification file:
//
//	import "github.com/erraggy/oasdedupe/dedupe"
//
//	result, err := dedupe.DedupeWithOptions(
//		dedupe.WithFilePath("swagger.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Removed %d duplicate pair(s)\n", len(result.Pairs))
//
// # Command-Line Interface
//
// The CLI reads one document and writes the transformed copy:
//
//	oasdedupe swagger.json fixed.json
//
// Install the CLI:
//
//	go install github.com/erraggy/oasdedupe/cmd/oasdedupe@latest
//
// # Additional Resources
//
//   - OpenAPI 2.0 Specification: https://spec.openapis.org/oas/v2.0.html
//   - JSON Schema Specification: https://json-schema.org
package oasdedupe
