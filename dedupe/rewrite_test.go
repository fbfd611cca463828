package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRewriteRefs tests reference rewriting across nested structures
func TestRewriteRefs(t *testing.T) {
	doc := map[string]any{
		"paths": map[string]any{
			"/pets": map[string]any{
				"get": map[string]any{
					"responses": map[string]any{
						"200": map[string]any{
							"schema": map[string]any{"$ref": "#/definitions/Pet.Tag"},
						},
					},
				},
			},
		},
		"definitions": map[string]any{
			"Pets": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": "#/definitions/Pet.Tag"},
				"allOf": []any{
					map[string]any{"$ref": "#/definitions/Pet.Tag"},
					map[string]any{"$ref": "#/definitions/Other"},
				},
			},
		},
	}

	rewritten, count := RewriteRefs(doc, "Pet.Tag", "PetTag")
	assert.Equal(t, 3, count)

	out := rewritten.(map[string]any)
	assert.Equal(t, 0, CountRefs(out, DefinitionRef("Pet.Tag")))
	assert.Equal(t, 3, CountRefs(out, DefinitionRef("PetTag")))
	assert.Equal(t, 1, CountRefs(out, DefinitionRef("Other")))
}

// TestRewriteRefs_ExactMatchOnly verifies prefix and partial matches are untouched
func TestRewriteRefs_ExactMatchOnly(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{"$ref": "#/definitions/Pet.Tags"},
		"b": map[string]any{"$ref": "#/definitions/Pet.Tag/extra"},
		"c": map[string]any{"$ref": "#/definitions/Pet.Tag"},
	}

	rewritten, count := RewriteRefs(doc, "Pet.Tag", "PetTag")
	assert.Equal(t, 1, count)

	out := rewritten.(map[string]any)
	assert.Equal(t, "#/definitions/Pet.Tags", out["a"].(map[string]any)["$ref"])
	assert.Equal(t, "#/definitions/Pet.Tag/extra", out["b"].(map[string]any)["$ref"])
	assert.Equal(t, "#/definitions/PetTag", out["c"].(map[string]any)["$ref"])
}

// TestRewriteRefs_NonRefStrings verifies matching text outside $ref keys survives
func TestRewriteRefs_NonRefStrings(t *testing.T) {
	doc := map[string]any{
		"description": "see #/definitions/Pet.Tag for details",
		"example":     "#/definitions/Pet.Tag",
		"nested": []any{
			map[string]any{"note": "#/definitions/Pet.Tag"},
		},
	}

	rewritten, count := RewriteRefs(doc, "Pet.Tag", "PetTag")
	assert.Equal(t, 0, count)

	out := rewritten.(map[string]any)
	assert.Equal(t, "see #/definitions/Pet.Tag for details", out["description"])
	assert.Equal(t, "#/definitions/Pet.Tag", out["example"])
	note := out["nested"].([]any)[0].(map[string]any)["note"]
	assert.Equal(t, "#/definitions/Pet.Tag", note)
}

// TestRewriteRefs_PreservesStructure verifies unrelated content survives the walk
func TestRewriteRefs_PreservesStructure(t *testing.T) {
	doc := map[string]any{
		"swagger": "2.0",
		"tags":    []any{"a", "b", "c"},
		"info":    map[string]any{"title": "test", "version": 1},
		"count":   3,
		"flag":    true,
		"empty":   nil,
	}

	rewritten, count := RewriteRefs(doc, "Pet.Tag", "PetTag")
	assert.Equal(t, 0, count)
	assert.Equal(t, doc, rewritten)
}

// TestRewriteRefs_Pure verifies the input tree is never mutated
func TestRewriteRefs_Pure(t *testing.T) {
	doc := map[string]any{
		"schema": map[string]any{"$ref": "#/definitions/Pet.Tag"},
	}

	_, count := RewriteRefs(doc, "Pet.Tag", "PetTag")
	assert.Equal(t, 1, count)
	assert.Equal(t, "#/definitions/Pet.Tag", doc["schema"].(map[string]any)["$ref"])
}

// TestCountRefs tests structural reference counting
func TestCountRefs(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{"$ref": "#/definitions/Pet"},
		"b": []any{
			map[string]any{"$ref": "#/definitions/Pet"},
			map[string]any{"$ref": "#/definitions/Pets"},
		},
		// reference-shaped text outside a $ref key must not count
		"description": "#/definitions/Pet",
	}

	assert.Equal(t, 2, CountRefs(doc, "#/definitions/Pet"))
	assert.Equal(t, 1, CountRefs(doc, "#/definitions/Pets"))
	assert.Equal(t, 0, CountRefs(doc, "#/definitions/Missing"))
}

// TestDefinitionRef tests the reference path helper
func TestDefinitionRef(t *testing.T) {
	assert.Equal(t, "#/definitions/Pet.Tag", DefinitionRef("Pet.Tag"))
	assert.Equal(t, "#/definitions/PetTag", DefinitionRef("PetTag"))
}
