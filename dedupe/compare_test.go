package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEquivalentIgnoringDescriptions tests description-insensitive equality
func TestEquivalentIgnoringDescriptions(t *testing.T) {
	tests := []struct {
		name     string
		a        any
		b        any
		expected bool
	}{
		{
			name:     "identical schemas",
			a:        map[string]any{"type": "object"},
			b:        map[string]any{"type": "object"},
			expected: true,
		},
		{
			name:     "top-level description difference ignored",
			a:        map[string]any{"type": "object", "description": "a pet"},
			b:        map[string]any{"type": "object"},
			expected: true,
		},
		{
			name: "nested description difference ignored",
			a: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{"type": "integer", "description": "the id"},
				},
			},
			b: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{"type": "integer", "description": "identifier"},
				},
			},
			expected: true,
		},
		{
			name: "description inside sequences ignored",
			a: map[string]any{
				"allOf": []any{
					map[string]any{"type": "string", "description": "x"},
				},
			},
			b: map[string]any{
				"allOf": []any{
					map[string]any{"type": "string"},
				},
			},
			expected: true,
		},
		{
			name:     "structural difference detected",
			a:        map[string]any{"type": "object"},
			b:        map[string]any{"type": "string"},
			expected: false,
		},
		{
			name: "extra property detected",
			a: map[string]any{
				"type":       "object",
				"properties": map[string]any{"id": map[string]any{"type": "integer"}},
			},
			b: map[string]any{
				"type": "object",
			},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EquivalentIgnoringDescriptions(tc.a, tc.b))
		})
	}
}

// TestCountDescriptions tests the richness counter
func TestCountDescriptions(t *testing.T) {
	tests := []struct {
		name     string
		node     any
		expected int
	}{
		{
			name:     "no descriptions",
			node:     map[string]any{"type": "object"},
			expected: 0,
		},
		{
			name:     "single description",
			node:     map[string]any{"type": "object", "description": "a pet"},
			expected: 1,
		},
		{
			name:     "blank description not counted",
			node:     map[string]any{"description": "   "},
			expected: 0,
		},
		{
			name:     "non-string description not counted",
			node:     map[string]any{"description": 42},
			expected: 0,
		},
		{
			name: "nested descriptions counted",
			node: map[string]any{
				"description": "outer",
				"properties": map[string]any{
					"id":   map[string]any{"description": "inner"},
					"name": map[string]any{"type": "string"},
				},
			},
			expected: 2,
		},
		{
			name: "descriptions inside sequences counted",
			node: map[string]any{
				"allOf": []any{
					map[string]any{"description": "one"},
					map[string]any{"description": "two"},
				},
			},
			expected: 2,
		},
		{
			name:     "scalar node",
			node:     "just a string",
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CountDescriptions(tc.node))
		})
	}
}

// TestStripDescriptions_Pure verifies stripping never mutates the input
func TestStripDescriptions_Pure(t *testing.T) {
	node := map[string]any{
		"description": "keep me",
		"items":       []any{map[string]any{"description": "me too"}},
	}

	stripped := stripDescriptions(node).(map[string]any)
	assert.NotContains(t, stripped, "description")
	assert.Equal(t, "keep me", node["description"])
	assert.Equal(t, "me too", node["items"].([]any)[0].(map[string]any)["description"])
}
