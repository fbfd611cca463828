package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDetectFormatFromPath tests extension-based format detection
func TestDetectFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected SourceFormat
	}{
		{"spec.json", SourceFormatJSON},
		{"spec.yaml", SourceFormatYAML},
		{"spec.yml", SourceFormatYAML},
		{"dir/nested/spec.json", SourceFormatJSON},
		{"spec.txt", SourceFormatUnknown},
		{"spec", SourceFormatUnknown},
		{"", SourceFormatUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.expected, detectFormatFromPath(tc.path))
		})
	}
}

// TestDetectFormatFromContent tests content-based format detection
func TestDetectFormatFromContent(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected SourceFormat
	}{
		{"json object", `{"swagger": "2.0"}`, SourceFormatJSON},
		{"json array", `[1, 2]`, SourceFormatJSON},
		{"json with leading whitespace", "\n\t {\"a\": 1}", SourceFormatJSON},
		{"yaml mapping", "swagger: \"2.0\"\n", SourceFormatYAML},
		{"yaml document marker", "---\nswagger: \"2.0\"\n", SourceFormatYAML},
		{"empty", "", SourceFormatUnknown},
		{"whitespace only", "  \n\t", SourceFormatUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, detectFormatFromContent([]byte(tc.data)))
		})
	}
}

// TestFormatBytes tests human-readable byte formatting
func TestFormatBytes(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
		{1073741824, "1.0 GiB"},
		{-1, "-1 B"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatBytes(tc.size))
		})
	}
}
