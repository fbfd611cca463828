package parser

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v4"
)

// Parser loads OpenAPI documents into a raw tree representation
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// ParseResult contains the loaded document and metadata.
//
// Data holds the raw document tree (nested map[string]any, []any, and
// scalars). Definitions is the document's "definitions" mapping; when the
// document has none, Definitions is an empty map and a warning is recorded
// rather than failing, since a document without definitions simply has
// nothing to deduplicate.
//
// Callers mutate Data freely; the parser keeps no other reference to it.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from
	SourcePath string
	// SourceFormat is the detected format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// SourceSize is the size of the source document in bytes
	SourceSize int64
	// LoadTime is the time taken to read and decode the source
	LoadTime time.Duration
	// Data is the raw document tree
	Data map[string]any
	// Definitions is the document's "definitions" mapping, or an empty
	// map when the document has none
	Definitions map[string]any
	// DefinitionOrder holds the keys of Definitions in source order.
	// Go maps do not preserve insertion order, so the order is captured
	// from the decoded yaml.Node tree.
	DefinitionOrder []string
	// Warnings contains non-fatal issues found while loading
	Warnings []string
}

// Parse loads an OpenAPI document from a file path
func (p *Parser) Parse(path string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(path) //nolint:gosec // G304 - path is user-provided input (CLI tool)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}

	result, err := p.parseBytes(data, detectFormatFromPath(path))
	if err != nil {
		return nil, err
	}
	result.SourcePath = path
	result.LoadTime = time.Since(loadStart)
	return result, nil
}

// ParseReader loads an OpenAPI document from a reader (e.g. stdin)
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}

	result, err := p.parseBytes(data, SourceFormatUnknown)
	if err != nil {
		return nil, err
	}
	result.SourcePath = "<reader>"
	result.LoadTime = time.Since(loadStart)
	return result, nil
}

// ParseBytes loads an OpenAPI document from a byte slice
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	result, err := p.parseBytes(data, SourceFormatUnknown)
	if err != nil {
		return nil, err
	}
	result.SourcePath = "<bytes>"
	return result, nil
}

// parseBytes decodes the document and extracts the definitions mapping.
// The hinted format (from a file extension) wins over content sniffing.
func (p *Parser) parseBytes(data []byte, hint SourceFormat) (*ParseResult, error) {
	result := &ParseResult{
		SourceSize: int64(len(data)),
		Warnings:   make([]string, 0),
	}

	result.SourceFormat = hint
	if result.SourceFormat == SourceFormatUnknown {
		result.SourceFormat = detectFormatFromContent(data)
	}

	// YAML is a superset of JSON, so one decode path serves both formats
	var rawData map[string]any
	if err := yaml.Unmarshal(data, &rawData); err != nil {
		return nil, fmt.Errorf("parser: failed to parse document: %w", err)
	}
	if rawData == nil {
		return nil, fmt.Errorf("parser: document is empty")
	}
	result.Data = rawData

	// Decode again into a node tree to recover source key order, which
	// the generic map decode discards
	var rootNode yaml.Node
	if err := yaml.Unmarshal(data, &rootNode); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("node parsing: failed to capture key order: %v", err))
	}

	p.extractDefinitions(result, &rootNode)

	p.log().Debug("parsed document",
		"format", result.SourceFormat,
		"size", result.SourceSize,
		"definitions", len(result.Definitions))

	return result, nil
}

// extractDefinitions locates the definitions mapping in the raw tree and
// records its source key order from the node tree.
func (p *Parser) extractDefinitions(result *ParseResult, rootNode *yaml.Node) {
	defs, ok := result.Data["definitions"].(map[string]any)
	if !ok {
		if _, present := result.Data["definitions"]; present {
			result.Warnings = append(result.Warnings, "document has a non-object 'definitions' entry; treating as empty")
		} else {
			result.Warnings = append(result.Warnings, "document has no 'definitions' object")
		}
		result.Definitions = make(map[string]any)
		return
	}
	result.Definitions = defs
	result.DefinitionOrder = definitionKeyOrder(rootNode)
}

// definitionKeyOrder returns the keys of the top-level "definitions" mapping
// in their original source order, or nil if it cannot be located.
func definitionKeyOrder(rootNode *yaml.Node) []string {
	if rootNode == nil || rootNode.Kind != yaml.DocumentNode || len(rootNode.Content) == 0 {
		return nil
	}
	defsNode := findChildNode(rootNode.Content[0], "definitions")
	if defsNode == nil {
		return nil
	}
	return extractKeyOrder(defsNode)
}

// findChildNode returns the value node for the given key in a MappingNode.
func findChildNode(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Kind == yaml.ScalarNode && node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// extractKeyOrder returns the keys from a MappingNode in their original order.
func extractKeyOrder(node *yaml.Node) []string {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Kind == yaml.ScalarNode {
			keys = append(keys, node.Content[i].Value)
		}
	}
	return keys
}
