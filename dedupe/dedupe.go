package dedupe

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasdedupe/parser"
)

// PairResolution describes how one duplicate pair was resolved.
//
// The description counts and the Equivalent flag come from the completeness
// comparator and are reported so callers can see which variant was the
// richer-documented one. The current policy always keeps the plain name
// regardless of that comparison; Kept is carried explicitly so the policy can
// change without changing the report shape.
type PairResolution struct {
	// Dotted is the definition name that was removed
	Dotted string
	// Plain is the definition name that was kept
	Plain string
	// DottedRefs is the number of references to the dotted name before rewriting
	DottedRefs int
	// PlainRefs is the number of references to the plain name before rewriting
	PlainRefs int
	// DottedDescriptions counts non-empty descriptions in the dotted schema
	DottedDescriptions int
	// PlainDescriptions counts non-empty descriptions in the plain schema
	PlainDescriptions int
	// Equivalent is true when the two schemas are structurally equal
	// once descriptions are ignored
	Equivalent bool
	// RewrittenRefs is the number of references actually rewritten
	RewrittenRefs int
	// Kept is the name that remains in the document (always Plain under
	// the current policy)
	Kept string
	// Pruned is true when the dotted definition was found and removed
	Pruned bool
}

// Result contains the outcome of a dedupe operation
type Result struct {
	// Document is the transformed document tree
	Document map[string]any
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
	// SourcePath is the path to the source file
	SourcePath string
	// DefinitionCount is the number of definitions before deduplication
	DefinitionCount int
	// Pairs contains one entry per duplicate pair processed
	Pairs []PairResolution
	// TypeFixes contains one entry per type-array normalization applied
	TypeFixes []TypeFix
	// Renames contains dotted-only renames (only when RenameDotted is enabled)
	Renames []Rename
	// Warnings contains non-fatal issues encountered during processing
	Warnings []string
	// Residual contains duplicate pairs still present after fixing.
	// A non-empty slice is a warning condition, not a failure; the
	// transformed document is still usable and written.
	Residual []DuplicatePair
	// Success is true if deduplication completed without errors
	Success bool
}

// HasDuplicates returns true if any duplicate pairs were processed
func (r *Result) HasDuplicates() bool {
	return len(r.Pairs) > 0
}

// Clean returns true if no duplicate pairs remain after processing
func (r *Result) Clean() bool {
	return len(r.Residual) == 0
}

// Deduper handles duplicate schema definition cleanup
type Deduper struct {
	// RenameDotted enables renaming dotted definitions that have no plain
	// counterpart to the PascalCase concatenation of their segments
	// (e.g. "user.profile" becomes "UserProfile"), rewriting references
	// the same way duplicate resolution does.
	RenameDotted bool
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger parser.Logger
}

// New creates a new Deduper instance with default settings
func New() *Deduper {
	return &Deduper{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (d *Deduper) log() parser.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return parser.NopLogger{}
}

// Option is a function that configures a dedupe operation
type Option func(*dedupeConfig) error

// dedupeConfig holds configuration for a dedupe operation
type dedupeConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult

	// Configuration options
	renameDotted bool
	logger       parser.Logger
}

// DedupeWithOptions deduplicates an OpenAPI specification using functional
// options, combining input source selection and configuration in a single
// call.
//
// Example:
//
//	result, err := dedupe.DedupeWithOptions(
//	    dedupe.WithFilePath("swagger.json"),
//	    dedupe.WithRenameDotted(true),
//	)
func DedupeWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("dedupe: invalid options: %w", err)
	}

	d := &Deduper{
		RenameDotted: cfg.renameDotted,
		Logger:       cfg.logger,
	}

	if cfg.filePath != nil {
		return d.Dedupe(*cfg.filePath)
	}
	if cfg.parsed != nil {
		return d.DedupeParsed(*cfg.parsed)
	}

	// Should never reach here due to validation in applyOptions
	return nil, fmt.Errorf("dedupe: no input source specified")
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*dedupeConfig, error) {
	cfg := &dedupeConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate that exactly one input source is specified
	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.parsed != nil {
		sources++
	}

	if sources == 0 {
		return nil, fmt.Errorf("no input source specified: use WithFilePath or WithParsed")
	}
	if sources > 1 {
		return nil, fmt.Errorf("multiple input sources specified: use only one of WithFilePath or WithParsed")
	}

	return cfg, nil
}

// WithFilePath specifies the file path to deduplicate
func WithFilePath(path string) Option {
	return func(cfg *dedupeConfig) error {
		if path == "" {
			return fmt.Errorf("file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies an already-parsed specification to deduplicate
func WithParsed(result parser.ParseResult) Option {
	return func(cfg *dedupeConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithRenameDotted enables renaming of dotted-only definitions
func WithRenameDotted(rename bool) Option {
	return func(cfg *dedupeConfig) error {
		cfg.renameDotted = rename
		return nil
	}
}

// WithLogger sets the structured logger for debug output
func WithLogger(logger parser.Logger) Option {
	return func(cfg *dedupeConfig) error {
		cfg.logger = logger
		return nil
	}
}

// Dedupe loads an OpenAPI specification file and deduplicates it
func (d *Deduper) Dedupe(specPath string) (*Result, error) {
	p := parser.New()
	p.Logger = d.Logger

	parseResult, err := p.Parse(specPath)
	if err != nil {
		return nil, fmt.Errorf("dedupe: failed to parse specification: %w", err)
	}

	return d.DedupeParsed(*parseResult)
}

// DedupeParsed deduplicates an already-parsed OpenAPI specification.
//
// The input tree is not mutated; the transformed tree is returned in
// [Result.Document]. The pipeline runs the duplicate detector, resolves each
// pair (count references, compare schemas, rewrite references, prune the
// dotted definition), optionally renames dotted-only definitions, normalizes
// type arrays across the whole document, and finally re-runs the detector to
// verify the fix.
func (d *Deduper) DedupeParsed(parseResult parser.ParseResult) (*Result, error) {
	if parseResult.Data == nil {
		return nil, fmt.Errorf("dedupe: specification could not be parsed (nil document)")
	}

	result := &Result{
		SourceFormat:    parseResult.SourceFormat,
		SourcePath:      parseResult.SourcePath,
		DefinitionCount: len(parseResult.Definitions),
		Pairs:           make([]PairResolution, 0),
		Warnings:        append(make([]string, 0), parseResult.Warnings...),
	}

	doc := copyTree(parseResult.Data).(map[string]any)
	order := parseResult.DefinitionOrder

	// The detector runs against the parse-time view of the definitions;
	// pruning consults the live tree, so a disagreement between the two
	// surfaces as a warning instead of a panic.
	pairs := FindDuplicates(parseResult.Definitions, order)
	for _, pair := range pairs {
		res := PairResolution{
			Dotted: pair.Dotted,
			Plain:  pair.Plain,
			Kept:   pair.Plain,
		}

		res.DottedRefs = CountRefs(doc, DefinitionRef(pair.Dotted))
		res.PlainRefs = CountRefs(doc, DefinitionRef(pair.Plain))
		res.DottedDescriptions = CountDescriptions(parseResult.Definitions[pair.Dotted])
		res.PlainDescriptions = CountDescriptions(parseResult.Definitions[pair.Plain])
		res.Equivalent = EquivalentIgnoringDescriptions(
			parseResult.Definitions[pair.Dotted],
			parseResult.Definitions[pair.Plain])

		rewritten, count := RewriteRefs(doc, pair.Dotted, pair.Plain)
		doc = rewritten.(map[string]any)
		res.RewrittenRefs = count

		if pruneDefinition(definitionsOf(doc), pair.Dotted) {
			res.Pruned = true
		} else {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("definition %q not found at deletion time", pair.Dotted))
		}

		d.log().Debug("resolved duplicate pair",
			"dotted", pair.Dotted,
			"plain", pair.Plain,
			"rewrittenRefs", count,
			"equivalent", res.Equivalent)

		result.Pairs = append(result.Pairs, res)
	}

	if d.RenameDotted {
		doc = d.renameDottedOnly(doc, order, result)
	}

	normalized, fixes := NormalizeTypes(doc)
	doc = normalized.(map[string]any)
	result.TypeFixes = fixes

	// Verification pass: re-run the detector on the final definitions
	result.Residual = FindDuplicates(definitionsOf(doc), order)
	if len(result.Residual) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d duplicate pair(s) remain after fixing", len(result.Residual)))
	}

	result.Document = doc
	result.Success = true
	return result, nil
}

// renameDottedOnly renames dotted definitions that have no plain counterpart
// to the PascalCase concatenation of their segments, rewriting references to
// match. A rename is skipped with a warning when the target name is already
// taken by a structurally different schema.
func (d *Deduper) renameDottedOnly(doc map[string]any, order []string, result *Result) map[string]any {
	defs := definitionsOf(doc)
	for _, name := range orderedNames(defs, order) {
		if !strings.Contains(name, ".") {
			continue
		}

		target := pascalizeName(name)
		if target == "" || target == name {
			continue
		}

		if existing, ok := defs[target]; ok {
			if !EquivalentIgnoringDescriptions(defs[name], existing) {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("cannot rename %q: %q is already defined with a different shape", name, target))
				continue
			}
		} else {
			defs[target] = defs[name]
		}

		rewritten, count := RewriteRefs(doc, name, target)
		doc = rewritten.(map[string]any)
		defs = definitionsOf(doc)
		pruneDefinition(defs, name)

		d.log().Debug("renamed dotted definition",
			"from", name,
			"to", target,
			"rewrittenRefs", count)

		result.Renames = append(result.Renames, Rename{
			From:          name,
			To:            target,
			RewrittenRefs: count,
		})
	}
	return doc
}

// definitionsOf returns the live definitions mapping of the document tree,
// or an empty map when the document has none.
func definitionsOf(doc map[string]any) map[string]any {
	if defs, ok := doc["definitions"].(map[string]any); ok {
		return defs
	}
	return map[string]any{}
}

// copyTree returns a deep copy of a raw document tree.
func copyTree(node any) any {
	switch n := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(n))
		for key, value := range n {
			out[key] = copyTree(value)
		}
		return out
	case []any:
		out := make([]any, len(n))
		for i, item := range n {
			out[i] = copyTree(item)
		}
		return out
	default:
		return node
	}
}
