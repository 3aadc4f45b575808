package jsonmend

import (
	"bytes"

	json "github.com/goccy/go-json"

	eng "github.com/reoring/jsonmend/internal/engine"
)

// Repair locates the first JSON-like span in data, repairs it, and returns the
// parsed value: nil, bool, int64, float64, string, []any, or *Object. Prefix
// and suffix prose, comments, trailing commas, Python-style literals, stray
// noise tokens, and unterminated containers are all tolerated. It fails when
// no recoverable JSON value exists; classify the error with IsLexError and
// IsStructuralError.
func Repair(data []byte, opts ...ParseOpt) (any, error) {
	opt := normalizeOpt(opts)
	// Already-valid JSON bypasses boundary extraction entirely, so a scalar
	// containing bracket characters cannot be mistaken for noise around a span.
	span := bytes.TrimSpace(data)
	if !json.Valid(span) {
		span = eng.ExtractSpan(data)
	}
	if len(span) == 0 {
		return nil, singleIssue(CodeNoValue, "no JSON value found")
	}
	v, err := eng.Parse(span, opt.MaxDepth)
	if err != nil {
		return nil, toIssues(err)
	}
	return v, nil
}

// RepairString is Repair over a string input.
func RepairString(s string, opts ...ParseOpt) (any, error) {
	return Repair([]byte(s), opts...)
}

// Extractor composes boundary extraction, repair, and schema validation. It
// captures an immutable Schema at construction and is safe for concurrent use.
type Extractor struct {
	schema *Schema
}

// NewExtractor returns an extractor validating against s. A nil schema
// behaves like an unconstrained one.
func NewExtractor(s *Schema) *Extractor {
	if s == nil {
		s = &Schema{}
	}
	return &Extractor{schema: s}
}

// NewExtractorFor compiles a plain nested schema description and wraps it in
// an Extractor, mirroring construction from a configuration document.
func NewExtractorFor(desc any) (*Extractor, error) {
	s, err := CompileSchema(desc)
	if err != nil {
		return nil, err
	}
	return NewExtractor(s), nil
}

// Schema returns the compiled schema the extractor validates against.
func (e *Extractor) Schema() *Schema { return e.schema }

// Extract repairs the first JSON-like span in data and validates the result's
// shape. Validation never recovers: the first missing required property or
// kind mismatch fails the call, naming the offending field. On success the
// full parsed value is returned, undeclared properties included.
func (e *Extractor) Extract(data []byte, opts ...ParseOpt) (any, error) {
	v, err := Repair(data, opts...)
	if err != nil {
		return nil, err
	}
	if iss := e.schema.validate(v, "/"); iss != nil {
		return nil, iss
	}
	return v, nil
}

// ExtractString is Extract over a string input.
func (e *Extractor) ExtractString(s string, opts ...ParseOpt) (any, error) {
	return e.Extract([]byte(s), opts...)
}
