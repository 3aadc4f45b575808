package jsonmend

import (
	"fmt"

	eng "github.com/reoring/jsonmend/internal/engine"
)

// validate checks a repaired value against the schema, failing fast on the
// first offending field. Missing required properties are reported before type
// mismatches, in declared required order; declared properties are then checked
// recursively. Undeclared properties pass through untouched.
func (s *Schema) validate(v any, path string) Issues {
	switch s.kind {
	case SchemaAny:
		return nil
	case SchemaObject:
		obj, ok := v.(*eng.Object)
		if !ok {
			return mismatch(path, s.kind, v)
		}
		for _, name := range s.required {
			if !obj.Has(name) {
				return Issues{Issue{
					Path:    joinPointer(path, name),
					Code:    CodeRequired,
					Message: fmt.Sprintf("missing required property %q", name),
					Offset:  -1,
				}}
			}
		}
		for _, p := range s.props {
			pv, present := obj.Get(p.name)
			if !present {
				continue
			}
			if iss := p.schema.validate(pv, joinPointer(path, p.name)); iss != nil {
				return iss
			}
		}
		return nil
	case SchemaArray:
		arr, ok := v.([]any)
		if !ok {
			return mismatch(path, s.kind, v)
		}
		if s.items == nil {
			return nil
		}
		for i, item := range arr {
			if iss := s.items.validate(item, joinPointer(path, fmt.Sprintf("%d", i))); iss != nil {
				return iss
			}
		}
		return nil
	case SchemaString:
		if _, ok := v.(string); !ok {
			return mismatch(path, s.kind, v)
		}
		return nil
	case SchemaNumber:
		switch v.(type) {
		case int64, float64:
			return nil
		}
		return mismatch(path, s.kind, v)
	case SchemaBoolean:
		if _, ok := v.(bool); !ok {
			return mismatch(path, s.kind, v)
		}
		return nil
	case SchemaNull:
		if v != nil {
			return mismatch(path, s.kind, v)
		}
		return nil
	}
	return nil
}

func mismatch(path string, want SchemaKind, got any) Issues {
	return Issues{Issue{
		Path:    path,
		Code:    CodeInvalidType,
		Message: fmt.Sprintf("expected %s, got %s", want, valueKind(got)),
		Offset:  -1,
	}}
}

// valueKind names a repaired value's kind for error messages.
func valueKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int64, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case *eng.Object:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
