package jsonmend

import (
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// SchemaKind enumerates the value shapes a schema node can demand.
type SchemaKind int

const (
	SchemaAny SchemaKind = iota // No constraint; validation skips the subtree.
	SchemaObject
	SchemaArray
	SchemaString
	SchemaNumber // Satisfied by both integral and floating-point numbers.
	SchemaBoolean
	SchemaNull
)

func (k SchemaKind) String() string {
	switch k {
	case SchemaObject:
		return "object"
	case SchemaArray:
		return "array"
	case SchemaString:
		return "string"
	case SchemaNumber:
		return "number"
	case SchemaBoolean:
		return "boolean"
	case SchemaNull:
		return "null"
	default:
		return "any"
	}
}

// Schema is a compiled, immutable shape description interpreting the
// type/properties/required subset of JSON Schema (plus items for arrays).
// Build one with CompileSchema, SchemaFromJSON, or SchemaFromYAML and share it
// freely; validation never mutates it.
type Schema struct {
	kind     SchemaKind
	props    []schemaProp // sorted by name for deterministic reporting
	index    map[string]int
	required []string // declared order; drives which missing field is named first
	items    *Schema
}

type schemaProp struct {
	name   string
	schema *Schema
}

// Kind returns the node's kind.
func (s *Schema) Kind() SchemaKind { return s.kind }

// Property returns the declared sub-schema for name.
func (s *Schema) Property(name string) (*Schema, bool) {
	idx, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.props[idx].schema, true
}

// Required returns the declared required property names in order.
func (s *Schema) Required() []string {
	out := make([]string, len(s.required))
	copy(out, s.required)
	return out
}

// Items returns the element sub-schema of an array node, nil when unconstrained.
func (s *Schema) Items() *Schema { return s.items }

// CompileSchema compiles a plain nested description (map with "type",
// "properties", "required", "items") into an immutable Schema. The description
// is validated against the schema grammar; violations fail with
// CodeInvalidSchema. A missing "type" or an unrecognized type name compiles to
// an unconstrained node.
func CompileSchema(desc any) (*Schema, error) {
	s, iss := compileNode(desc, "/")
	if iss != nil {
		return nil, iss
	}
	return s, nil
}

// SchemaFromJSON decodes a JSON schema description and compiles it.
func SchemaFromJSON(data []byte) (*Schema, error) {
	var desc any
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, singleIssue(CodeInvalidSchema, "invalid schema JSON: "+err.Error())
	}
	return CompileSchema(desc)
}

// SchemaFromYAML decodes a YAML schema description and compiles it. Non-string
// mapping keys are rejected rather than coerced.
func SchemaFromYAML(data []byte) (*Schema, error) {
	var desc any
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, singleIssue(CodeInvalidSchema, "invalid schema YAML: "+err.Error())
	}
	norm, ok := normalizeYAML(desc)
	if !ok {
		return nil, singleIssue(CodeInvalidSchema, "schema YAML has non-string mapping keys")
	}
	return CompileSchema(norm)
}

func compileNode(desc any, path string) (*Schema, Issues) {
	m, ok := desc.(map[string]any)
	if !ok {
		return nil, Issues{Issue{Path: path, Code: CodeInvalidSchema, Message: fmt.Sprintf("schema node must be a mapping, got %T", desc), Offset: -1}}
	}
	s := &Schema{index: map[string]int{}}
	if tv, present := m["type"]; present {
		ts, ok := tv.(string)
		if !ok {
			return nil, Issues{Issue{Path: joinPointer(path, "type"), Code: CodeInvalidSchema, Message: "type must be a string", Offset: -1}}
		}
		s.kind = kindFromName(ts)
	}

	switch s.kind {
	case SchemaObject:
		if pv, present := m["properties"]; present {
			pm, ok := pv.(map[string]any)
			if !ok {
				return nil, Issues{Issue{Path: joinPointer(path, "properties"), Code: CodeInvalidSchema, Message: "properties must be a mapping", Offset: -1}}
			}
			names := make([]string, 0, len(pm))
			for name := range pm {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				sub, iss := compileNode(pm[name], joinPointer(joinPointer(path, "properties"), name))
				if iss != nil {
					return nil, iss
				}
				s.index[name] = len(s.props)
				s.props = append(s.props, schemaProp{name: name, schema: sub})
			}
		}
		if rv, present := m["required"]; present {
			names, ok := stringList(rv)
			if !ok {
				return nil, Issues{Issue{Path: joinPointer(path, "required"), Code: CodeInvalidSchema, Message: "required must be a list of strings", Offset: -1}}
			}
			s.required = names
		}
	case SchemaArray:
		if iv, present := m["items"]; present {
			sub, iss := compileNode(iv, joinPointer(path, "items"))
			if iss != nil {
				return nil, iss
			}
			s.items = sub
		}
	}
	return s, nil
}

func kindFromName(name string) SchemaKind {
	switch name {
	case "object":
		return SchemaObject
	case "array":
		return SchemaArray
	case "string":
		return SchemaString
	case "number", "integer":
		return SchemaNumber
	case "boolean":
		return SchemaBoolean
	case "null":
		return SchemaNull
	default:
		return SchemaAny
	}
}

func stringList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// normalizeYAML rewrites yaml's any-keyed maps into string-keyed ones.
func normalizeYAML(v any) (any, bool) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			nv, ok := normalizeYAML(val)
			if !ok {
				return nil, false
			}
			out[k] = nv
		}
		return out, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			nv, ok := normalizeYAML(val)
			if !ok {
				return nil, false
			}
			out[ks] = nv
		}
		return out, true
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			nv, ok := normalizeYAML(item)
			if !ok {
				return nil, false
			}
			out[i] = nv
		}
		return out, true
	default:
		return v, true
	}
}

// joinPointer appends a token to a JSON Pointer, escaping per RFC 6901.
func joinPointer(base, token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	token = strings.ReplaceAll(token, "/", "~1")
	if base == "/" {
		return "/" + token
	}
	return base + "/" + token
}
