// Package jsonmend provides:
//
// - Lenient repair of malformed, LLM-emitted JSON-like text (Repair/RepairString)
// - Boundary extraction of a JSON value embedded in surrounding prose or noise
// - Schema-guided extraction with type/properties/required validation (Extractor)
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put the tokenizer, repair
//   parser, and boundary scanner under internal/engine.
// - The engine is pure and stateless: no I/O, no shared mutable state, safe to
//   call concurrently. Recovery is modeled as token-skip state transitions;
//   errors surface only at the Repair/Extract boundary.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := jsonmend.RepairString(`Here is the json: {"key": "value",}`)
//
//	s, err := jsonmend.CompileSchema(map[string]any{
//	    "type":     "object",
//	    "required": []string{"summary"},
//	})
//	out, err := jsonmend.NewExtractor(s).Extract(raw)
package jsonmend
