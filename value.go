package jsonmend

import (
	json "github.com/goccy/go-json"

	eng "github.com/reoring/jsonmend/internal/engine"
)

// Object is an insertion-ordered JSON object with last-write-wins semantics
// for duplicate keys. Repaired objects are returned as *Object so key order
// survives an encode round trip.
type Object = eng.Object

// NewObject returns an empty ordered object.
func NewObject() *Object { return eng.NewObject() }

// Encode serializes a repaired value back to canonical JSON. Object members
// keep their insertion order. Encoding NaN or an infinity fails, matching
// encoding/json semantics; such values can only be carried in-memory.
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}
