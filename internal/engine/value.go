package engine

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Object is an insertion-ordered JSON object. Repair semantics require key
// order to survive a round trip, which map[string]any cannot guarantee.
// Duplicate keys are last-write-wins: the value is replaced in place and the
// original position is kept.
type Object struct {
	entries []entry
	index   map[string]int
}

type entry struct {
	key   string
	value any
}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{index: map[string]int{}}
}

// Set inserts or replaces the value for key.
func (o *Object) Set(key string, value any) {
	if idx, ok := o.index[key]; ok {
		o.entries[idx].value = value
		return
	}
	o.index[key] = len(o.entries)
	o.entries = append(o.entries, entry{key: key, value: value})
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (any, bool) {
	idx, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.entries[idx].value, true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.index[key]
	return ok
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.entries) }

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	ks := make([]string, len(o.entries))
	for i, e := range o.entries {
		ks[i] = e.key
	}
	return ks
}

// MarshalJSON emits members in insertion order. Nested objects marshal through
// the same path, so an entire repaired tree serializes deterministically.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(e.value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
