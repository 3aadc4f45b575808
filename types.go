package jsonmend

import eng "github.com/reoring/jsonmend/internal/engine"

// DefaultMaxDepth is the nesting cap applied when ParseOpt leaves MaxDepth
// unset. Deeper input fails with CodeMaxDepth instead of exhausting the stack.
const DefaultMaxDepth = eng.DefaultMaxDepth

// ParseOpt bundles repair options. The zero value is ready to use.
type ParseOpt struct {
	// MaxDepth caps container nesting; <= 0 selects DefaultMaxDepth.
	MaxDepth int
}

func normalizeOpt(opts []ParseOpt) ParseOpt {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxDepth <= 0 {
		opt.MaxDepth = DefaultMaxDepth
	}
	return opt
}
