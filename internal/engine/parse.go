package engine

// DefaultMaxDepth bounds the recursive descent when the caller does not
// configure a limit.
const DefaultMaxDepth = 128

// Parse consumes the span, repairs the first value found in it, and ignores
// whatever trails it. Recovery is expressed as state transitions over the
// token stream; errors escape only when no repair heuristic applies.
func Parse(in []byte, maxDepth int) (any, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &parser{lex: NewLexer(in), maxDepth: maxDepth}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseValue(0)
}

type parser struct {
	lex      *Lexer
	tok      Token
	maxDepth int
}

func (p *parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// parseValue skips leading non-value tokens and builds the next value. It is
// the only place that reports no_value: every container loop recovers on its
// own instead.
func (p *parser) parseValue(depth int) (any, error) {
	if depth > p.maxDepth {
		return nil, issueErr(CodeMaxDepth, "max nesting depth exceeded", p.tok.Offset)
	}
	for {
		switch p.tok.Kind {
		case KindBeginObject:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return p.parseObject(depth)
		case KindBeginArray:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return p.parseArray(depth)
		case KindString, KindIdent:
			v := p.tok.Str
			if err := p.advance(); err != nil {
				return nil, err
			}
			return v, nil
		case KindInt:
			v := p.tok.Int
			if err := p.advance(); err != nil {
				return nil, err
			}
			return v, nil
		case KindFloat:
			v := p.tok.Float
			if err := p.advance(); err != nil {
				return nil, err
			}
			return v, nil
		case KindBool:
			v := p.tok.Bool
			if err := p.advance(); err != nil {
				return nil, err
			}
			return v, nil
		case KindNull:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return nil, nil
		case KindEOF:
			return nil, issueErr(CodeNoValue, "no JSON value found", p.tok.Offset)
		default:
			// Noise or a stray structural token where a value is mandatory;
			// keep scanning for the nearest value token.
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
}

// parseObject is entered with '{' already consumed. EOF anywhere inside acts
// as the synthesized closer.
func (p *parser) parseObject(depth int) (any, error) {
	obj := NewObject()
	for {
		switch p.tok.Kind {
		case KindEndObject:
			err := p.advance()
			return obj, err
		case KindEOF:
			return obj, nil
		case KindComma:
			// Leading, doubled, and trailing commas are all discarded here.
			if err := p.advance(); err != nil {
				return nil, err
			}
		case KindString, KindIdent:
			key := p.tok.Str
			if err := p.advance(); err != nil {
				return nil, err
			}
			ok, err := p.seekColon()
			if err != nil {
				return nil, err
			}
			if !ok {
				// Key without a colon; drop it and let the loop resynchronize.
				continue
			}
			val, found, err := p.parseMemberValue(depth + 1)
			if err != nil {
				return nil, err
			}
			if !found {
				// Colon with no value before the separator; drop the key.
				continue
			}
			obj.Set(key, val)
			if err := p.skipToSeparator(KindEndObject); err != nil {
				return nil, err
			}
		default:
			// Noise in key position.
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
}

// parseArray is entered with '[' already consumed.
func (p *parser) parseArray(depth int) (any, error) {
	arr := []any{}
	for {
		switch p.tok.Kind {
		case KindEndArray:
			err := p.advance()
			return arr, err
		case KindEOF:
			return arr, nil
		case KindComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case KindNoise, KindColon, KindEndObject:
			if err := p.advance(); err != nil {
				return nil, err
			}
		default:
			val, err := p.parseValue(depth + 1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
			if err := p.skipToSeparator(KindEndArray); err != nil {
				return nil, err
			}
		}
	}
}

// parseMemberValue parses the value side of an object member. Unlike the
// top-level parseValue it must not scan past the member's own separator: a
// comma, closing brace, or EOF in value position means the value is absent.
func (p *parser) parseMemberValue(depth int) (any, bool, error) {
	for {
		switch p.tok.Kind {
		case KindComma, KindEndObject, KindEOF:
			return nil, false, nil
		case KindNoise, KindColon, KindEndArray:
			if err := p.advance(); err != nil {
				return nil, false, err
			}
		default:
			v, err := p.parseValue(depth)
			if err != nil {
				return nil, false, err
			}
			return v, true, nil
		}
	}
}

// seekColon discards tokens until the key/value colon. It reports false when a
// separator, closer, or EOF arrives first, leaving that token current.
func (p *parser) seekColon() (bool, error) {
	for {
		switch p.tok.Kind {
		case KindColon:
			return true, p.advance()
		case KindComma, KindEndObject, KindEOF:
			return false, nil
		default:
			if err := p.advance(); err != nil {
				return false, err
			}
		}
	}
}

// skipToSeparator implements noise-skip recovery after a value: tokens are
// discarded one at a time until a comma, the matching closer, or end-of-input,
// which stays current for the container loop to act on.
func (p *parser) skipToSeparator(closer Kind) error {
	for {
		switch p.tok.Kind {
		case KindComma, KindEOF, closer:
			return nil
		default:
			if err := p.advance(); err != nil {
				return err
			}
		}
	}
}
