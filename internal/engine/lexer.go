package engine

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Lexer produces repair-tolerant tokens from a byte span. It accepts single
// and double quoted strings, line and block comments, Python-style literals,
// and classifies everything it cannot recognize as noise instead of failing.
// The only unrecoverable lex states are an unterminated string and an
// unterminated block comment.
type Lexer struct {
	in  []byte
	pos int
}

// NewLexer returns a lexer over the given span.
func NewLexer(in []byte) *Lexer { return &Lexer{in: in} }

// Next returns the next token or a lex error when no recoverable token
// boundary exists.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		return Token{}, err
	}
	start := int64(l.pos)
	if l.pos >= len(l.in) {
		return Token{Kind: KindEOF, Offset: start}, nil
	}
	b := l.in[l.pos]
	switch b {
	case '{':
		l.pos++
		return Token{Kind: KindBeginObject, Offset: start}, nil
	case '}':
		l.pos++
		return Token{Kind: KindEndObject, Offset: start}, nil
	case '[':
		l.pos++
		return Token{Kind: KindBeginArray, Offset: start}, nil
	case ']':
		l.pos++
		return Token{Kind: KindEndArray, Offset: start}, nil
	case ':':
		l.pos++
		return Token{Kind: KindColon, Offset: start}, nil
	case ',':
		l.pos++
		return Token{Kind: KindComma, Offset: start}, nil
	case '"', '\'':
		return l.lexString(b)
	}
	if b == '-' && bytes.HasPrefix(l.in[l.pos+1:], []byte("Infinity")) {
		l.pos += len("-Infinity")
		return Token{Kind: KindFloat, Num: "-Infinity", Float: math.Inf(-1), Offset: start}, nil
	}
	if b >= '0' && b <= '9' || (b == '-' || b == '+' || b == '.') && l.nextIsDigit() {
		return l.lexNumber()
	}
	if isIdentStart(b) {
		return l.lexIdent()
	}
	// Anything else is a single noise byte the parser may skip over.
	l.pos++
	return Token{Kind: KindNoise, Str: string(b), Offset: start}, nil
}

func (l *Lexer) nextIsDigit() bool {
	i := l.pos + 1
	if i < len(l.in) && l.in[i] == '.' {
		i++
	}
	return i < len(l.in) && l.in[i] >= '0' && l.in[i] <= '9'
}

func (l *Lexer) skipSpaceAndComments() error {
	for l.pos < len(l.in) {
		switch b := l.in[l.pos]; {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			l.pos++
		case b == '/' && l.pos+1 < len(l.in) && l.in[l.pos+1] == '/':
			for l.pos < len(l.in) && l.in[l.pos] != '\n' {
				l.pos++
			}
		case b == '/' && l.pos+1 < len(l.in) && l.in[l.pos+1] == '*':
			end := bytes.Index(l.in[l.pos+2:], []byte("*/"))
			if end < 0 {
				return issueErr(CodeUnterminatedComment, "unterminated block comment", int64(l.pos))
			}
			l.pos += 2 + end + 2
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) lexString(quote byte) (Token, error) {
	start := int64(l.pos)
	l.pos++
	var sb strings.Builder
	unknown := false
	for l.pos < len(l.in) {
		b := l.in[l.pos]
		if b == quote {
			l.pos++
			return Token{Kind: KindString, Str: toValidUTF8(sb.String()), Offset: start, UnknownEscape: unknown}, nil
		}
		if b != '\\' {
			sb.WriteByte(b)
			l.pos++
			continue
		}
		if l.pos+1 >= len(l.in) {
			break
		}
		esc := l.in[l.pos+1]
		switch esc {
		case '"', '\\', '/':
			sb.WriteByte(esc)
			l.pos += 2
		case '\'':
			// Standard only inside single-quoted strings; preserved otherwise.
			if quote == '\'' {
				sb.WriteByte('\'')
			} else {
				sb.WriteString(`\'`)
				unknown = true
			}
			l.pos += 2
		case 'b':
			sb.WriteByte('\b')
			l.pos += 2
		case 'f':
			sb.WriteByte('\f')
			l.pos += 2
		case 'n':
			sb.WriteByte('\n')
			l.pos += 2
		case 'r':
			sb.WriteByte('\r')
			l.pos += 2
		case 't':
			sb.WriteByte('\t')
			l.pos += 2
		case 'u':
			if !l.lexUnicodeEscape(&sb) {
				// Malformed \uXXXZ: keep the backslash and let the scan copy
				// the rest of the sequence as plain content.
				sb.WriteString(`\u`)
				unknown = true
				l.pos += 2
			}
		default:
			sb.WriteByte('\\')
			sb.WriteByte(esc)
			unknown = true
			l.pos += 2
		}
	}
	return Token{}, issueErr(CodeUnterminatedString, "unterminated string", start)
}

// lexUnicodeEscape decodes \uXXXX at l.pos (pointing at the backslash),
// including UTF-16 surrogate pairs. It reports false without consuming input
// when the hex digits are malformed.
func (l *Lexer) lexUnicodeEscape(sb *strings.Builder) bool {
	r, ok := l.hex4(l.pos + 2)
	if !ok {
		return false
	}
	l.pos += 6
	if utf16.IsSurrogate(r) {
		if l.pos+1 < len(l.in) && l.in[l.pos] == '\\' && l.in[l.pos+1] == 'u' {
			if r2, ok2 := l.hex4(l.pos + 2); ok2 {
				if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
					l.pos += 6
					sb.WriteRune(combined)
					return true
				}
			}
		}
		sb.WriteRune(utf8.RuneError)
		return true
	}
	sb.WriteRune(r)
	return true
}

func (l *Lexer) hex4(at int) (rune, bool) {
	if at+4 > len(l.in) {
		return 0, false
	}
	v, err := strconv.ParseUint(string(l.in[at:at+4]), 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

func (l *Lexer) lexNumber() (Token, error) {
	start := l.pos
	if b := l.in[l.pos]; b == '-' || b == '+' {
		l.pos++
	}
	isFloat := false
	digits := func() {
		for l.pos < len(l.in) && l.in[l.pos] >= '0' && l.in[l.pos] <= '9' {
			l.pos++
		}
	}
	digits()
	if l.pos < len(l.in) && l.in[l.pos] == '.' {
		isFloat = true
		l.pos++
		digits()
	}
	if l.pos < len(l.in) && (l.in[l.pos] == 'e' || l.in[l.pos] == 'E') {
		isFloat = true
		l.pos++
		if l.pos < len(l.in) && (l.in[l.pos] == '-' || l.in[l.pos] == '+') {
			l.pos++
		}
		digits()
	}
	raw := string(l.in[start:l.pos])
	off := int64(start)
	if !isFloat {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Token{Kind: KindInt, Num: raw, Int: i, Offset: off}, nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Digit soup that is not a number; hand it back as an unquoted string.
		return Token{Kind: KindIdent, Str: raw, Offset: off}, nil
	}
	return Token{Kind: KindFloat, Num: raw, Float: f, Offset: off}, nil
}

func (l *Lexer) lexIdent() (Token, error) {
	start := l.pos
	for l.pos < len(l.in) && isIdentByte(l.in[l.pos]) {
		l.pos++
	}
	word := string(l.in[start:l.pos])
	off := int64(start)
	switch word {
	case "true", "True":
		return Token{Kind: KindBool, Bool: true, Offset: off}, nil
	case "false", "False":
		return Token{Kind: KindBool, Bool: false, Offset: off}, nil
	case "null", "None":
		return Token{Kind: KindNull, Offset: off}, nil
	case "NaN":
		return Token{Kind: KindFloat, Num: word, Float: math.NaN(), Offset: off}, nil
	case "Infinity":
		return Token{Kind: KindFloat, Num: word, Float: math.Inf(1), Offset: off}, nil
	}
	return Token{Kind: KindIdent, Str: toValidUTF8(word), Offset: off}, nil
}

func isIdentStart(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_' || b == '$' || b >= utf8.RuneSelf
}

func isIdentByte(b byte) bool {
	return isIdentStart(b) || b >= '0' && b <= '9'
}

// toValidUTF8 applies the lossy byte decoding policy: invalid sequences become
// U+FFFD instead of aborting extraction.
func toValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}
