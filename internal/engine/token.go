package engine

// Kind represents lexer token kinds.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindColon
	KindComma
	KindString
	KindIdent
	KindInt
	KindFloat
	KindBool
	KindNull
	KindNoise
	KindEOF
)

// Token is a single lexeme with its byte offset in the input. Strings carry
// decoded content in Str; UnknownEscape records that at least one backslash
// sequence was preserved verbatim rather than interpreted. Numbers carry the
// raw lexeme in Num and the parsed Int or Float depending on Kind.
type Token struct {
	Kind          Kind
	Str           string
	Num           string
	Int           int64
	Float         float64
	Bool          bool
	Offset        int64
	UnknownEscape bool
}

func (k Kind) String() string {
	switch k {
	case KindBeginObject:
		return "{"
	case KindEndObject:
		return "}"
	case KindBeginArray:
		return "["
	case KindEndArray:
		return "]"
	case KindColon:
		return ":"
	case KindComma:
		return ","
	case KindString:
		return "string"
	case KindIdent:
		return "ident"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindNoise:
		return "noise"
	default:
		return "eof"
	}
}
