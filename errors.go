package jsonmend

import (
	"errors"
	"fmt"
	"strings"

	eng "github.com/reoring/jsonmend/internal/engine"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Lex failures: no recoverable token boundary exists.
	CodeUnterminatedString  = "unterminated_string"
	CodeUnterminatedComment = "unterminated_comment"
	// Structural failures: no value-shaped content, or the nesting cap hit.
	CodeNoValue  = "no_value"
	CodeMaxDepth = "max_depth"
	// Validation failures reported by the schema-guided extractor.
	CodeRequired    = "required"
	CodeInvalidType = "invalid_type"
	// Schema descriptions that do not satisfy the schema grammar.
	CodeInvalidSchema = "invalid_schema"
)

// Issue represents a single repair or validation error entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Offset  int64 // Byte offset in the input, -1 when unknown.
}

// Issues is a collection of errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s: %s", it.Code, it.Path, it.Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsLexError reports whether err is a tokenizer failure (unterminated string
// or block comment with no recovery point).
func IsLexError(err error) bool {
	return hasCode(err, CodeUnterminatedString) || hasCode(err, CodeUnterminatedComment)
}

// IsStructuralError reports whether err means no value-shaped content was
// found or the configured nesting depth was exceeded.
func IsStructuralError(err error) bool {
	return hasCode(err, CodeNoValue) || hasCode(err, CodeMaxDepth)
}

// IsValidationError reports whether err is a schema validation failure: a
// missing required property or a kind mismatch on a declared property.
func IsValidationError(err error) bool {
	return hasCode(err, CodeRequired) || hasCode(err, CodeInvalidType)
}

func hasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

func singleIssue(code, msg string) Issues {
	return Issues{Issue{Path: "/", Code: code, Message: msg, Offset: -1}}
}

// toIssues lifts engine errors into the public error model.
func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{Issue{Path: "/", Code: ie.Code, Message: ie.Message, Offset: ie.Offset}}
	}
	return singleIssue(CodeNoValue, err.Error())
}
