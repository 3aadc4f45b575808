package engine

// Issue codes emitted by the engine. The root package maps these onto its
// public code constants unchanged.
const (
	CodeUnterminatedString  = "unterminated_string"
	CodeUnterminatedComment = "unterminated_comment"
	CodeNoValue             = "no_value"
	CodeMaxDepth            = "max_depth"
)

// SimpleIssue is a lightweight issue used inside the engine.
type SimpleIssue struct {
	Code    string
	Message string
	Offset  int64
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

func issueErr(code, msg string, offset int64) error {
	return IssueError{SimpleIssue{Code: code, Message: msg, Offset: offset}}
}
