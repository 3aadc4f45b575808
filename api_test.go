package jsonmend_test

import (
	"errors"
	"testing"

	jsonmend "github.com/reoring/jsonmend"
)

// TestErrorModel_AsIssues exercises both AsIssues and errors.As against a
// validation failure.
func TestErrorModel_AsIssues(t *testing.T) {
	s, err := jsonmend.CompileSchema(map[string]any{
		"type":     "object",
		"required": []string{"id"},
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	_, err = jsonmend.NewExtractor(s).Extract([]byte(`{"other": 1}`))
	if err == nil {
		t.Fatal("expected issues")
	}
	var iss jsonmend.Issues
	if !errors.As(err, &iss) {
		t.Fatalf("expected errors.As to extract Issues, got: %v", err)
	}
	iss2, ok := jsonmend.AsIssues(err)
	if !ok || len(iss2) == 0 {
		t.Fatalf("expected AsIssues to succeed, got: %v", err)
	}
	if iss2[0].Code != jsonmend.CodeRequired {
		t.Fatalf("code = %q", iss2[0].Code)
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := jsonmend.Issues{
		{Path: "/a", Code: jsonmend.CodeInvalidType, Message: "expected string, got number"},
		{Path: "/b", Code: jsonmend.CodeRequired, Message: "missing required property \"b\""},
		{Path: "/c", Code: jsonmend.CodeRequired, Message: "x"},
		{Path: "/d", Code: jsonmend.CodeRequired, Message: "x"},
	}
	s := iss.Error()
	if s == "" {
		t.Fatal("expected non-empty error summary")
	}
}

func TestAppendIssues_InitializesNil(t *testing.T) {
	var iss jsonmend.Issues
	iss = jsonmend.AppendIssues(iss, jsonmend.Issue{Path: "/", Code: jsonmend.CodeNoValue})
	if len(iss) != 1 {
		t.Fatalf("len = %d", len(iss))
	}
}

// The engine is stateless; concurrent callers must not interfere.
func TestRepair_ConcurrentUse(t *testing.T) {
	e := jsonmend.NewExtractor(nil)
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := e.Extract([]byte(`noise {"k": [1, 2,]} tail`))
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent extract failed: %v", err)
		}
	}
}
