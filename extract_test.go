package jsonmend_test

import (
	"strings"
	"testing"

	jsonmend "github.com/reoring/jsonmend"
)

func reportSchema(t *testing.T) *jsonmend.Schema {
	t.Helper()
	s, err := jsonmend.CompileSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"score":   map[string]any{"type": "number"},
		},
		"required": []string{"summary"},
	})
	if err != nil {
		t.Fatalf("schema compile failed: %v", err)
	}
	return s
}

func TestExtract_NoisyBytes(t *testing.T) {
	e := jsonmend.NewExtractor(reportSchema(t))
	blob := []byte(`Thoughts... {"summary": "Done", "score": 95.5 %} Thanks!`)
	v, err := e.Extract(blob)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	obj := v.(*jsonmend.Object)
	if got, _ := obj.Get("summary"); got != "Done" {
		t.Fatalf("summary = %v", got)
	}
	if got, _ := obj.Get("score"); got != 95.5 {
		t.Fatalf("score = %v", got)
	}
}

func TestExtract_MissingRequiredNamesField(t *testing.T) {
	e := jsonmend.NewExtractor(reportSchema(t))
	_, err := e.Extract([]byte(`{'score': 10}`))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !jsonmend.IsValidationError(err) {
		t.Fatalf("expected validation error, got: %v", err)
	}
	iss, _ := jsonmend.AsIssues(err)
	if iss[0].Code != jsonmend.CodeRequired || iss[0].Path != "/summary" {
		t.Fatalf("expected required at /summary, got: %+v", iss[0])
	}
}

func TestExtract_KindMismatchNamesFieldAndKinds(t *testing.T) {
	e := jsonmend.NewExtractor(reportSchema(t))
	_, err := e.Extract([]byte(`{"summary": 5}`))
	if err == nil {
		t.Fatal("expected validation error")
	}
	iss, _ := jsonmend.AsIssues(err)
	if iss[0].Code != jsonmend.CodeInvalidType || iss[0].Path != "/summary" {
		t.Fatalf("expected invalid_type at /summary, got: %+v", iss[0])
	}
	if !strings.Contains(iss[0].Message, "string") || !strings.Contains(iss[0].Message, "number") {
		t.Fatalf("message should name expected and actual kinds: %q", iss[0].Message)
	}
}

func TestExtract_RootKindMismatch(t *testing.T) {
	e := jsonmend.NewExtractor(reportSchema(t))
	_, err := e.Extract([]byte(`[1, 2, 3]`))
	if err == nil || !jsonmend.IsValidationError(err) {
		t.Fatalf("expected root kind mismatch, got: %v", err)
	}
}

func TestExtract_IntegerSatisfiesNumber(t *testing.T) {
	e := jsonmend.NewExtractor(reportSchema(t))
	v, err := e.Extract([]byte(`{"summary": "ok", "score": 10}`))
	if err != nil {
		t.Fatalf("integral score should satisfy number: %v", err)
	}
	obj := v.(*jsonmend.Object)
	if got, _ := obj.Get("score"); got != int64(10) {
		t.Fatalf("score = %v (%T)", got, got)
	}
}

func TestExtract_UndeclaredPropertiesPassThrough(t *testing.T) {
	e := jsonmend.NewExtractor(reportSchema(t))
	v, err := e.Extract([]byte(`{"summary": "ok", "extra": {"kept": true}}`))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	obj := v.(*jsonmend.Object)
	if !obj.Has("extra") {
		t.Fatal("undeclared property should pass through unchanged")
	}
}

func TestExtract_NestedSchemaRecursion(t *testing.T) {
	s, err := jsonmend.CompileSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "object", "required": []string{"id"}},
			},
		},
		"required": []string{"items"},
	})
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	e := jsonmend.NewExtractor(s)

	if _, err := e.Extract([]byte(`{"items": [{"id": 1}, {"id": 2}]}`)); err != nil {
		t.Fatalf("valid nested input rejected: %v", err)
	}

	_, err = e.Extract([]byte(`{"items": [{"id": 1}, {"name": "no id"}]}`))
	if err == nil {
		t.Fatal("expected nested required failure")
	}
	iss, _ := jsonmend.AsIssues(err)
	if iss[0].Path != "/items/1/id" || iss[0].Code != jsonmend.CodeRequired {
		t.Fatalf("expected required at /items/1/id, got: %+v", iss[0])
	}
}

func TestExtract_MarkdownFences(t *testing.T) {
	e := jsonmend.NewExtractor(reportSchema(t))
	blob := []byte("```json\n{\"summary\": \"fenced\"}\n```")
	v, err := e.Extract(blob)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if got, _ := v.(*jsonmend.Object).Get("summary"); got != "fenced" {
		t.Fatalf("summary = %v", got)
	}
}

func TestExtract_RepairErrorsPropagate(t *testing.T) {
	e := jsonmend.NewExtractor(reportSchema(t))
	_, err := e.Extract([]byte("%%% ??? !!!"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !jsonmend.IsStructuralError(err) || jsonmend.IsValidationError(err) {
		t.Fatalf("repair failure should surface as structural, got: %v", err)
	}
}

func TestExtract_NilSchemaIsUnconstrained(t *testing.T) {
	e := jsonmend.NewExtractor(nil)
	if _, err := e.Extract([]byte(`{"anything": [1, 2]}`)); err != nil {
		t.Fatalf("nil schema should accept any value: %v", err)
	}
}

func TestExtractor_SchemaAccessor(t *testing.T) {
	s := reportSchema(t)
	e := jsonmend.NewExtractor(s)
	if e.Schema() != s {
		t.Fatal("Schema() should return the captured schema")
	}
	if e.Schema().Kind() != jsonmend.SchemaObject {
		t.Fatalf("kind = %v", e.Schema().Kind())
	}
}
