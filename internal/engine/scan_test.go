package engine

import "testing"

func TestExtractSpan_PrefixAndSuffixNoise(t *testing.T) {
	got := ExtractSpan([]byte(`Thoughts... {"summary": "Done"} Thanks!`))
	if string(got) != `{"summary": "Done"}` {
		t.Fatalf("span = %q", got)
	}
}

func TestExtractSpan_BracketsInsideStringsIgnored(t *testing.T) {
	in := `prose {"a": "curly } inside", "b": ['x]y', 2]} tail`
	got := ExtractSpan([]byte(in))
	if string(got) != `{"a": "curly } inside", "b": ['x]y', 2]}` {
		t.Fatalf("span = %q", got)
	}
}

func TestExtractSpan_EscapedQuoteDoesNotEndString(t *testing.T) {
	in := `{"a": "quote \" then }"} rest`
	got := ExtractSpan([]byte(in))
	if string(got) != `{"a": "quote \" then }"}` {
		t.Fatalf("span = %q", got)
	}
}

func TestExtractSpan_UnbalancedRunsToEnd(t *testing.T) {
	got := ExtractSpan([]byte(`intro {"a": [1, 2`))
	if string(got) != `{"a": [1, 2` {
		t.Fatalf("span = %q", got)
	}
}

func TestExtractSpan_NoBracketReturnsTrimmedBuffer(t *testing.T) {
	got := ExtractSpan([]byte("  plain words  "))
	if string(got) != "plain words" {
		t.Fatalf("span = %q", got)
	}
}

func TestExtractSpan_ArrayRoot(t *testing.T) {
	got := ExtractSpan([]byte(`here: [1, {"a": 2}] done`))
	if string(got) != `[1, {"a": 2}]` {
		t.Fatalf("span = %q", got)
	}
}

func TestExtractSpan_MarkdownFence(t *testing.T) {
	got := ExtractSpan([]byte("```json\n{\"a\": 1}\n```"))
	if string(got) != `{"a": 1}` {
		t.Fatalf("span = %q", got)
	}
	got = ExtractSpan([]byte("```"))
	if len(got) != 0 {
		t.Fatalf("bare fence should yield empty span, got %q", got)
	}
}
