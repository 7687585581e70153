package repl

import (
	"strings"
	"testing"
)

func session(t *testing.T, input string) string {
	t.Helper()
	var out strings.Builder
	if err := Run(strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func TestSingleLineChunks(t *testing.T) {
	got := session(t, "1 + 2\n")
	if !strings.Contains(got, "3\n") {
		t.Errorf("output %q does not contain the result", got)
	}
	if !strings.HasPrefix(got, ">>> ") {
		t.Errorf("output %q does not start with the primary prompt", got)
	}
}

func TestStatePersistsAcrossChunks(t *testing.T) {
	got := session(t, "a = 41\na + 1\n")
	if !strings.Contains(got, "42\n") {
		t.Errorf("output %q does not contain 42", got)
	}
}

func TestBlockEndsAtBlankLine(t *testing.T) {
	input := "a = 0\nwhile a < 3:\n    a = a + 1\n\na\n"
	got := session(t, input)
	if !strings.Contains(got, "... ") {
		t.Errorf("output %q never showed the continuation prompt", got)
	}
	if !strings.Contains(got, "3\n") {
		t.Errorf("output %q does not contain the loop result", got)
	}
}

func TestBracketContinuation(t *testing.T) {
	got := session(t, "a = [1,\n     2]\na\n")
	if !strings.Contains(got, "[1, 2]\n") {
		t.Errorf("output %q does not contain the list", got)
	}
}

func TestErrorsAreRenderedInline(t *testing.T) {
	got := session(t, "if 1\n")
	if !strings.Contains(got, "SyntaxError: expected : but found NEWLINE at line 1\n") {
		t.Errorf("output %q does not contain the syntax error", got)
	}
}
