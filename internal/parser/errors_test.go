package parser

import (
	"testing"
)

func TestSyntaxErrorMessages(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"if 1\n", "SyntaxError: expected : but found NEWLINE at line 1"},
		{"break 1\n", "SyntaxError: expected NEWLINE but found 1 at line 1"},
		{"class \"A\"\n", "SyntaxError: expected NAME but found \"A\" at line 1"},
		{"global a, b,\n", "SyntaxError: expected NAME but found NEWLINE at line 1"},
		{"a = \n", "SyntaxError: expected (, [, {, NAME, NUMBER, or STRING but found NEWLINE at line 1"},
		{"a = 1\nif 2\n", "SyntaxError: expected : but found NEWLINE at line 2"},
		{"def f(:\n", "SyntaxError: expected NAME but found : at line 1"},
		{"x = )\n", "SyntaxError: mismatched bracket at line 1"},
		{"x = 'abc\n", "SyntaxError: unterminated string at line 1"},
	}

	for i, tt := range tests {
		_, err := Parse(tt.input)
		if err == nil {
			t.Fatalf("tests[%d] - Parse(%q) unexpectedly succeeded", i, tt.input)
		}
		if err.Error() != tt.expected {
			t.Errorf("tests[%d] - error %q, want %q", i, err.Error(), tt.expected)
		}
	}
}

func TestJoinAlternatives(t *testing.T) {
	tests := []struct {
		alts     []string
		expected string
	}{
		{[]string{":"}, ":"},
		{[]string{"except", "finally"}, "except or finally"},
		{[]string{"(", "[", "{"}, "(, [, or {"},
	}
	for i, tt := range tests {
		if got := joinAlternatives(tt.alts); got != tt.expected {
			t.Errorf("tests[%d] - joinAlternatives(%v) = %q, want %q", i, tt.alts, got, tt.expected)
		}
	}
}

func TestFirstErrorWins(t *testing.T) {
	// Both lines are bad; only the first is reported.
	_, err := Parse("if 1\nbreak 2\n")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if err.Error() != "SyntaxError: expected : but found NEWLINE at line 1" {
		t.Errorf("got %q, want the line 1 error", err.Error())
	}
}
