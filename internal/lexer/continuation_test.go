package lexer

import "testing"

func TestNeedsContinuation(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a = 1", false},
		{"1 + 2", false},
		{"if a:", true},
		{"while True:", true},
		{"def f(x):", true},
		{"a = [1,", true},
		{"a = (1 +", true},
		{"a = {", true},
		{"a = [1,\n     2]", false},
		{"a = 1 + \\", true},
		{"a = 1 + \\\n    2", false},
		{"a = ':'", false},     // colon inside a string does not continue
		{"a = 1  # x:", false}, // colon inside a comment does not continue
		{"if a: b = 1", false},
	}

	for i, tt := range tests {
		if got := NeedsContinuation(tt.input); got != tt.want {
			t.Errorf("tests[%d] - NeedsContinuation(%q) = %v, want %v", i, tt.input, got, tt.want)
		}
	}
}
