package token

import "testing"

func TestLookupName(t *testing.T) {
	tests := []struct {
		ident    string
		expected Type
	}{
		{"if", IF},
		{"elif", ELIF},
		{"else", ELSE},
		{"while", WHILE},
		{"for", FOR},
		{"in", IN},
		{"break", BREAK},
		{"continue", CONTINUE},
		{"return", RETURN},
		{"def", DEF},
		{"class", CLASS},
		{"pass", PASS},
		{"try", TRY},
		{"except", EXCEPT},
		{"finally", FINALLY},
		{"raise", RAISE},
		{"assert", ASSERT},
		{"del", DEL},
		{"import", IMPORT},
		{"from", FROM},
		{"as", AS},
		{"global", GLOBAL},
		{"and", AND},
		{"or", OR},
		{"not", NOT},
		{"x", NAME},
		{"foo", NAME},
		{"_bar", NAME},
		// True/False/None resolve in the root environment, not here.
		{"True", NAME},
		{"False", NAME},
		{"None", NAME},
	}

	for i, tt := range tests {
		if got := LookupName(tt.ident); got != tt.expected {
			t.Errorf("tests[%d] - LookupName(%q) = %v, want %v", i, tt.ident, got, tt.expected)
		}
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{NEWLINE, "NEWLINE"},
		{INDENT, "INDENT"},
		{DEDENT, "DEDENT"},
		{ENDMARKER, "ENDMARKER"},
		{NAME, "NAME"},
		{NUMBER, "NUMBER"},
		{STRING, "STRING"},
		{COLON, ":"},
		{LPAREN, "("},
		{EQ_EQ, "=="},
		{PIPE_ASSIGN, "|="},
		{IF, "if"},
		{EXCEPT, "except"},
	}

	for i, tt := range tests {
		if got := tt.typ.String(); got != tt.expected {
			t.Errorf("tests[%d] - %d.String() = %q, want %q", i, tt.typ, got, tt.expected)
		}
	}
}

func TestTypePredicates(t *testing.T) {
	if !IF.IsKeyword() || !NOT.IsKeyword() {
		t.Error("keywords not recognized as keywords")
	}
	if NAME.IsKeyword() || COLON.IsKeyword() {
		t.Error("non-keywords recognized as keywords")
	}
	if !NAME.IsLiteral() || !NUMBER.IsLiteral() || !STRING.IsLiteral() {
		t.Error("literal types not recognized as literals")
	}
	if !NEWLINE.IsStructural() || !DEDENT.IsStructural() || !ENDMARKER.IsStructural() {
		t.Error("structural types not recognized as structural")
	}
	if COLON.IsStructural() || NAME.IsStructural() {
		t.Error("non-structural types recognized as structural")
	}
}
