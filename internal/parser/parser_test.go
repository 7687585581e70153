package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sneklang/go-snek/internal/ast"
)

// parseSingle parses one statement and fails the test on error.
func parseSingle(t *testing.T, input string) ast.Statement {
	t.Helper()
	prog, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("Parse(%q) produced %d statements, want 1", input, len(prog.Statements))
	}
	return prog.Statements[0]
}

// exprString parses an expression statement and returns its rendering.
func exprString(t *testing.T, input string) string {
	t.Helper()
	stmt := parseSingle(t, input)
	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("Parse(%q) produced %T, want expression statement", input, stmt)
	}
	return es.Expression.String()
}

func TestExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"1 + 2 - 3", "((1 + 2) - 3)"},
		{"9 / 3 % 2", "((9 / 3) % 2)"},
		{"-5", "(-5)"},
		{"~0", "(~0)"},
		{"- - 5", "(-(-5))"},
		{"1 | 2 & 3", "(1 | (2 & 3))"},
		{"1 & 2 + 3", "(1 & (2 + 3))"},
		{"1 < 2 + 3", "(1 < (2 + 3))"},
		{"1 < 4 < 5", "(1 < 4 < 5)"},
		{"a == b != c", "(a == b != c)"},
		{"not a == b", "(not (a == b))"},
		{"not not True", "(not (not True))"},
		{"a and b or c", "((a and b) or c)"},
		{"a or b and c", "(a or (b and c))"},
		{"1 if a > 2 else 4", "(1 if (a > 2) else 4)"},
		{"a.b.c", "a.b.c"},
		{"f(1, 2)", "f(1, 2)"},
		{"f()(1)", "f()(1)"},
		{"a[1]", "a[1]"},
		{"a[1:]", "a[1:]"},
		{"a[:2]", "a[:2]"},
		{"a[1:2]", "a[1:2]"},
		{"a[:]", "a[:]"},
		{"a[-1]", "a[(-1)]"},
		{"c.m()", "c.m()"},
	}

	for _, tt := range tests {
		if got := exprString(t, tt.input+"\n"); got != tt.expected {
			t.Errorf("Parse(%q) rendered %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDisplays(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"()", "()"},
		{"(1,)", "(1,)"},
		{"(1, 2)", "(1, 2)"},
		{"1, 2", "(1, 2)"},
		{"1,", "(1,)"},
		{"(1)", "1"},
		{"[]", "[]"},
		{"[1, [2], 3]", "[1, [2], 3]"},
		{"{}", "{}"},
		{"{1: 2}", "{1: 2}"},
		{"{'a': 3, 'b': 4}", `{"a": 3, "b": 4}`},
		{"{1, 2, 2, 1}", "{1, 2, 2, 1}"},
		{"{1: 2,}", "{1: 2}"},
		{"[1, 2,]", "[1, 2]"},
	}

	for _, tt := range tests {
		if got := exprString(t, tt.input+"\n"); got != tt.expected {
			t.Errorf("Parse(%q) rendered %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestAssignmentForms(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a = 1", "a = 1"},
		{"a = b = 1", "a = b = 1"},
		{"a, b = 2, 3", "(a, b) = (2, 3)"},
		{"a, (b, c) = 0, a", "(a, (b, c)) = (0, a)"},
		{"a.x = 1", "a.x = 1"},
		{"a[0] = 1", "a[0] = 1"},
		{"a += 5", "a += 5"},
		{"b -= 5", "b -= 5"},
		{"c *= 3", "c *= 3"},
		{"d /= 2", "d /= 2"},
		{"a %= 7", "a %= 7"},
		{"a &= 224", "a &= 224"},
		{"a |= 130", "a |= 130"},
	}

	for _, tt := range tests {
		stmt := parseSingle(t, tt.input+"\n")
		if got := stmt.String(); got != tt.expected {
			t.Errorf("Parse(%q) rendered %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSemicolonSeparatedStatements(t *testing.T) {
	prog, err := Parse("a = 3; a = 1; a\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(prog.Statements))
	}
	want := []string{"a = 3", "a = 1", "a"}
	var got []string
	for _, s := range prog.Statements {
		got = append(got, s.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("statements mismatch (-want +got):\n%s", diff)
	}
}

func TestIfElifElse(t *testing.T) {
	input := "if a == 0:\n    a = 1\nelif a == 1:\n    a = 2\nelse:\n    a = 3\n"
	stmt := parseSingle(t, input)
	ifStmt, ok := stmt.(*ast.IfStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.IfStatement", stmt)
	}
	elif, ok := ifStmt.Alternative.(*ast.IfStatement)
	if !ok {
		t.Fatalf("elif chain not parsed as nested if, got %T", ifStmt.Alternative)
	}
	if _, ok := elif.Alternative.(*ast.BlockStatement); !ok {
		t.Fatalf("else suite missing, got %T", elif.Alternative)
	}
}

func TestLoopsWithElse(t *testing.T) {
	whileStmt := parseSingle(t, "while a < 3:\n    a = a + 1\nelse:\n    b = 1\n")
	ws, ok := whileStmt.(*ast.WhileStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.WhileStatement", whileStmt)
	}
	if ws.Else == nil {
		t.Error("while else clause not parsed")
	}

	forStmt := parseSingle(t, "for i in 1, 2, 3:\n    s = s + i\nelse: s = 0\n")
	fs, ok := forStmt.(*ast.ForStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.ForStatement", forStmt)
	}
	if fs.Else == nil {
		t.Error("for else clause not parsed")
	}
	if fs.Target.String() != "i" {
		t.Errorf("for target %q, want %q", fs.Target.String(), "i")
	}
	if fs.Iterable.String() != "(1, 2, 3)" {
		t.Errorf("for iterable %q, want %q", fs.Iterable.String(), "(1, 2, 3)")
	}
}

func TestForDestructuringTarget(t *testing.T) {
	stmt := parseSingle(t, "for k, v in d:\n    pass\n")
	fs := stmt.(*ast.ForStatement)
	if fs.Target.String() != "(k, v)" {
		t.Errorf("for target %q, want %q", fs.Target.String(), "(k, v)")
	}
}

func TestTryStatement(t *testing.T) {
	input := "try:\n    raise 2\nexcept 1:\n    a = 1\nexcept 2 as b:\n    a = b\nelse:\n    a = 3\nfinally:\n    c = 1\n"
	stmt := parseSingle(t, input)
	ts, ok := stmt.(*ast.TryStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.TryStatement", stmt)
	}
	if len(ts.Handlers) != 2 {
		t.Fatalf("got %d handlers, want 2", len(ts.Handlers))
	}
	if ts.Handlers[0].Match == nil || ts.Handlers[0].Name != "" {
		t.Error("first handler should match an expression without binding")
	}
	if ts.Handlers[1].Name != "b" {
		t.Errorf("second handler binds %q, want %q", ts.Handlers[1].Name, "b")
	}
	if ts.Else == nil || ts.Finally == nil {
		t.Error("else/finally clauses not parsed")
	}

	if _, err := Parse("try:\n    a = 1\n"); err == nil {
		t.Error("try without except or finally must be a syntax error")
	}
}

func TestDefAndClass(t *testing.T) {
	stmt := parseSingle(t, "def f(x, y=2):\n    return x + y\n")
	fn, ok := stmt.(*ast.FunctionStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.FunctionStatement", stmt)
	}
	if len(fn.Params) != 2 || fn.Params[0].Name != "x" || fn.Params[1].Default == nil {
		t.Errorf("parameters parsed wrong: %v", fn.Params)
	}

	cls := parseSingle(t, "class B(A):\n    def n(self):\n        return 2\n").(*ast.ClassStatement)
	if cls.Name != "B" || cls.Base == nil || cls.Base.String() != "A" {
		t.Errorf("class header parsed wrong: name=%q base=%v", cls.Name, cls.Base)
	}

	bare := parseSingle(t, "class A: pass\n").(*ast.ClassStatement)
	if bare.Base != nil {
		t.Errorf("bare class should have no base, got %v", bare.Base)
	}
}

func TestSingleLineSuite(t *testing.T) {
	stmt := parseSingle(t, "if a == 1: break\n")
	ifStmt := stmt.(*ast.IfStatement)
	if len(ifStmt.Consequence.Statements) != 1 {
		t.Fatalf("suite has %d statements, want 1", len(ifStmt.Consequence.Statements))
	}
	if _, ok := ifStmt.Consequence.Statements[0].(*ast.BreakStatement); !ok {
		t.Errorf("suite statement is %T, want *ast.BreakStatement", ifStmt.Consequence.Statements[0])
	}
}

func TestImportForms(t *testing.T) {
	tests := []string{
		"import a\n",
		"import a as x\n",
		"import a, b,\n",
		"import a, b as x\n",
		"from a import *\n",
		"from a import a\n",
		"from a import a, b as x, c,\n",
	}
	for _, input := range tests {
		if _, err := Parse(input); err != nil {
			t.Errorf("Parse(%q) failed: %v", input, err)
		}
	}
}

func TestDelGlobalAssert(t *testing.T) {
	del := parseSingle(t, "del(a, 1)\n").(*ast.DelStatement)
	if len(del.Args) != 2 {
		t.Errorf("del args = %d, want 2", len(del.Args))
	}

	global := parseSingle(t, "global a, b\n").(*ast.GlobalStatement)
	if diff := cmp.Diff([]string{"a", "b"}, global.Names); diff != "" {
		t.Errorf("global names mismatch (-want +got):\n%s", diff)
	}

	assert := parseSingle(t, "assert False, \"message\"\n").(*ast.AssertStatement)
	if assert.Message == nil {
		t.Error("assert message not parsed")
	}
}

func TestChainedComparisonNode(t *testing.T) {
	es := parseSingle(t, "1 < 4 < 5\n").(*ast.ExpressionStatement)
	ce, ok := es.Expression.(*ast.CompareExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.CompareExpression", es.Expression)
	}
	if len(ce.Operands) != 3 || len(ce.Operators) != 2 {
		t.Errorf("chain shape %d/%d, want 3 operands / 2 operators", len(ce.Operands), len(ce.Operators))
	}
}
