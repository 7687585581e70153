package ast

import (
	"bytes"
	"strings"

	"github.com/sneklang/go-snek/pkg/token"
)

// TupleLiteral represents a tuple display: a comma-separated expression
// list with at least one comma (or empty parentheses).
type TupleLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (tl *TupleLiteral) expressionNode()      {}
func (tl *TupleLiteral) TokenLiteral() string { return tl.Token.Literal }
func (tl *TupleLiteral) Pos() token.Position  { return tl.Token.Pos }
func (tl *TupleLiteral) String() string {
	if len(tl.Elements) == 1 {
		return "(" + tl.Elements[0].String() + ",)"
	}
	return "(" + joinExpressions(tl.Elements) + ")"
}

// ListLiteral represents a list display: [e, e, ...].
type ListLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (ll *ListLiteral) expressionNode()      {}
func (ll *ListLiteral) TokenLiteral() string { return ll.Token.Literal }
func (ll *ListLiteral) Pos() token.Position  { return ll.Token.Pos }
func (ll *ListLiteral) String() string       { return "[" + joinExpressions(ll.Elements) + "]" }

// SetLiteral represents a set display: {e, e, ...} with no colons.
type SetLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (sl *SetLiteral) expressionNode()      {}
func (sl *SetLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *SetLiteral) Pos() token.Position  { return sl.Token.Pos }
func (sl *SetLiteral) String() string       { return "{" + joinExpressions(sl.Elements) + "}" }

// DictLiteral represents a dict display: {k: v, ...}. Keys and Values are
// parallel slices preserving source order.
type DictLiteral struct {
	Token  token.Token
	Keys   []Expression
	Values []Expression
}

func (dl *DictLiteral) expressionNode()      {}
func (dl *DictLiteral) TokenLiteral() string { return dl.Token.Literal }
func (dl *DictLiteral) Pos() token.Position  { return dl.Token.Pos }
func (dl *DictLiteral) String() string {
	pairs := make([]string, len(dl.Keys))
	for i := range dl.Keys {
		pairs[i] = dl.Keys[i].String() + ": " + dl.Values[i].String()
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// UnaryExpression represents a prefix operation: -x, ~x, not x.
type UnaryExpression struct {
	Token    token.Token // The operator token
	Operator string
	Right    Expression
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UnaryExpression) Pos() token.Position  { return ue.Token.Pos }
func (ue *UnaryExpression) String() string {
	sep := ""
	if ue.Operator == "not" {
		sep = " "
	}
	return "(" + ue.Operator + sep + ue.Right.String() + ")"
}

// BinaryExpression represents an arithmetic or bitwise binary operation.
type BinaryExpression struct {
	Token    token.Token // The operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) Pos() token.Position  { return be.Token.Pos }
func (be *BinaryExpression) String() string {
	return "(" + be.Left.String() + " " + be.Operator + " " + be.Right.String() + ")"
}

// CompareExpression represents a (possibly chained) comparison:
// a op1 b op2 c. Operands has one more element than Operators. Each
// interior operand is evaluated exactly once and the chain short-circuits
// on the first false link.
type CompareExpression struct {
	Token     token.Token // The first operator token
	Operands  []Expression
	Operators []string
}

func (ce *CompareExpression) expressionNode()      {}
func (ce *CompareExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CompareExpression) Pos() token.Position  { return ce.Token.Pos }
func (ce *CompareExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ce.Operands[0].String())
	for i, op := range ce.Operators {
		out.WriteString(" " + op + " ")
		out.WriteString(ce.Operands[i+1].String())
	}
	out.WriteString(")")
	return out.String()
}

// LogicalExpression represents a short-circuit and/or. The result is the
// determining operand's value, not a coerced boolean.
type LogicalExpression struct {
	Token    token.Token // The 'and' or 'or' token
	Left     Expression
	Operator string
	Right    Expression
}

func (le *LogicalExpression) expressionNode()      {}
func (le *LogicalExpression) TokenLiteral() string { return le.Token.Literal }
func (le *LogicalExpression) Pos() token.Position  { return le.Token.Pos }
func (le *LogicalExpression) String() string {
	return "(" + le.Left.String() + " " + le.Operator + " " + le.Right.String() + ")"
}

// ConditionalExpression represents the ternary form X if C else Y.
type ConditionalExpression struct {
	Token token.Token // The 'if' token
	Then  Expression
	Cond  Expression
	Else  Expression
}

func (ce *ConditionalExpression) expressionNode()      {}
func (ce *ConditionalExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *ConditionalExpression) Pos() token.Position  { return ce.Token.Pos }
func (ce *ConditionalExpression) String() string {
	return "(" + ce.Then.String() + " if " + ce.Cond.String() + " else " + ce.Else.String() + ")"
}

// CallExpression represents a call: callee(arg, ...).
type CallExpression struct {
	Token     token.Token // The '(' token
	Callee    Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) Pos() token.Position  { return ce.Token.Pos }
func (ce *CallExpression) String() string {
	return ce.Callee.String() + "(" + joinExpressions(ce.Arguments) + ")"
}

// AttributeExpression represents attribute access: object.name.
type AttributeExpression struct {
	Token  token.Token // The '.' token
	Object Expression
	Name   string
}

func (ae *AttributeExpression) expressionNode()      {}
func (ae *AttributeExpression) TokenLiteral() string { return ae.Token.Literal }
func (ae *AttributeExpression) Pos() token.Position  { return ae.Token.Pos }
func (ae *AttributeExpression) String() string       { return ae.Object.String() + "." + ae.Name }

// IndexExpression represents subscripting: object[index].
type IndexExpression struct {
	Token  token.Token // The '[' token
	Object Expression
	Index  Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) Pos() token.Position  { return ie.Token.Pos }
func (ie *IndexExpression) String() string {
	return ie.Object.String() + "[" + ie.Index.String() + "]"
}

// SliceExpression represents slicing: object[low:high], where either
// bound may be omitted.
type SliceExpression struct {
	Token  token.Token // The '[' token
	Object Expression
	Low    Expression // may be nil
	High   Expression // may be nil
}

func (se *SliceExpression) expressionNode()      {}
func (se *SliceExpression) TokenLiteral() string { return se.Token.Literal }
func (se *SliceExpression) Pos() token.Position  { return se.Token.Pos }
func (se *SliceExpression) String() string {
	var out bytes.Buffer
	out.WriteString(se.Object.String())
	out.WriteString("[")
	if se.Low != nil {
		out.WriteString(se.Low.String())
	}
	out.WriteString(":")
	if se.High != nil {
		out.WriteString(se.High.String())
	}
	out.WriteString("]")
	return out.String()
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
