package ast

import (
	"bytes"

	"github.com/sneklang/go-snek/pkg/token"
)

// IfStatement represents if/elif/else. An elif chain parses as a nested
// IfStatement in Alternative.
type IfStatement struct {
	Token       token.Token // The 'if' or 'elif' token
	Cond        Expression
	Consequence *BlockStatement
	Alternative Statement // *IfStatement, *BlockStatement, or nil
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() token.Position  { return is.Token.Pos }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(is.Cond.String())
	out.WriteString(": ")
	out.WriteString(is.Consequence.String())
	if is.Alternative != nil {
		out.WriteString(" else: ")
		out.WriteString(is.Alternative.String())
	}
	return out.String()
}

// WhileStatement represents while cond: body, with an optional else
// clause that runs iff the loop finished without break.
type WhileStatement struct {
	Token token.Token
	Cond  Expression
	Body  *BlockStatement
	Else  *BlockStatement // may be nil
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() token.Position  { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	var out bytes.Buffer
	out.WriteString("while ")
	out.WriteString(ws.Cond.String())
	out.WriteString(": ")
	out.WriteString(ws.Body.String())
	if ws.Else != nil {
		out.WriteString(" else: ")
		out.WriteString(ws.Else.String())
	}
	return out.String()
}

// ForStatement represents for target in iterable: body. Target binds via
// the same tuple-assignment rules as a statement target.
type ForStatement struct {
	Token    token.Token
	Target   Expression
	Iterable Expression
	Body     *BlockStatement
	Else     *BlockStatement // may be nil
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) Pos() token.Position  { return fs.Token.Pos }
func (fs *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for ")
	out.WriteString(fs.Target.String())
	out.WriteString(" in ")
	out.WriteString(fs.Iterable.String())
	out.WriteString(": ")
	out.WriteString(fs.Body.String())
	if fs.Else != nil {
		out.WriteString(" else: ")
		out.WriteString(fs.Else.String())
	}
	return out.String()
}

// BreakStatement terminates the innermost enclosing loop.
type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) Pos() token.Position  { return bs.Token.Pos }
func (bs *BreakStatement) String() string       { return "break" }

// ContinueStatement proceeds to the next iteration of the innermost loop.
type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) Pos() token.Position  { return cs.Token.Pos }
func (cs *ContinueStatement) String() string       { return "continue" }

// ReturnStatement exits the innermost enclosing function, yielding Value
// or None when omitted.
type ReturnStatement struct {
	Token token.Token
	Value Expression // may be nil
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() token.Position  { return rs.Token.Pos }
func (rs *ReturnStatement) String() string {
	if rs.Value != nil {
		return "return " + rs.Value.String()
	}
	return "return"
}

// ExceptClause is one handler of a try statement. Match is nil for a bare
// except; Name is non-empty for an 'as' binding.
type ExceptClause struct {
	Token token.Token // The 'except' token
	Match Expression  // may be nil
	Name  string      // may be empty
	Body  *BlockStatement
}

func (ec *ExceptClause) String() string {
	var out bytes.Buffer
	out.WriteString("except")
	if ec.Match != nil {
		out.WriteString(" ")
		out.WriteString(ec.Match.String())
		if ec.Name != "" {
			out.WriteString(" as " + ec.Name)
		}
	}
	out.WriteString(": ")
	out.WriteString(ec.Body.String())
	return out.String()
}

// TryStatement represents try/except*/else/finally. The finally body runs
// on every exit path from the try.
type TryStatement struct {
	Token    token.Token
	Body     *BlockStatement
	Handlers []*ExceptClause
	Else     *BlockStatement // may be nil
	Finally  *BlockStatement // may be nil
}

func (ts *TryStatement) statementNode()       {}
func (ts *TryStatement) TokenLiteral() string { return ts.Token.Literal }
func (ts *TryStatement) Pos() token.Position  { return ts.Token.Pos }
func (ts *TryStatement) String() string {
	var out bytes.Buffer
	out.WriteString("try: ")
	out.WriteString(ts.Body.String())
	for _, h := range ts.Handlers {
		out.WriteString(" ")
		out.WriteString(h.String())
	}
	if ts.Else != nil {
		out.WriteString(" else: ")
		out.WriteString(ts.Else.String())
	}
	if ts.Finally != nil {
		out.WriteString(" finally: ")
		out.WriteString(ts.Finally.String())
	}
	return out.String()
}

// RaiseStatement raises Value as an exception; a bare raise re-raises the
// active exception.
type RaiseStatement struct {
	Token token.Token
	Value Expression // may be nil
}

func (rs *RaiseStatement) statementNode()       {}
func (rs *RaiseStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *RaiseStatement) Pos() token.Position  { return rs.Token.Pos }
func (rs *RaiseStatement) String() string {
	if rs.Value != nil {
		return "raise " + rs.Value.String()
	}
	return "raise"
}

// AssertStatement raises AssertionError (with an optional message) when
// its condition is falsy.
type AssertStatement struct {
	Token   token.Token
	Cond    Expression
	Message Expression // may be nil
}

func (as *AssertStatement) statementNode()       {}
func (as *AssertStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssertStatement) Pos() token.Position  { return as.Token.Pos }
func (as *AssertStatement) String() string {
	if as.Message != nil {
		return "assert " + as.Cond.String() + ", " + as.Message.String()
	}
	return "assert " + as.Cond.String()
}
