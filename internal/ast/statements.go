package ast

import (
	"bytes"
	"strings"

	"github.com/sneklang/go-snek/pkg/token"
)

// AssignStatement represents targets = value, where a chain
// a = b = expr carries both target lists in Targets. Each target is a
// name, attribute, subscript, or a (possibly nested) tuple/list of
// targets.
type AssignStatement struct {
	Token   token.Token // The '=' token
	Targets []Expression
	Value   Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignStatement) Pos() token.Position  { return as.Token.Pos }
func (as *AssignStatement) String() string {
	var out bytes.Buffer
	for _, t := range as.Targets {
		out.WriteString(t.String())
		out.WriteString(" = ")
	}
	out.WriteString(as.Value.String())
	return out.String()
}

// AugAssignStatement represents target op= value for a single name,
// attribute, or subscript target.
type AugAssignStatement struct {
	Token    token.Token // The augmented operator token
	Target   Expression
	Operator string // +, -, *, /, %, &, |
	Value    Expression
}

func (as *AugAssignStatement) statementNode()       {}
func (as *AugAssignStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AugAssignStatement) Pos() token.Position  { return as.Token.Pos }
func (as *AugAssignStatement) String() string {
	return as.Target.String() + " " + as.Operator + "= " + as.Value.String()
}

// DelStatement represents del(args...): unbinding a name or removing an
// item/attribute from a container.
type DelStatement struct {
	Token token.Token // The 'del' token
	Args  []Expression
}

func (ds *DelStatement) statementNode()       {}
func (ds *DelStatement) TokenLiteral() string { return ds.Token.Literal }
func (ds *DelStatement) Pos() token.Position  { return ds.Token.Pos }
func (ds *DelStatement) String() string       { return "del(" + joinExpressions(ds.Args) + ")" }

// PassStatement is a no-op.
type PassStatement struct {
	Token token.Token
}

func (ps *PassStatement) statementNode()       {}
func (ps *PassStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PassStatement) Pos() token.Position  { return ps.Token.Pos }
func (ps *PassStatement) String() string       { return "pass" }

// GlobalStatement declares names global in the current frame. It parses
// everywhere but is not evaluated.
type GlobalStatement struct {
	Token token.Token
	Names []string
}

func (gs *GlobalStatement) statementNode()       {}
func (gs *GlobalStatement) TokenLiteral() string { return gs.Token.Literal }
func (gs *GlobalStatement) Pos() token.Position  { return gs.Token.Pos }
func (gs *GlobalStatement) String() string       { return "global " + strings.Join(gs.Names, ", ") }

// ImportItem is one module or symbol in an import statement, with an
// optional alias.
type ImportItem struct {
	Name  string
	Alias string // empty when no 'as' clause
}

func (ii ImportItem) String() string {
	if ii.Alias != "" {
		return ii.Name + " as " + ii.Alias
	}
	return ii.Name
}

// ImportStatement represents import a, b as x, ... . Imports always fail
// at evaluation with a module-not-found error.
type ImportStatement struct {
	Token   token.Token
	Modules []ImportItem
}

func (is *ImportStatement) statementNode()       {}
func (is *ImportStatement) TokenLiteral() string { return is.Token.Literal }
func (is *ImportStatement) Pos() token.Position  { return is.Token.Pos }
func (is *ImportStatement) String() string {
	parts := make([]string, len(is.Modules))
	for i, m := range is.Modules {
		parts[i] = m.String()
	}
	return "import " + strings.Join(parts, ", ")
}

// FromImportStatement represents from m import * or
// from m import a, b as x, ... .
type FromImportStatement struct {
	Token  token.Token
	Module string
	Star   bool
	Items  []ImportItem
}

func (fs *FromImportStatement) statementNode()       {}
func (fs *FromImportStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *FromImportStatement) Pos() token.Position  { return fs.Token.Pos }
func (fs *FromImportStatement) String() string {
	if fs.Star {
		return "from " + fs.Module + " import *"
	}
	parts := make([]string, len(fs.Items))
	for i, it := range fs.Items {
		parts[i] = it.String()
	}
	return "from " + fs.Module + " import " + strings.Join(parts, ", ")
}
