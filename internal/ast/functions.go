package ast

import (
	"bytes"
	"strings"

	"github.com/sneklang/go-snek/pkg/token"
)

// Param is one parameter of a function definition, with an optional
// default value expression.
type Param struct {
	Name    string
	Default Expression // may be nil
}

func (p *Param) String() string {
	if p.Default != nil {
		return p.Name + "=" + p.Default.String()
	}
	return p.Name
}

// FunctionStatement represents def name(params): body.
type FunctionStatement struct {
	Token  token.Token // The 'def' token
	Name   string
	Params []*Param
	Body   *BlockStatement
}

func (fs *FunctionStatement) statementNode()       {}
func (fs *FunctionStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *FunctionStatement) Pos() token.Position  { return fs.Token.Pos }
func (fs *FunctionStatement) String() string {
	params := make([]string, len(fs.Params))
	for i, p := range fs.Params {
		params[i] = p.String()
	}
	var out bytes.Buffer
	out.WriteString("def ")
	out.WriteString(fs.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString("): ")
	out.WriteString(fs.Body.String())
	return out.String()
}

// ClassStatement represents class name(base?): body. The body executes in
// a fresh scope whose bindings become the class attribute map.
type ClassStatement struct {
	Token token.Token // The 'class' token
	Name  string
	Base  Expression // may be nil
	Body  *BlockStatement
}

func (cs *ClassStatement) statementNode()       {}
func (cs *ClassStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ClassStatement) Pos() token.Position  { return cs.Token.Pos }
func (cs *ClassStatement) String() string {
	var out bytes.Buffer
	out.WriteString("class ")
	out.WriteString(cs.Name)
	if cs.Base != nil {
		out.WriteString("(" + cs.Base.String() + ")")
	}
	out.WriteString(": ")
	out.WriteString(cs.Body.String())
	return out.String()
}
