// Package parser implements the recursive-descent parser for snek. It
// consumes the scanner's token stream and produces a typed AST, raising a
// structured syntax error at the first point the grammar is violated.
package parser

import (
	"github.com/sneklang/go-snek/internal/ast"
	"github.com/sneklang/go-snek/internal/lexer"
	"github.com/sneklang/go-snek/pkg/token"
)

// Parser holds a two-token window over the scanner's stream.
type Parser struct {
	sc   *lexer.Scanner
	cur  token.Token
	peek token.Token
}

// New creates a Parser reading from the given scanner.
func New(sc *lexer.Scanner) *Parser {
	return &Parser{sc: sc}
}

// Parse is a convenience wrapper: scan and parse a complete source text.
func Parse(input string) (*ast.Program, error) {
	return New(lexer.New(input)).ParseProgram()
}

// ParseProgram parses statements until ENDMARKER. The returned error, if
// any, is a *SyntaxError describing the first problem found; no partial
// AST is returned alongside it.
func (p *Parser) ParseProgram() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if b, ok := r.(bailout); ok {
				prog, err = nil, b.err
				return
			}
			panic(r)
		}
	}()

	p.fill()

	prog = &ast.Program{}
	for p.cur.Type != token.ENDMARKER {
		if p.cur.Type == token.NEWLINE {
			p.next()
			continue
		}
		prog.Statements = append(prog.Statements, p.parseStatement()...)
	}
	return prog, nil
}

// fill loads the initial two-token window.
func (p *Parser) fill() {
	p.cur = p.sc.NextToken()
	p.peek = p.sc.NextToken()
	p.checkIllegal()
}

// next shifts the token window. A scanner error arrives as an ILLEGAL
// token and aborts the parse immediately.
func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.sc.NextToken()
	p.checkIllegal()
}

func (p *Parser) checkIllegal() {
	if p.cur.Type == token.ILLEGAL {
		panic(bailout{&SyntaxError{Msg: p.cur.Literal, Line: p.cur.Pos.Line}})
	}
}

// display returns the way a token appears in diagnostics: its lexeme as
// written, or its symbolic name for the structural tokens.
func display(tok token.Token) string {
	if tok.Literal == "" {
		return tok.Type.String()
	}
	return tok.Literal
}

// failExpected aborts with an expected/found error at the current token.
func (p *Parser) failExpected(wanted ...string) {
	panic(bailout{&SyntaxError{
		Wanted: wanted,
		Found:  display(p.cur),
		Line:   p.cur.Pos.Line,
	}})
}

// fail aborts with a message-form syntax error at the given line.
func (p *Parser) fail(msg string, line int) {
	panic(bailout{&SyntaxError{Msg: msg, Line: line}})
}

// expect consumes and returns the current token if it has the wanted
// type, and aborts otherwise.
func (p *Parser) expect(t token.Type) token.Token {
	if p.cur.Type != t {
		p.failExpected(t.String())
	}
	tok := p.cur
	p.next()
	return tok
}

// expectName consumes a NAME token and returns its spelling.
func (p *Parser) expectName() string {
	return p.expect(token.NAME).Literal
}

// parseStatement parses one compound statement or one physical line of
// simple statements. Simple lines may hold several ';'-separated
// statements, which is why a slice comes back.
func (p *Parser) parseStatement() []ast.Statement {
	switch p.cur.Type {
	case token.IF:
		return []ast.Statement{p.parseIf()}
	case token.WHILE:
		return []ast.Statement{p.parseWhile()}
	case token.FOR:
		return []ast.Statement{p.parseFor()}
	case token.TRY:
		return []ast.Statement{p.parseTry()}
	case token.DEF:
		return []ast.Statement{p.parseDef()}
	case token.CLASS:
		return []ast.Statement{p.parseClass()}
	default:
		return p.parseSimpleLine()
	}
}

// parseSimpleLine parses simple_stmt (';' simple_stmt)* [';'] NEWLINE.
func (p *Parser) parseSimpleLine() []ast.Statement {
	stmts := []ast.Statement{p.parseSimpleStatement()}
	for p.cur.Type == token.SEMICOLON {
		p.next()
		if p.cur.Type == token.NEWLINE {
			break
		}
		stmts = append(stmts, p.parseSimpleStatement())
	}
	p.expect(token.NEWLINE)
	return stmts
}

// parseSuite parses the body of a compound statement: either an indented
// block after NEWLINE, or a simple-statement line on the same line as the
// header's colon.
func (p *Parser) parseSuite() *ast.BlockStatement {
	tok := p.expect(token.COLON)
	if p.cur.Type != token.NEWLINE {
		return &ast.BlockStatement{Token: tok, Statements: p.parseSimpleLine()}
	}
	p.next()
	p.expect(token.INDENT)
	var stmts []ast.Statement
	for p.cur.Type != token.DEDENT && p.cur.Type != token.ENDMARKER {
		stmts = append(stmts, p.parseStatement()...)
	}
	p.expect(token.DEDENT)
	return &ast.BlockStatement{Token: tok, Statements: stmts}
}

func (p *Parser) parseIf() *ast.IfStatement {
	tok := p.cur // 'if' or 'elif'
	p.next()
	cond := p.parseTest()
	cons := p.parseSuite()
	stmt := &ast.IfStatement{Token: tok, Cond: cond, Consequence: cons}
	switch p.cur.Type {
	case token.ELIF:
		stmt.Alternative = p.parseIf()
	case token.ELSE:
		p.next()
		stmt.Alternative = p.parseSuite()
	}
	return stmt
}

func (p *Parser) parseWhile() *ast.WhileStatement {
	tok := p.cur
	p.next()
	stmt := &ast.WhileStatement{Token: tok, Cond: p.parseTest()}
	stmt.Body = p.parseSuite()
	if p.cur.Type == token.ELSE {
		p.next()
		stmt.Else = p.parseSuite()
	}
	return stmt
}

func (p *Parser) parseFor() *ast.ForStatement {
	tok := p.cur
	p.next()
	stmt := &ast.ForStatement{Token: tok, Target: p.parseTargetList()}
	p.expect(token.IN)
	stmt.Iterable = p.parseTestList()
	stmt.Body = p.parseSuite()
	if p.cur.Type == token.ELSE {
		p.next()
		stmt.Else = p.parseSuite()
	}
	return stmt
}

func (p *Parser) parseTry() *ast.TryStatement {
	tok := p.cur
	p.next()
	stmt := &ast.TryStatement{Token: tok, Body: p.parseSuite()}
	for p.cur.Type == token.EXCEPT {
		h := &ast.ExceptClause{Token: p.cur}
		p.next()
		if p.cur.Type != token.COLON {
			h.Match = p.parseTest()
			if p.cur.Type == token.AS {
				p.next()
				h.Name = p.expectName()
			}
		}
		h.Body = p.parseSuite()
		stmt.Handlers = append(stmt.Handlers, h)
	}
	if p.cur.Type == token.ELSE {
		p.next()
		stmt.Else = p.parseSuite()
	}
	if p.cur.Type == token.FINALLY {
		p.next()
		stmt.Finally = p.parseSuite()
	}
	if len(stmt.Handlers) == 0 && stmt.Finally == nil {
		p.failExpected(token.EXCEPT.String(), token.FINALLY.String())
	}
	return stmt
}

func (p *Parser) parseDef() *ast.FunctionStatement {
	tok := p.cur
	p.next()
	stmt := &ast.FunctionStatement{Token: tok, Name: p.expectName()}
	p.expect(token.LPAREN)
	for p.cur.Type != token.RPAREN {
		param := &ast.Param{Name: p.expectName()}
		if p.cur.Type == token.ASSIGN {
			p.next()
			param.Default = p.parseTest()
		}
		stmt.Params = append(stmt.Params, param)
		if p.cur.Type != token.COMMA {
			break
		}
		p.next()
	}
	p.expect(token.RPAREN)
	stmt.Body = p.parseSuite()
	return stmt
}

func (p *Parser) parseClass() *ast.ClassStatement {
	tok := p.cur
	p.next()
	stmt := &ast.ClassStatement{Token: tok, Name: p.expectName()}
	if p.cur.Type == token.LPAREN {
		p.next()
		if p.cur.Type != token.RPAREN {
			stmt.Base = p.parseTest()
		}
		p.expect(token.RPAREN)
	}
	stmt.Body = p.parseSuite()
	return stmt
}

// parseSimpleStatement parses one statement that fits on a line segment:
// a small statement keyword form, or an expression/assignment.
func (p *Parser) parseSimpleStatement() ast.Statement {
	switch p.cur.Type {
	case token.PASS:
		tok := p.cur
		p.next()
		return &ast.PassStatement{Token: tok}
	case token.BREAK:
		tok := p.cur
		p.next()
		return &ast.BreakStatement{Token: tok}
	case token.CONTINUE:
		tok := p.cur
		p.next()
		return &ast.ContinueStatement{Token: tok}
	case token.RETURN:
		return p.parseReturn()
	case token.RAISE:
		return p.parseRaise()
	case token.ASSERT:
		return p.parseAssert()
	case token.DEL:
		return p.parseDel()
	case token.GLOBAL:
		return p.parseGlobal()
	case token.IMPORT:
		return p.parseImport()
	case token.FROM:
		return p.parseFromImport()
	default:
		return p.parseExprOrAssign()
	}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.cur
	p.next()
	stmt := &ast.ReturnStatement{Token: tok}
	if canStartExpression(p.cur.Type) {
		stmt.Value = p.parseTestList()
	}
	return stmt
}

func (p *Parser) parseRaise() ast.Statement {
	tok := p.cur
	p.next()
	stmt := &ast.RaiseStatement{Token: tok}
	if canStartExpression(p.cur.Type) {
		stmt.Value = p.parseTest()
	}
	return stmt
}

func (p *Parser) parseAssert() ast.Statement {
	tok := p.cur
	p.next()
	stmt := &ast.AssertStatement{Token: tok, Cond: p.parseTest()}
	if p.cur.Type == token.COMMA {
		p.next()
		stmt.Message = p.parseTest()
	}
	return stmt
}

func (p *Parser) parseDel() ast.Statement {
	tok := p.cur
	p.next()
	p.expect(token.LPAREN)
	stmt := &ast.DelStatement{Token: tok}
	for p.cur.Type != token.RPAREN {
		stmt.Args = append(stmt.Args, p.parseTest())
		if p.cur.Type != token.COMMA {
			break
		}
		p.next()
	}
	p.expect(token.RPAREN)
	return stmt
}

func (p *Parser) parseGlobal() ast.Statement {
	tok := p.cur
	p.next()
	stmt := &ast.GlobalStatement{Token: tok, Names: []string{p.expectName()}}
	for p.cur.Type == token.COMMA {
		p.next()
		stmt.Names = append(stmt.Names, p.expectName())
	}
	return stmt
}

// parseImportItem parses NAME ['as' NAME].
func (p *Parser) parseImportItem() ast.ImportItem {
	item := ast.ImportItem{Name: p.expectName()}
	if p.cur.Type == token.AS {
		p.next()
		item.Alias = p.expectName()
	}
	return item
}

func (p *Parser) parseImport() ast.Statement {
	tok := p.cur
	p.next()
	stmt := &ast.ImportStatement{Token: tok, Modules: []ast.ImportItem{p.parseImportItem()}}
	for p.cur.Type == token.COMMA {
		p.next()
		if p.cur.Type != token.NAME {
			break // trailing comma is permitted
		}
		stmt.Modules = append(stmt.Modules, p.parseImportItem())
	}
	return stmt
}

func (p *Parser) parseFromImport() ast.Statement {
	tok := p.cur
	p.next()
	stmt := &ast.FromImportStatement{Token: tok, Module: p.expectName()}
	p.expect(token.IMPORT)
	if p.cur.Type == token.ASTERISK {
		p.next()
		stmt.Star = true
		return stmt
	}
	stmt.Items = append(stmt.Items, p.parseImportItem())
	for p.cur.Type == token.COMMA {
		p.next()
		if p.cur.Type != token.NAME {
			break
		}
		stmt.Items = append(stmt.Items, p.parseImportItem())
	}
	return stmt
}

// augOps maps augmented-assignment token types to their base operator.
var augOps = map[token.Type]string{
	token.PLUS_ASSIGN:    "+",
	token.MINUS_ASSIGN:   "-",
	token.TIMES_ASSIGN:   "*",
	token.DIVIDE_ASSIGN:  "/",
	token.PERCENT_ASSIGN: "%",
	token.AMP_ASSIGN:     "&",
	token.PIPE_ASSIGN:    "|",
}

// parseExprOrAssign parses an expression statement, a chain of simple
// assignments, or an augmented assignment.
func (p *Parser) parseExprOrAssign() ast.Statement {
	tok := p.cur
	first := p.parseTestList()

	if op, ok := augOps[p.cur.Type]; ok {
		opTok := p.cur
		p.checkAugTarget(first)
		p.next()
		return &ast.AugAssignStatement{
			Token:    opTok,
			Target:   first,
			Operator: op,
			Value:    p.parseTestList(),
		}
	}

	if p.cur.Type != token.ASSIGN {
		return &ast.ExpressionStatement{Token: tok, Expression: first}
	}

	eqTok := p.cur
	exprs := []ast.Expression{first}
	for p.cur.Type == token.ASSIGN {
		p.next()
		exprs = append(exprs, p.parseTestList())
	}
	targets := exprs[:len(exprs)-1]
	for _, t := range targets {
		p.checkTarget(t)
	}
	return &ast.AssignStatement{
		Token:   eqTok,
		Targets: targets,
		Value:   exprs[len(exprs)-1],
	}
}

// checkTarget validates an assignment target: a name, attribute,
// subscript, or a tuple/list display of targets.
func (p *Parser) checkTarget(e ast.Expression) {
	switch t := e.(type) {
	case *ast.Identifier, *ast.AttributeExpression, *ast.IndexExpression, *ast.SliceExpression:
	case *ast.TupleLiteral:
		for _, el := range t.Elements {
			p.checkTarget(el)
		}
	case *ast.ListLiteral:
		for _, el := range t.Elements {
			p.checkTarget(el)
		}
	default:
		p.fail("invalid assignment target", e.Pos().Line)
	}
}

// checkAugTarget validates an augmented-assignment target, which must be
// a single name, attribute, or subscript.
func (p *Parser) checkAugTarget(e ast.Expression) {
	switch e.(type) {
	case *ast.Identifier, *ast.AttributeExpression, *ast.IndexExpression, *ast.SliceExpression:
	default:
		p.fail("invalid augmented assignment target", e.Pos().Line)
	}
}
