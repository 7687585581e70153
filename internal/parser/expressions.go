package parser

import (
	"strconv"
	"strings"

	"github.com/sneklang/go-snek/internal/ast"
	"github.com/sneklang/go-snek/pkg/token"
)

// canStartExpression reports whether a token type can begin a test.
func canStartExpression(t token.Type) bool {
	switch t {
	case token.NAME, token.NUMBER, token.STRING,
		token.LPAREN, token.LBRACK, token.LBRACE,
		token.MINUS, token.PLUS, token.TILDE, token.NOT:
		return true
	}
	return false
}

// atomAlternatives is the wanted-list shown when an expression was
// required but the next token cannot begin one.
var atomAlternatives = []string{"(", "[", "{", "NAME", "NUMBER", "STRING"}

// parseTestList parses test (',' test)* [','] and returns either the
// single expression (no comma) or a tuple. A trailing comma forces a
// tuple even with one element.
func (p *Parser) parseTestList() ast.Expression {
	tok := p.cur
	first := p.parseTest()
	if p.cur.Type != token.COMMA {
		return first
	}
	elems := []ast.Expression{first}
	for p.cur.Type == token.COMMA {
		p.next()
		if !canStartExpression(p.cur.Type) {
			break
		}
		elems = append(elems, p.parseTest())
	}
	return &ast.TupleLiteral{Token: tok, Elements: elems}
}

// parseTargetList parses a for-loop target list. Targets use the trailer
// grammar (no binary operators), so the 'in' that follows stays unconsumed.
func (p *Parser) parseTargetList() ast.Expression {
	tok := p.cur
	first := p.parseTrailer()
	var target ast.Expression = first
	if p.cur.Type == token.COMMA {
		elems := []ast.Expression{first}
		for p.cur.Type == token.COMMA {
			p.next()
			if !canStartExpression(p.cur.Type) {
				break
			}
			elems = append(elems, p.parseTrailer())
		}
		target = &ast.TupleLiteral{Token: tok, Elements: elems}
	}
	p.checkTarget(target)
	return target
}

// parseTest parses the full expression grammar, whose lowest-precedence
// form is the conditional: X if C else Y.
func (p *Parser) parseTest() ast.Expression {
	expr := p.parseOrTest()
	if p.cur.Type != token.IF {
		return expr
	}
	tok := p.cur
	p.next()
	cond := p.parseOrTest()
	p.expect(token.ELSE)
	return &ast.ConditionalExpression{
		Token: tok,
		Then:  expr,
		Cond:  cond,
		Else:  p.parseTest(),
	}
}

func (p *Parser) parseOrTest() ast.Expression {
	expr := p.parseAndTest()
	for p.cur.Type == token.OR {
		tok := p.cur
		p.next()
		expr = &ast.LogicalExpression{Token: tok, Left: expr, Operator: "or", Right: p.parseAndTest()}
	}
	return expr
}

func (p *Parser) parseAndTest() ast.Expression {
	expr := p.parseNotTest()
	for p.cur.Type == token.AND {
		tok := p.cur
		p.next()
		expr = &ast.LogicalExpression{Token: tok, Left: expr, Operator: "and", Right: p.parseNotTest()}
	}
	return expr
}

func (p *Parser) parseNotTest() ast.Expression {
	if p.cur.Type == token.NOT {
		tok := p.cur
		p.next()
		return &ast.UnaryExpression{Token: tok, Operator: "not", Right: p.parseNotTest()}
	}
	return p.parseComparison()
}

// compOp recognizes a comparison operator at the current token and
// returns its spelling, consuming it. "not in" spans two tokens.
func (p *Parser) compOp() (string, bool) {
	switch p.cur.Type {
	case token.EQ_EQ, token.NOT_EQ, token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ:
		op := p.cur.Literal
		p.next()
		return op, true
	case token.IN:
		p.next()
		return "in", true
	case token.NOT:
		if p.peek.Type == token.IN {
			p.next()
			p.next()
			return "not in", true
		}
	}
	return "", false
}

// parseComparison parses chained comparisons into a single node holding
// the operand and operator lists.
func (p *Parser) parseComparison() ast.Expression {
	left := p.parseBitOr()
	tok := p.cur
	op, ok := p.compOp()
	if !ok {
		return left
	}
	operands := []ast.Expression{left, p.parseBitOr()}
	operators := []string{op}
	for {
		op, ok := p.compOp()
		if !ok {
			break
		}
		operators = append(operators, op)
		operands = append(operands, p.parseBitOr())
	}
	return &ast.CompareExpression{Token: tok, Operands: operands, Operators: operators}
}

func (p *Parser) parseBitOr() ast.Expression {
	expr := p.parseBitAnd()
	for p.cur.Type == token.PIPE {
		tok := p.cur
		p.next()
		expr = &ast.BinaryExpression{Token: tok, Left: expr, Operator: "|", Right: p.parseBitAnd()}
	}
	return expr
}

func (p *Parser) parseBitAnd() ast.Expression {
	expr := p.parseArith()
	for p.cur.Type == token.AMP {
		tok := p.cur
		p.next()
		expr = &ast.BinaryExpression{Token: tok, Left: expr, Operator: "&", Right: p.parseArith()}
	}
	return expr
}

func (p *Parser) parseArith() ast.Expression {
	expr := p.parseTerm()
	for p.cur.Type == token.PLUS || p.cur.Type == token.MINUS {
		tok := p.cur
		p.next()
		expr = &ast.BinaryExpression{Token: tok, Left: expr, Operator: tok.Literal, Right: p.parseTerm()}
	}
	return expr
}

func (p *Parser) parseTerm() ast.Expression {
	expr := p.parseUnary()
	for p.cur.Type == token.ASTERISK || p.cur.Type == token.SLASH || p.cur.Type == token.PERCENT {
		tok := p.cur
		p.next()
		expr = &ast.BinaryExpression{Token: tok, Left: expr, Operator: tok.Literal, Right: p.parseUnary()}
	}
	return expr
}

func (p *Parser) parseUnary() ast.Expression {
	switch p.cur.Type {
	case token.MINUS, token.PLUS, token.TILDE:
		tok := p.cur
		p.next()
		return &ast.UnaryExpression{Token: tok, Operator: tok.Literal, Right: p.parseUnary()}
	}
	return p.parseTrailer()
}

// parseTrailer parses an atom followed by any number of call, subscript,
// and attribute trailers, left-associative.
func (p *Parser) parseTrailer() ast.Expression {
	expr := p.parseAtom()
	for {
		switch p.cur.Type {
		case token.LPAREN:
			tok := p.cur
			p.next()
			call := &ast.CallExpression{Token: tok, Callee: expr}
			for p.cur.Type != token.RPAREN {
				call.Arguments = append(call.Arguments, p.parseTest())
				if p.cur.Type != token.COMMA {
					break
				}
				p.next()
			}
			p.expect(token.RPAREN)
			expr = call
		case token.LBRACK:
			expr = p.parseSubscript(expr)
		case token.DOT:
			tok := p.cur
			p.next()
			expr = &ast.AttributeExpression{Token: tok, Object: expr, Name: p.expectName()}
		default:
			return expr
		}
	}
}

// parseSubscript parses e[i] or e[a:b] with optional slice bounds.
func (p *Parser) parseSubscript(obj ast.Expression) ast.Expression {
	tok := p.expect(token.LBRACK)
	if p.cur.Type == token.COLON {
		p.next()
		slice := &ast.SliceExpression{Token: tok, Object: obj}
		if p.cur.Type != token.RBRACK {
			slice.High = p.parseTest()
		}
		p.expect(token.RBRACK)
		return slice
	}
	idx := p.parseTest()
	if p.cur.Type == token.COLON {
		p.next()
		slice := &ast.SliceExpression{Token: tok, Object: obj, Low: idx}
		if p.cur.Type != token.RBRACK {
			slice.High = p.parseTest()
		}
		p.expect(token.RBRACK)
		return slice
	}
	p.expect(token.RBRACK)
	return &ast.IndexExpression{Token: tok, Object: obj, Index: idx}
}

// parseAtom parses the leaves of the expression grammar: names, literals,
// and the three display forms.
func (p *Parser) parseAtom() ast.Expression {
	tok := p.cur
	switch p.cur.Type {
	case token.NAME:
		p.next()
		return &ast.Identifier{Token: tok, Value: tok.Literal}
	case token.NUMBER:
		p.next()
		return p.numberLiteral(tok)
	case token.STRING:
		p.next()
		return &ast.StringLiteral{Token: tok, Value: tok.Value}
	case token.LPAREN:
		p.next()
		if p.cur.Type == token.RPAREN {
			p.next()
			return &ast.TupleLiteral{Token: tok}
		}
		expr := p.parseTestList()
		p.expect(token.RPAREN)
		return expr
	case token.LBRACK:
		p.next()
		list := &ast.ListLiteral{Token: tok}
		for p.cur.Type != token.RBRACK {
			list.Elements = append(list.Elements, p.parseTest())
			if p.cur.Type != token.COMMA {
				break
			}
			p.next()
		}
		p.expect(token.RBRACK)
		return list
	case token.LBRACE:
		p.next()
		return p.parseBraceDisplay(tok)
	}
	p.failExpected(atomAlternatives...)
	return nil
}

// parseBraceDisplay parses {…}: a dict if the first item carries a colon,
// a set otherwise. Empty braces are an empty dict.
func (p *Parser) parseBraceDisplay(tok token.Token) ast.Expression {
	if p.cur.Type == token.RBRACE {
		p.next()
		return &ast.DictLiteral{Token: tok}
	}
	first := p.parseTest()
	if p.cur.Type == token.COLON {
		p.next()
		dict := &ast.DictLiteral{Token: tok}
		dict.Keys = append(dict.Keys, first)
		dict.Values = append(dict.Values, p.parseTest())
		for p.cur.Type == token.COMMA {
			p.next()
			if p.cur.Type == token.RBRACE {
				break
			}
			dict.Keys = append(dict.Keys, p.parseTest())
			p.expect(token.COLON)
			dict.Values = append(dict.Values, p.parseTest())
		}
		p.expect(token.RBRACE)
		return dict
	}
	set := &ast.SetLiteral{Token: tok, Elements: []ast.Expression{first}}
	for p.cur.Type == token.COMMA {
		p.next()
		if p.cur.Type == token.RBRACE {
			break
		}
		set.Elements = append(set.Elements, p.parseTest())
	}
	p.expect(token.RBRACE)
	return set
}

// numberLiteral decodes a NUMBER token into an integer or float node.
func (p *Parser) numberLiteral(tok token.Token) ast.Expression {
	if strings.Contains(tok.Literal, ".") {
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.fail("invalid number literal "+tok.Literal, tok.Pos.Line)
		}
		return &ast.FloatLiteral{Token: tok, Value: f}
	}
	n, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.fail("invalid number literal "+tok.Literal, tok.Pos.Line)
	}
	return &ast.IntegerLiteral{Token: tok, Value: n}
}
