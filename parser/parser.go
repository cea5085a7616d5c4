package parser

import (
	"strconv"

	"github.com/pontaoski/exprc/ast"
	"github.com/pontaoski/exprc/errors"
	"github.com/pontaoski/exprc/lexer"
	"github.com/pontaoski/exprc/types"
	"github.com/ztrue/tracerr"
)

// expr   = term ("+" term | "-" term)*
// term   = factor ("*" factor | "/" factor)*
// factor = num
type Parser struct {
	c *lexer.Cursor
}

func NewParser(c *lexer.Cursor) Parser {
	return Parser{c}
}

// Parse builds the expression tree for tokens scanned out of source.
func Parse(source string, tokens []types.Token) (*ast.Tree, error) {
	p := NewParser(lexer.NewCursor(source, tokens))
	return p.Parse()
}

func (p *Parser) Parse() (*ast.Tree, error) {
	node, err := p.parseExpr()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	if tok, ok := p.c.Peek(); ok {
		return nil, tracerr.Wrap(errors.ExpectedOperator{
			Got:      tok.Text,
			Location: tok.Location.From,
		})
	}

	return node, nil
}

// stray rejects any character the scanner threw away between the last
// consumed token and the next.
func (p *Parser) stray() error {
	if r, idx, ok := p.c.Stray(); ok {
		return errors.InvalidCharacter{Char: r, Location: idx}
	}
	return nil
}

func (p *Parser) parseExpr() (*ast.Tree, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		if err := p.stray(); err != nil {
			return nil, err
		}
		if !p.c.PeekIs("+", "-") {
			return node, nil
		}

		op, _ := p.c.Next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node = ast.NewBinary(op.Text, node, right)
	}
}

func (p *Parser) parseTerm() (*ast.Tree, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		if err := p.stray(); err != nil {
			return nil, err
		}
		if !p.c.PeekIs("*", "/") {
			return node, nil
		}

		op, _ := p.c.Next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = ast.NewBinary(op.Text, node, right)
	}
}

func (p *Parser) parseFactor() (*ast.Tree, error) {
	if err := p.stray(); err != nil {
		return nil, err
	}

	tok, ok := p.c.Next()
	if !ok {
		return nil, errors.UnexpectedEndOfInput{Location: p.c.Len()}
	}
	if tok.Kind != types.Number {
		return nil, errors.ExpectedNumber{Got: tok.Text, Location: tok.Location.From}
	}
	if _, err := strconv.ParseInt(tok.Text, 10, 64); err != nil {
		return nil, errors.NumberOutOfRange{Literal: tok.Text, Location: tok.Location.From}
	}

	return ast.NewNumber(tok.Text), nil
}
