package lexer

import (
	"unicode"

	"github.com/pontaoski/exprc/types"
)

func classify(r rune) types.TokenKind {
	switch r {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return types.Number
	case '+', '-', '*', '/', '(', ')':
		return types.Punctuation
	}
	return types.Ignore
}

// Tokenize splits input wherever the character class changes. Digit runs
// become one Number token, every operator character its own Punctuation
// token, and anything else is dropped. Token spans count characters, not
// bytes.
func Tokenize(input string) []types.Token {
	runes := []rune(input)

	var tokens []types.Token
	kindOld := types.Ignore
	var value []rune
	start := 0

	for idx, r := range runes {
		kind := classify(r)

		if kind != kindOld || kindOld == types.Punctuation {
			if len(value) > 0 {
				tokens = append(tokens, types.Token{
					Kind:     kindOld,
					Text:     string(value),
					Location: types.Span{From: start, To: idx},
				})
			}
			kindOld = kind
			value = value[:0]
			start = idx
		}

		if kind != types.Ignore {
			value = append(value, r)
		}
	}

	// no end-of-input token: whatever is still buffered (a trailing number,
	// or an operator glued to the end) has to be flushed here
	if len(value) > 0 {
		tokens = append(tokens, types.Token{
			Kind:     kindOld,
			Text:     string(value),
			Location: types.Span{From: start, To: len(runes)},
		})
	}

	return tokens
}

// Cursor is a forward-only view over a token sequence with one token of
// lookahead. It keeps the source around so that characters the scanner
// dropped can still be reported.
type Cursor struct {
	source []rune
	tokens []types.Token
	pos    int
	end    int
}

func NewCursor(source string, tokens []types.Token) *Cursor {
	return &Cursor{
		source: []rune(source),
		tokens: tokens,
	}
}

// Len is the length of the source in characters.
func (c *Cursor) Len() int {
	return len(c.source)
}

func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.tokens)
}

func (c *Cursor) Peek() (types.Token, bool) {
	if c.AtEnd() {
		return types.Token{}, false
	}
	return c.tokens[c.pos], true
}

func (c *Cursor) PeekIs(ops ...string) bool {
	tok, ok := c.Peek()
	return ok && tok.Is(ops...)
}

func (c *Cursor) Next() (types.Token, bool) {
	tok, ok := c.Peek()
	if !ok {
		return tok, false
	}
	c.pos++
	c.end = tok.Location.To
	return tok, true
}

// Stray returns the first non-space character between the last consumed
// token and the next one, or the end of the source.
func (c *Cursor) Stray() (rune, int, bool) {
	limit := len(c.source)
	if tok, ok := c.Peek(); ok {
		limit = tok.Location.From
	}

	for i := c.end; i < limit; i++ {
		if !unicode.IsSpace(c.source[i]) {
			return c.source[i], i, true
		}
	}
	return 0, 0, false
}
