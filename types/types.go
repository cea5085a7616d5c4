package types

import (
	"fmt"
)

// Span is a half-open range of character indices into the source.
type Span struct {
	From int
	To   int
}

type TokenKind int

const (
	Ignore TokenKind = iota
	Punctuation
	Number
)

func (t TokenKind) String() string {
	data := map[TokenKind]string{
		Ignore:      "Ignore",
		Punctuation: "Punctuation",
		Number:      "Number",
	}
	return data[t]
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.From, s.To)
}


type Token struct {
	Kind     TokenKind
	Text     string
	Location Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Location)
}

// Is reports whether the token is punctuation spelled as one of ops.
func (t Token) Is(ops ...string) bool {
	if t.Kind != Punctuation {
		return false
	}
	for _, op := range ops {
		if t.Text == op {
			return true
		}
	}
	return false
}
