// Package refeval evaluates expressions directly in Go.
//
// It shares nothing with the compiler front end: the grammar is declared with
// participle and the arithmetic is plain int64 arithmetic, which makes it a
// reference to check generated code against.
package refeval

import (
	"errors"
	"strconv"

	"github.com/alecthomas/participle"
)

var ErrDivideByZero = errors.New("refeval: division by zero")

type expression struct {
	Head *term     `@@`
	Tail []*opTerm `{ @@ }`
}

type opTerm struct {
	Op   string `@("+" | "-")`
	Term *term  `@@`
}

type term struct {
	Head string      `@Int`
	Tail []*opFactor `{ @@ }`
}

type opFactor struct {
	Op     string `@("*" | "/")`
	Factor string `@Int`
}

var parser = participle.MustBuild(&expression{})

func (e *expression) eval() (int64, error) {
	acc, err := e.Head.eval()
	if err != nil {
		return 0, err
	}
	for _, t := range e.Tail {
		v, err := t.Term.eval()
		if err != nil {
			return 0, err
		}
		if t.Op == "+" {
			acc += v
		} else {
			acc -= v
		}
	}
	return acc, nil
}

func (t *term) eval() (int64, error) {
	acc, err := strconv.ParseInt(t.Head, 10, 64)
	if err != nil {
		return 0, err
	}
	for _, f := range t.Tail {
		v, err := strconv.ParseInt(f.Factor, 10, 64)
		if err != nil {
			return 0, err
		}
		if f.Op == "*" {
			acc *= v
			continue
		}
		if v == 0 {
			return 0, ErrDivideByZero
		}
		acc /= v
	}
	return acc, nil
}

// Eval computes input with truncating division and left-to-right grouping of
// operators with equal precedence.
func Eval(input string) (int64, error) {
	expr := &expression{}
	if err := parser.ParseString(input, expr); err != nil {
		return 0, err
	}
	return expr.eval()
}
