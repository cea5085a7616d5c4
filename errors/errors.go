package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/ztrue/tracerr"
)

// Diagnostic is an error that points at a character of the compiled input.
type Diagnostic interface {
	error
	Index() int
	Message() string
}

type InvalidCharacter struct {
	Char     rune
	Location int
}

func (e InvalidCharacter) Index() int      { return e.Location }
func (e InvalidCharacter) Message() string { return "invalid token" }

func (e InvalidCharacter) Error() string {
	return fmt.Sprintf("invalid token %q at %d", e.Char, e.Location)
}

type ExpectedNumber struct {
	Got      string
	Location int
}

func (e ExpectedNumber) Index() int      { return e.Location }
func (e ExpectedNumber) Message() string { return "expected a number" }

func (e ExpectedNumber) Error() string {
	return fmt.Sprintf("got %q, expected a number at %d", e.Got, e.Location)
}

// UnexpectedEndOfInput is an ExpectedNumber with nothing left to point at.
type UnexpectedEndOfInput struct {
	Location int
}

func (e UnexpectedEndOfInput) Index() int      { return e.Location }
func (e UnexpectedEndOfInput) Message() string { return "expected a number" }

func (e UnexpectedEndOfInput) Error() string {
	return fmt.Sprintf("unexpected end of input, expected a number at %d", e.Location)
}

type ExpectedOperator struct {
	Got      string
	Location int
}

func (e ExpectedOperator) Index() int      { return e.Location }
func (e ExpectedOperator) Message() string { return "expected an operator" }

func (e ExpectedOperator) Error() string {
	return fmt.Sprintf("got %q, expected an operator at %d", e.Got, e.Location)
}

type NumberOutOfRange struct {
	Literal  string
	Location int
}

func (e NumberOutOfRange) Index() int      { return e.Location }
func (e NumberOutOfRange) Message() string { return "number out of range" }

func (e NumberOutOfRange) Error() string {
	return fmt.Sprintf("number %s out of range at %d", e.Literal, e.Location)
}

// As finds the Diagnostic behind err, looking through tracerr wrapping.
func As(err error) (Diagnostic, bool) {
	if err == nil {
		return nil, false
	}
	var d Diagnostic
	if stderrors.As(tracerr.Unwrap(err), &d) {
		return d, true
	}
	return nil, false
}

// Render formats d under the source it was raised for:
//
//	1+s
//	  ^ invalid token
func Render(source string, d Diagnostic) string {
	var b strings.Builder
	b.WriteString(source)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", d.Index()))
	b.WriteString("^ ")
	b.WriteString(d.Message())
	return b.String()
}
