package ast

import "github.com/pontaoski/exprc/tree"

type Kind int

const (
	Number Kind = iota
	Add
	Sub
	Mul
	Div
)

func (k Kind) String() string {
	data := map[Kind]string{
		Number: "Number",
		Add:    "Add",
		Sub:    "Sub",
		Mul:    "Mul",
		Div:    "Div",
	}
	return data[k]
}

// Node is the payload of an expression tree node. Text holds the literal
// digits of a Number and the operator symbol of everything else.
type Node struct {
	Kind Kind
	Text string
}

type Tree = tree.Tree[Node]

var operators = map[string]Kind{
	"+": Add,
	"-": Sub,
	"*": Mul,
	"/": Div,
}

// OperatorKind maps an operator symbol to its node kind.
func OperatorKind(op string) (Kind, bool) {
	k, ok := operators[op]
	return k, ok
}

func NewNumber(digits string) *Tree {
	return tree.New(Node{Kind: Number, Text: digits})
}

// NewBinary builds an operator node that takes ownership of both operands.
func NewBinary(op string, left, right *Tree) *Tree {
	kind, ok := OperatorKind(op)
	if !ok {
		panic("not an operator: " + op)
	}
	return tree.NewBinary(Node{Kind: kind, Text: op}, left, right)
}
