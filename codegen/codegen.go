package codegen

import (
	"strconv"
	"strings"

	"github.com/pontaoski/exprc/ast"
)

const wordSize = 8

// Program is a generated function: a global entry label, its body and a
// return. The result is left in a0.
type Program struct {
	Entry        string
	Instructions []Instruction
	// MaxDepth is the most values the program keeps on the stack at once.
	MaxDepth int
}

func (p *Program) Lines() []string {
	lines := make([]string, 0, len(p.Instructions)+3)
	lines = append(lines, "  .global "+p.Entry, p.Entry+":")
	for _, insn := range p.Instructions {
		lines = append(lines, "  "+insn.String())
	}
	return append(lines, "  ret")
}

func (p *Program) String() string {
	return strings.Join(p.Lines(), "\n") + "\n"
}

// Generator lowers expression trees with a0 as the accumulator, a1 as the
// second operand and the machine stack for everything else.
type Generator struct {
	insns    []Instruction
	depth    int
	maxDepth int
}

func NewGenerator() *Generator {
	return &Generator{}
}

// Depth is the number of values currently pushed on the operand stack.
func (g *Generator) Depth() int {
	return g.depth
}

// MaxDepth is the deepest the operand stack got.
func (g *Generator) MaxDepth() int {
	return g.maxDepth
}

func (g *Generator) emit(insn Instruction) {
	g.insns = append(g.insns, insn)
}

func (g *Generator) push() {
	g.emit(Instruction{Op: OpAddi, Rd: SP, Rs1: SP, Imm: -wordSize})
	g.emit(Instruction{Op: OpSd, Rs1: SP, Rs2: A0, Imm: 0})
	g.depth++
	if g.depth > g.maxDepth {
		g.maxDepth = g.depth
	}
}

func (g *Generator) pop(reg Register) {
	g.emit(Instruction{Op: OpLd, Rd: reg, Rs1: SP, Imm: 0})
	g.emit(Instruction{Op: OpAddi, Rd: SP, Rs1: SP, Imm: wordSize})
	g.depth--
}

var arithmetic = map[ast.Kind]Opcode{
	ast.Add: OpAdd,
	ast.Sub: OpSub,
	ast.Mul: OpMul,
	ast.Div: OpDiv,
}

// Expr appends the code computing t into a0. The tree has to come from a
// successful parse; anything else panics.
func (g *Generator) Expr(t *ast.Tree) {
	n := t.Key()
	if n.Kind == ast.Number {
		val, err := strconv.ParseInt(n.Text, 10, 64)
		if err != nil {
			panic(err)
		}
		g.emit(Instruction{Op: OpLi, Rd: A0, Imm: val})
		return
	}

	op, ok := arithmetic[n.Kind]
	if !ok || t.Left() == nil || t.Right() == nil {
		panic("malformed operator node " + n.Text)
	}

	g.Expr(t.Right())
	g.push()
	g.Expr(t.Left())
	g.pop(A1)

	g.emit(Instruction{Op: op, Rd: A0, Rs1: A0, Rs2: A1})
}

// Generate lowers t into a program whose entry label is entry.
func Generate(t *ast.Tree, entry string) *Program {
	g := NewGenerator()
	g.Expr(t)
	if g.depth != 0 {
		panic("unbalanced operand stack: depth " + strconv.Itoa(g.depth))
	}
	return &Program{Entry: entry, Instructions: g.insns, MaxDepth: g.maxDepth}
}
