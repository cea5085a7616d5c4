package codegen

import (
	"testing"

	"github.com/pontaoski/exprc/ast"
	"github.com/stretchr/testify/require"
)

func num(s string) *ast.Tree { return ast.NewNumber(s) }

func TestGenerateNumber(t *testing.T) {
	p := Generate(num("123"), "main")

	require.Equal(t, []Instruction{{Op: OpLi, Rd: A0, Imm: 123}}, p.Instructions)
	require.Equal(t, "  .global main\nmain:\n  li a0, 123\n  ret\n", p.String())
}

func TestGenerateBinary(t *testing.T) {
	p := Generate(ast.NewBinary("-", num("5"), num("3")), "main")

	require.Equal(t, []string{
		"  .global main",
		"main:",
		"  li a0, 3",
		"  addi sp, sp, -8",
		"  sd a0, 0(sp)",
		"  li a0, 5",
		"  ld a1, 0(sp)",
		"  addi sp, sp, 8",
		"  sub a0, a0, a1",
		"  ret",
	}, p.Lines())
}

func TestGenerateOpcodes(t *testing.T) {
	for op, want := range map[string]Opcode{"+": OpAdd, "-": OpSub, "*": OpMul, "/": OpDiv} {
		p := Generate(ast.NewBinary(op, num("1"), num("2")), "main")
		last := p.Instructions[len(p.Instructions)-1]
		require.Equal(t, Instruction{Op: want, Rd: A0, Rs1: A0, Rs2: A1}, last)
		require.True(t, last.Op.IsArithmetic())

		for _, insn := range p.Instructions[:len(p.Instructions)-1] {
			require.False(t, insn.Op.IsArithmetic(), insn.String())
		}
	}
}

func TestGeneratorDepth(t *testing.T) {
	// 1 - (2 - (3 - (4 - 5))) keeps one value per level on the stack
	right := num("5")
	for _, n := range []string{"4", "3", "2", "1"} {
		right = ast.NewBinary("-", num(n), right)
	}

	g := NewGenerator()
	g.Expr(right)
	require.Equal(t, 0, g.Depth())
	require.Equal(t, 1, g.MaxDepth())

	left := num("1")
	for _, n := range []string{"2", "3", "4", "5"} {
		left = ast.NewBinary("+", left, num(n))
	}
	g = NewGenerator()
	g.Expr(left)
	require.Equal(t, 0, g.Depth())
	require.Equal(t, 4, g.MaxDepth())
}

func TestGenerateEntry(t *testing.T) {
	p := Generate(num("0"), "_start")
	require.Equal(t, "  .global _start", p.Lines()[0])
	require.Equal(t, "_start:", p.Lines()[1])
}

func TestGenerateMalformed(t *testing.T) {
	bad := ast.NewBinary("+", num("1"), nil)
	require.Panics(t, func() { Generate(bad, "main") })
}
