// Package llvmgen lowers expression trees to LLVM IR.
package llvmgen

import (
	"strconv"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/value"
	"github.com/pontaoski/exprc/ast"
)

type Options struct {
	Entry  string
	Source string
}

func codegenExpression(t *ast.Tree, b *ir.Block) value.Value {
	n := t.Key()
	if n.Kind == ast.Number {
		v, err := strconv.ParseInt(n.Text, 10, 64)
		if err != nil {
			panic(err)
		}
		return constant.NewInt(Int64, v)
	}

	if t.Left() == nil || t.Right() == nil {
		panic("malformed operator node " + n.Text)
	}

	// same evaluation order as the assembly back end
	right := codegenExpression(t.Right(), b)
	left := codegenExpression(t.Left(), b)

	switch n.Kind {
	case ast.Add:
		return b.NewAdd(left, right)
	case ast.Sub:
		return b.NewSub(left, right)
	case ast.Mul:
		return b.NewMul(left, right)
	case ast.Div:
		return b.NewSDiv(left, right)
	}

	panic("unhandled")
}

// Generate builds a module with a single function, named after the entry,
// that returns the value of t truncated to 32 bits.
func Generate(t *ast.Tree, opts Options) *ir.Module {
	m := ir.NewModule()

	fn := m.NewFunc(opts.Entry, Int32)
	entry := fn.NewBlock("entry")

	result := codegenExpression(t, entry)
	entry.NewRet(entry.NewTrunc(result, Int32))

	registerInfoWithModule(Info{Source: opts.Source, Target: "llvm"}, m)

	return m
}
