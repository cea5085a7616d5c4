// Package gogen translates generated RV64 programs into Go source.
//
// Each instruction becomes one Go statement over package-level registers and
// a word-addressed stack, so the Go program takes exactly the path the
// assembly does, including RISC-V division.
package gogen

import (
	"bytes"
	"fmt"

	. "github.com/dave/jennifer/jen"
	"github.com/pontaoski/exprc/codegen"
)

type Settings struct {
	Package string
	Source  string
}

func address(insn codegen.Instruction) *Statement {
	return Id("mem").Index(Parens(Id(string(insn.Rs1)).Op("+").Lit(insn.Imm)).Op("/").Lit(8))
}

func statement(insn codegen.Instruction) Code {
	switch insn.Op {
	case codegen.OpLi:
		return Id(string(insn.Rd)).Op("=").Lit(insn.Imm)
	case codegen.OpAddi:
		return Id(string(insn.Rd)).Op("=").Id(string(insn.Rs1)).Op("+").Lit(insn.Imm)
	case codegen.OpSd:
		return address(insn).Op("=").Id(string(insn.Rs2))
	case codegen.OpLd:
		return Id(string(insn.Rd)).Op("=").Add(address(insn))
	case codegen.OpAdd, codegen.OpSub, codegen.OpMul:
		ops := map[codegen.Opcode]string{codegen.OpAdd: "+", codegen.OpSub: "-", codegen.OpMul: "*"}
		return Id(string(insn.Rd)).Op("=").Id(string(insn.Rs1)).Op(ops[insn.Op]).Id(string(insn.Rs2))
	case codegen.OpDiv:
		return Id(string(insn.Rd)).Op("=").Id("div").Call(Id(string(insn.Rs1)), Id(string(insn.Rs2)))
	}

	panic("unhandled")
}

// Generate renders p as a Go program that exits with a0. The entry label of p
// is ignored: a Go program always starts in main.
func Generate(p *codegen.Program, opts Settings) (string, error) {
	if opts.Package == "" {
		opts.Package = "main"
	}
	f := NewFile(opts.Package)
	f.HeaderComment("Code generated by exprc. DO NOT EDIT.")
	if opts.Source != "" {
		f.HeaderComment(fmt.Sprintf("Source: %q", opts.Source))
	}

	f.Var().List(Id("a0"), Id("a1"), Id("sp")).Int64()
	f.Var().Id("mem").Index(Lit(p.MaxDepth)).Int64()

	f.Func().Id("div").Params(List(Id("x"), Id("y")).Int64()).Int64().Block(
		If(Id("y").Op("==").Lit(0)).Block(Return(Lit(-1))),
		If(Id("x").Op("==").Qual("math", "MinInt64").Op("&&").Id("y").Op("==").Lit(-1)).Block(Return(Id("x"))),
		Return(Id("x").Op("/").Id("y")),
	)

	body := []Code{
		Id("sp").Op("=").Int64().Call(Len(Id("mem")).Op("*").Lit(8)),
	}
	for _, insn := range p.Instructions {
		body = append(body, statement(insn))
	}
	body = append(body, Qual("os", "Exit").Call(Int().Call(Id("a0").Op("&").Lit(0xff))))

	f.Func().Id("main").Params().Block(body...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
