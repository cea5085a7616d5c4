package codegen

import "fmt"

type Register string

const (
	A0 Register = "a0"
	A1 Register = "a1"
	SP Register = "sp"
)

type Opcode int

const (
	OpLi Opcode = iota
	OpAddi
	OpSd
	OpLd
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (o Opcode) String() string {
	data := map[Opcode]string{
		OpLi:   "li",
		OpAddi: "addi",
		OpSd:   "sd",
		OpLd:   "ld",
		OpAdd:  "add",
		OpSub:  "sub",
		OpMul:  "mul",
		OpDiv:  "div",
	}
	return data[o]
}

// IsArithmetic reports whether o combines two registers.
func (o Opcode) IsArithmetic() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// Instruction is one RV64 instruction. Which of the operand fields are used
// depends on Op:
//
//	li   Rd, Imm
//	addi Rd, Rs1, Imm
//	sd   Rs2, Imm(Rs1)
//	ld   Rd, Imm(Rs1)
//	op   Rd, Rs1, Rs2
type Instruction struct {
	Op  Opcode
	Rd  Register
	Rs1 Register
	Rs2 Register
	Imm int64
}

func (i Instruction) String() string {
	switch i.Op {
	case OpLi:
		return fmt.Sprintf("li %s, %d", i.Rd, i.Imm)
	case OpAddi:
		return fmt.Sprintf("addi %s, %s, %d", i.Rd, i.Rs1, i.Imm)
	case OpSd:
		return fmt.Sprintf("sd %s, %d(%s)", i.Rs2, i.Imm, i.Rs1)
	case OpLd:
		return fmt.Sprintf("ld %s, %d(%s)", i.Rd, i.Imm, i.Rs1)
	case OpAdd, OpSub, OpMul, OpDiv:
		return fmt.Sprintf("%s %s, %s, %s", i.Op, i.Rd, i.Rs1, i.Rs2)
	}
	return fmt.Sprintf("unknown(%d)", int(i.Op))
}
