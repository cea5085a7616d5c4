// Package sim executes generated RV64 code without an assembler.
//
// Only the instructions the code generator emits are understood. Memory is a
// single descending stack; sp starts one past its top.
package sim

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/pontaoski/exprc/codegen"
)

var (
	ErrStackOverflow  = errors.New("sim: stack overflow")
	ErrStackUnderflow = errors.New("sim: stack underflow")
	ErrMisaligned     = errors.New("sim: misaligned access")
	ErrUnknownOpcode  = errors.New("sim: unknown opcode")
	ErrUnknownReg     = errors.New("sim: unknown register")
)

const DefaultStackSize = 64 * 1024

type Machine struct {
	regs  map[codegen.Register]int64
	stack []byte
}

func NewMachine(stackSize int) *Machine {
	return &Machine{
		regs: map[codegen.Register]int64{
			codegen.A0: 0,
			codegen.A1: 0,
			codegen.SP: int64(stackSize),
		},
		stack: make([]byte, stackSize),
	}
}

func (m *Machine) Reg(r codegen.Register) int64 {
	return m.regs[r]
}

// ExitCode is what a shell would see after main returned a0.
func (m *Machine) ExitCode() int {
	return int(uint8(m.regs[codegen.A0]))
}

func (m *Machine) set(r codegen.Register, v int64) error {
	if _, ok := m.regs[r]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownReg, r)
	}
	m.regs[r] = v
	return nil
}

func (m *Machine) get(r codegen.Register) (int64, error) {
	v, ok := m.regs[r]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownReg, r)
	}
	return v, nil
}

func (m *Machine) addr(base codegen.Register, off int64) (int64, error) {
	b, err := m.get(base)
	if err != nil {
		return 0, err
	}
	a := b + off
	switch {
	case a%8 != 0:
		return 0, fmt.Errorf("%w at %d", ErrMisaligned, a)
	case a < 0:
		return 0, ErrStackOverflow
	case a+8 > int64(len(m.stack)):
		return 0, ErrStackUnderflow
	}
	return a, nil
}

// div follows the RISC-V M extension: no traps, x/0 is -1 and the one
// overflowing quotient wraps.
func div(x, y int64) int64 {
	switch {
	case y == 0:
		return -1
	case x == math.MinInt64 && y == -1:
		return math.MinInt64
	}
	return x / y
}

func (m *Machine) arith(insn codegen.Instruction) error {
	x, err := m.get(insn.Rs1)
	if err != nil {
		return err
	}
	y, err := m.get(insn.Rs2)
	if err != nil {
		return err
	}

	var r int64
	switch insn.Op {
	case codegen.OpAdd:
		r = x + y
	case codegen.OpSub:
		r = x - y
	case codegen.OpMul:
		r = x * y
	case codegen.OpDiv:
		r = div(x, y)
	}
	return m.set(insn.Rd, r)
}

func (m *Machine) Step(insn codegen.Instruction) error {
	if insn.Op.IsArithmetic() {
		return m.arith(insn)
	}

	switch insn.Op {
	case codegen.OpLi:
		return m.set(insn.Rd, insn.Imm)
	case codegen.OpAddi:
		v, err := m.get(insn.Rs1)
		if err != nil {
			return err
		}
		return m.set(insn.Rd, v+insn.Imm)
	case codegen.OpSd:
		a, err := m.addr(insn.Rs1, insn.Imm)
		if err != nil {
			return err
		}
		v, err := m.get(insn.Rs2)
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint64(m.stack[a:], uint64(v))
		return nil
	case codegen.OpLd:
		a, err := m.addr(insn.Rs1, insn.Imm)
		if err != nil {
			return err
		}
		return m.set(insn.Rd, int64(binary.LittleEndian.Uint64(m.stack[a:])))
	}

	return fmt.Errorf("%w %d", ErrUnknownOpcode, insn.Op)
}

func (m *Machine) Exec(insns []codegen.Instruction) error {
	for i, insn := range insns {
		if err := m.Step(insn); err != nil {
			return fmt.Errorf("instruction %d (%s): %w", i, insn, err)
		}
	}
	return nil
}

// Run executes p on a fresh machine and returns a0.
func Run(p *codegen.Program) (int64, error) {
	m := NewMachine(DefaultStackSize)
	if err := m.Exec(p.Instructions); err != nil {
		return 0, err
	}
	return m.Reg(codegen.A0), nil
}
