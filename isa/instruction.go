package isa

import (
	"fmt"
)

// Instruction is a decoded instruction of one of the three formats.
// The only implementations are RegForm, ImmForm and JumpForm.
type Instruction interface {
	Opcode() Opcode
	Format() Format
	Validate() error // Validate checks that every field fits its encoding.
	Word() Word      // Word packs the fields. Only valid for a validated instruction.
	String() string  // String returns the assembly text, in operand order.

	instruction()
}

// RegForm is a register-form instruction: `op rd rs rt`.
type RegForm struct {
	Op Opcode
	Rd Register
	Rs Register
	Rt Register
}

// ImmForm is an immediate-form instruction: `op rt rs imm`.
type ImmForm struct {
	Op  Opcode
	Rt  Register
	Rs  Register
	Imm uint16
}

// JumpForm is a jump-form instruction: `op rd imm`.
type JumpForm struct {
	Op  Opcode
	Rd  Register
	Imm uint16
}

var (
	_ Instruction = RegForm{}
	_ Instruction = ImmForm{}
	_ Instruction = JumpForm{}
)

func (RegForm) instruction()  {}
func (ImmForm) instruction()  {}
func (JumpForm) instruction() {}

func (RegForm) Format() Format  { return FORMAT_REG }
func (ImmForm) Format() Format  { return FORMAT_IMM }
func (JumpForm) Format() Format { return FORMAT_JUMP }

func (in RegForm) Opcode() Opcode  { return in.Op }
func (in ImmForm) Opcode() Opcode  { return in.Op }
func (in JumpForm) Opcode() Opcode { return in.Op }

// checkOpcode verifies the opcode is defined and of the expected format.
func checkOpcode(op Opcode, want Format) (err error) {
	format, ok := op.Format()
	if !ok {
		err = ErrUnknownOpcode(op.String())
		return
	}
	if format != want {
		err = &ErrFormat{Opcode: op, Format: want}
	}

	return
}

// checkRegisters verifies every register is addressable.
func checkRegisters(regs ...Register) (err error) {
	for _, reg := range regs {
		if !reg.Valid() {
			err = ErrUnknownRegister(reg.String())
			return
		}
	}

	return
}

// Immediate checks that value fits an unsigned field of the given width.
// Negative values are never accepted.
func Immediate(value int64, bits uint) (imm uint16, err error) {
	if value < 0 || value >= int64(1)<<bits {
		err = &ErrImmediateRange{Value: value, Bits: bits}
		return
	}

	imm = uint16(value)
	return
}

func (in RegForm) Validate() (err error) {
	err = checkOpcode(in.Op, FORMAT_REG)
	if err != nil {
		return
	}

	return checkRegisters(in.Rd, in.Rs, in.Rt)
}

func (in ImmForm) Validate() (err error) {
	err = checkOpcode(in.Op, FORMAT_IMM)
	if err != nil {
		return
	}
	err = checkRegisters(in.Rt, in.Rs)
	if err != nil {
		return
	}

	_, err = Immediate(int64(in.Imm), IMM6_BITS)
	return
}

func (in JumpForm) Validate() (err error) {
	err = checkOpcode(in.Op, FORMAT_JUMP)
	if err != nil {
		return
	}
	err = checkRegisters(in.Rd)
	if err != nil {
		return
	}

	_, err = Immediate(int64(in.Imm), IMM9_BITS)
	return
}

func (in RegForm) Word() Word {
	return Word((uint16(in.Op)&OPCODE_MASK)<<OPCODE_SHIFT |
		(uint16(in.Rs)&REG_MASK)<<9 |
		(uint16(in.Rt)&REG_MASK)<<6 |
		(uint16(in.Rd)&REG_MASK)<<3)
}

func (in ImmForm) Word() Word {
	return Word((uint16(in.Op)&OPCODE_MASK)<<OPCODE_SHIFT |
		(uint16(in.Rt)&REG_MASK)<<9 |
		(uint16(in.Rs)&REG_MASK)<<6 |
		(in.Imm & ((1 << IMM6_BITS) - 1)))
}

func (in JumpForm) Word() Word {
	return Word((uint16(in.Op)&OPCODE_MASK)<<OPCODE_SHIFT |
		(uint16(in.Rd)&REG_MASK)<<9 |
		(in.Imm & ((1 << IMM9_BITS) - 1)))
}

func (in RegForm) String() string {
	return fmt.Sprintf("%v %v %v %v", in.Op, in.Rd, in.Rs, in.Rt)
}

func (in ImmForm) String() string {
	return fmt.Sprintf("%v %v %v %d", in.Op, in.Rt, in.Rs, in.Imm)
}

func (in JumpForm) String() string {
	return fmt.Sprintf("%v %v %d", in.Op, in.Rd, in.Imm)
}

// MakeReg creates a register-form instruction.
func MakeReg(op Opcode, rd, rs, rt Register) (in RegForm, err error) {
	in = RegForm{Op: op, Rd: rd, Rs: rs, Rt: rt}
	err = in.Validate()
	return
}

// MakeImm creates an immediate-form instruction, range checking imm.
func MakeImm(op Opcode, rt, rs Register, imm int64) (in ImmForm, err error) {
	value, err := Immediate(imm, IMM6_BITS)
	if err != nil {
		return
	}

	in = ImmForm{Op: op, Rt: rt, Rs: rs, Imm: value}
	err = in.Validate()
	return
}

// MakeJump creates a jump-form instruction, range checking imm.
func MakeJump(op Opcode, rd Register, imm int64) (in JumpForm, err error) {
	value, err := Immediate(imm, IMM9_BITS)
	if err != nil {
		return
	}

	in = JumpForm{Op: op, Rd: rd, Imm: value}
	err = in.Validate()
	return
}

// Encode validates an instruction and returns its word.
func Encode(in Instruction) (w Word, err error) {
	err = in.Validate()
	if err != nil {
		return
	}

	w = in.Word()
	return
}

// Decode returns the instruction encoded by a word.
func Decode(w Word) (in Instruction, err error) {
	op := w.Opcode()
	format, ok := op.Format()
	if !ok {
		err = ErrUnknownOpcode(op.String())
		return
	}

	switch format {
	case FORMAT_REG:
		if w&RESERVED != 0 {
			err = ErrReservedBits
			return
		}
		in = RegForm{Op: op, Rs: w.field(9), Rt: w.field(6), Rd: w.field(3)}
	case FORMAT_IMM:
		in = ImmForm{Op: op, Rt: w.field(9), Rs: w.field(6), Imm: uint16(w) & ((1 << IMM6_BITS) - 1)}
	case FORMAT_JUMP:
		in = JumpForm{Op: op, Rd: w.field(9), Imm: uint16(w) & ((1 << IMM9_BITS) - 1)}
	}

	return
}
