// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
	"strconv"
)

// Field layout of an instruction word.
const (
	WORD_BITS    = 16
	OPCODE_SHIFT = 12
	OPCODE_MASK  = 0xf
	REG_MASK     = 0x7
	RESERVED     = 0x7 // Unused low bits of a register-form word.

	IMM6_BITS = 6 // Immediate-form immediate width.
	IMM9_BITS = 9 // Jump-form immediate width.
)

// Register is a 3-bit register address.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_R0 = Register(0) // R0
	REG_R1 = Register(1) // R1
	REG_R2 = Register(2) // R2
	REG_R3 = Register(3) // R3
	REG_R4 = Register(4) // R4
	REG_R5 = Register(5) // R5
	REG_R6 = Register(6) // R6
	REG_R7 = Register(7) // R7
)

// REG_PC is the program counter by convention. It has no special encoding.
const REG_PC = REG_R7

// Valid returns true if the register is addressable.
func (reg Register) Valid() bool {
	return reg >= REG_R0 && reg <= REG_R7
}

// ParseRegister returns the register with the given name.
func ParseRegister(name string) (reg Register, err error) {
	for reg = REG_R0; reg <= REG_R7; reg++ {
		if reg.String() == name {
			return
		}
	}

	reg = REG_R0
	err = ErrUnknownRegister(name)
	return
}

// Opcode is a 4-bit operation code. Its value is the encoded field.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD = Opcode(0x0) // ADD
	OP_NDA = Opcode(0x2) // NDA
	OP_LW  = Opcode(0x4) // LW
	OP_SW  = Opcode(0x5) // SW
	OP_JAL = Opcode(0x8) // JAL
	OP_BEQ = Opcode(0xc) // BEQ
)

// Opcodes lists every defined opcode, in encoding order.
func Opcodes() []Opcode {
	return []Opcode{OP_ADD, OP_NDA, OP_LW, OP_SW, OP_JAL, OP_BEQ}
}

// ParseOpcode returns the opcode for a mnemonic.
func ParseOpcode(mnemonic string) (op Opcode, err error) {
	switch mnemonic {
	case "ADD":
		op = OP_ADD
	case "NDA":
		op = OP_NDA
	case "LW":
		op = OP_LW
	case "SW":
		op = OP_SW
	case "BEQ":
		op = OP_BEQ
	case "JAL":
		op = OP_JAL
	default:
		err = ErrUnknownOpcode(mnemonic)
	}

	return
}

// Format is an instruction word layout.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_REG  = Format(0) // register
	FORMAT_IMM  = Format(1) // immediate
	FORMAT_JUMP = Format(2) // jump
)

// Operands returns the number of textual operands of the format.
func (form Format) Operands() int {
	switch form {
	case FORMAT_REG, FORMAT_IMM:
		return 3
	case FORMAT_JUMP:
		return 2
	}

	return 0
}

// ImmediateBits returns the width of the immediate field, or 0 if the
// format has none.
func (form Format) ImmediateBits() uint {
	switch form {
	case FORMAT_IMM:
		return IMM6_BITS
	case FORMAT_JUMP:
		return IMM9_BITS
	}

	return 0
}

// Format returns the layout used by the opcode. ok is false for an
// undefined opcode.
func (op Opcode) Format() (format Format, ok bool) {
	ok = true

	switch op {
	case OP_ADD, OP_NDA:
		format = FORMAT_REG
	case OP_LW, OP_SW, OP_BEQ:
		format = FORMAT_IMM
	case OP_JAL:
		format = FORMAT_JUMP
	default:
		ok = false
	}

	return
}

// Word is a single encoded instruction.
type Word uint16

// Opcode returns the opcode field of the word.
func (w Word) Opcode() Opcode {
	return Opcode((w >> OPCODE_SHIFT) & OPCODE_MASK)
}

// field extracts a register field at the given shift.
func (w Word) field(shift uint) Register {
	return Register((w >> shift) & REG_MASK)
}

// Hex returns the word as exactly four upper case hex digits.
func (w Word) Hex() string {
	return fmt.Sprintf("%04X", uint16(w))
}

// String implements fmt.Stringer.
func (w Word) String() string {
	return w.Hex()
}

// ParseHex is the inverse of Word.Hex(). One to four hex digits are
// accepted, without prefix or sign.
func ParseHex(text string) (w Word, err error) {
	if len(text) == 0 || len(text) > WORD_BITS/4 {
		err = ErrParseHex(text)
		return
	}

	v64, err := strconv.ParseUint(text, 16, WORD_BITS)
	if err != nil {
		err = ErrParseHex(text)
		return
	}

	w = Word(v64)
	return
}
