package isa

import (
	"errors"

	"github.com/ezrec/rissy/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrReservedBits = errors.New(f("reserved bits set"))
)

// ErrUnknownOpcode is a mnemonic, or decoded opcode field, that is not
// part of the instruction set.
type ErrUnknownOpcode string

func (err ErrUnknownOpcode) Error() string {
	return f("opcode '%v' unknown", string(err))
}

// ErrUnknownRegister is an operand that does not name R0 through R7.
type ErrUnknownRegister string

func (err ErrUnknownRegister) Error() string {
	return f("register '%v' unknown", string(err))
}

// ErrOperandCount is a mismatch between the operands given and the
// operands required by the opcode's format.
type ErrOperandCount struct {
	Opcode Opcode
	Want   int
	Have   int
}

func (err *ErrOperandCount) Error() string {
	return f("%v takes %d operands, have %d", err.Opcode.String(), err.Want, err.Have)
}

// ErrImmediateRange is an immediate that does not fit its unsigned field.
type ErrImmediateRange struct {
	Value int64
	Bits  uint
}

func (err *ErrImmediateRange) Error() string {
	return f("immediate %d out of range 0..%d", err.Value, (int64(1)<<err.Bits)-1)
}

// ErrFormat is an instruction built with an opcode of another format.
type ErrFormat struct {
	Opcode Opcode
	Format Format
}

func (err *ErrFormat) Error() string {
	return f("%v is not a %v format opcode", err.Opcode.String(), err.Format.String())
}

// ErrParseNumber is an immediate operand that is not decimal text.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseHex is text that is not a hex encoded word.
type ErrParseHex string

func (err ErrParseHex) Error() string {
	return f("'%v' is not a hex word", string(err))
}
