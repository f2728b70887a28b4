// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"context"
	"errors"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/rissy/isa"
)

// immediate parses decimal operand text. Values too large for int64 are
// reported as out of range, not as malformed.
func immediate(word string, bits uint) (value int64, err error) {
	value, err = strconv.ParseInt(word, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		err = isa.ErrParseNumber(word)
		return
	}

	_, err = isa.Immediate(value, bits)
	return
}

// registers parses each operand as a register name.
func registers(words ...string) (regs []isa.Register, err error) {
	regs = make([]isa.Register, len(words))
	for n, word := range words {
		regs[n], err = isa.ParseRegister(word)
		if err != nil {
			return
		}
	}

	return
}

// Resolve converts a record to an instruction of the opcode's format.
func Resolve(rec Record) (in isa.Instruction, err error) {
	op, err := isa.ParseOpcode(rec.Mnemonic)
	if err != nil {
		return
	}

	format, _ := op.Format()
	args := rec.Operands
	if len(args) != format.Operands() {
		err = &isa.ErrOperandCount{Opcode: op, Want: format.Operands(), Have: len(args)}
		return
	}

	var regs []isa.Register
	var imm int64

	switch format {
	case isa.FORMAT_REG:
		// rd rs rt
		regs, err = registers(args...)
		if err != nil {
			return
		}
		in, err = isa.MakeReg(op, regs[0], regs[1], regs[2])
	case isa.FORMAT_IMM:
		// rt rs imm
		regs, err = registers(args[:2]...)
		if err != nil {
			return
		}
		imm, err = immediate(args[2], isa.IMM6_BITS)
		if err != nil {
			return
		}
		in, err = isa.MakeImm(op, regs[0], regs[1], imm)
	case isa.FORMAT_JUMP:
		// rd imm
		regs, err = registers(args[:1]...)
		if err != nil {
			return
		}
		imm, err = immediate(args[1], isa.IMM9_BITS)
		if err != nil {
			return
		}
		in, err = isa.MakeJump(op, regs[0], imm)
	}

	return
}

// Encode returns the machine word of a single record.
func Encode(rec Record) (w isa.Word, err error) {
	in, err := Resolve(rec)
	if err != nil {
		return
	}

	return isa.Encode(in)
}

// encodeAll encodes every record on a bounded pool of workers. errs holds
// the encoding error of each record; err is only set when ctx is done.
func encodeAll(ctx context.Context, records []Record) (words []isa.Word, errs []error, err error) {
	words = make([]isa.Word, len(records))
	errs = make([]error, len(records))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for n, rec := range records {
		if ctx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			words[n], errs[n] = Encode(rec)
			return nil
		})
	}

	err = group.Wait()
	if err == nil {
		err = ctx.Err()
	}

	return
}

// EncodeAll encodes a batch of records in parallel. words[n] is the
// encoding of records[n]. Every failing record is reported as an
// *ErrSyntax, all joined into err; the words of the other records are
// still valid. If ctx is done before all records are encoded, the context
// error is returned alone.
func EncodeAll(ctx context.Context, records []Record) (words []isa.Word, err error) {
	words, errs, err := encodeAll(ctx, records)
	if err != nil {
		return nil, err
	}

	var all []error
	for n, rec_err := range errs {
		if rec_err != nil {
			all = append(all, &ErrSyntax{Index: n, Line: records[n].String(), Err: rec_err})
		}
	}

	err = errors.Join(all...)
	return
}
