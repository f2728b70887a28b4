package asm

import (
	"context"
	"encoding/binary"
	"errors"
	"iter"

	"github.com/ezrec/rissy/isa"
)

// Line is one encoded instruction of a program.
type Line struct {
	Index  int    // Position in the program.
	LineNo int    // Source line number, or 0.
	Record Record // Instruction as given.
	Word   isa.Word
}

// Cells returns the two memory cells holding the instruction word.
// low holds the least significant byte.
func (line Line) Cells() (low, high int) {
	low = line.Index * 2
	high = low + 1
	return
}

// Program is an assembled instruction listing, in input order.
type Program struct {
	Lines []Line
}

// Words iterates over the program's words by position.
func (prog *Program) Words() iter.Seq2[int, isa.Word] {
	return func(yield func(index int, w isa.Word) bool) {
		for _, line := range prog.Lines {
			if !yield(line.Index, line.Word) {
				return
			}
		}
	}
}

// Binary returns the byte image of the program memory, least
// significant byte of each word first.
func (prog *Program) Binary() (bins []byte) {
	if len(prog.Lines) == 0 {
		return
	}

	last := prog.Lines[len(prog.Lines)-1]
	bins = make([]byte, 2*(last.Index+1))
	for index, w := range prog.Words() {
		binary.LittleEndian.PutUint16(bins[index*2:], uint16(w))
	}

	return
}

// pending is an instruction waiting to be encoded. A pending instruction
// with Err set failed before encoding, but still holds its position.
type pending struct {
	LineNo int
	Record Record
	Err    error
}

// assemble encodes the pending instructions into a program. Failing
// instructions are left out of the program and reported in errs.
func assemble(ctx context.Context, todo []pending) (prog *Program, errs []error, err error) {
	var records []Record
	var slots []int
	for n, item := range todo {
		if item.Err == nil {
			records = append(records, item.Record)
			slots = append(slots, n)
		}
	}

	words, rec_errs, err := encodeAll(ctx, records)
	if err != nil {
		return
	}

	for n, slot := range slots {
		todo[slot].Err = rec_errs[n]
	}

	prog = &Program{}
	word := 0
	for n, item := range todo {
		if item.Err != nil {
			errs = append(errs, &ErrSyntax{Index: n, LineNo: item.LineNo, Line: item.Record.String(), Err: item.Err})
		} else {
			prog.Lines = append(prog.Lines, Line{Index: n, LineNo: item.LineNo, Record: item.Record, Word: words[word]})
		}
		if word < len(slots) && slots[word] == n {
			word++
		}
	}

	return
}

// Assemble encodes a program given as records. Every failing record is
// reported as an *ErrSyntax joined into err, and left out of the program;
// the other records keep their positions.
func Assemble(ctx context.Context, records ...Record) (prog *Program, err error) {
	todo := make([]pending, len(records))
	for n, rec := range records {
		todo[n].Record = rec
	}

	prog, errs, err := assemble(ctx, todo)
	if err != nil {
		return
	}

	err = errors.Join(errs...)
	return
}
