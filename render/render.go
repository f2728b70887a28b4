// Package render writes assembled programs as memory initialization text
// for hardware simulators.
//
// Instruction n occupies the byte cells 2n (low byte) and 2n+1 (high byte)
// of the program memory.
package render

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/ezrec/rissy/asm"
	"github.com/ezrec/rissy/internal"
)

// DEFAULT_MEMORY is the program memory array name of the Rissy core.
const DEFAULT_MEMORY = "prog_mem"

// Format is a memory initialization syntax.
type Format interface {
	Header() iter.Seq[string]  // Lines written before the program.
	Line(line asm.Line) string // Line renders a single instruction.
}

// Verilog renders Verilog initial block assignments:
//
//	{prog_mem[1], prog_mem[0]} = 16'h4A40; // LW R5 R1 0
type Verilog struct {
	Memory string // Memory array name. Empty means DEFAULT_MEMORY.
}

func (v Verilog) memory() string {
	if len(v.Memory) == 0 {
		return DEFAULT_MEMORY
	}
	return v.Memory
}

func (v Verilog) Header() iter.Seq[string] {
	return slices.Values([]string{
		"// Rissy Processor Program Memory Initialization",
		"// Generated by Rissy Assembler",
		"//",
	})
}

func (v Verilog) Line(line asm.Line) string {
	low, high := line.Cells()
	mem := v.memory()
	return fmt.Sprintf("{%v[%d], %v[%d]} = 16'h%v; // %v", mem, high, mem, low, line.Word.Hex(), line.Record)
}

// MemH renders a byte wide $readmemh image. Each instruction starts with
// its cell address, so failed or missing instructions leave no shift.
//
//	@0 40 4A // LW R5 R1 0
type MemH struct{}

func (MemH) Header() iter.Seq[string] {
	return slices.Values([]string{
		"// Rissy Processor Program Memory Image",
	})
}

func (MemH) Line(line asm.Line) string {
	low, _ := line.Cells()
	return fmt.Sprintf("@%X %02X %02X // %v", low, uint8(line.Word), uint8(line.Word>>8), line.Record)
}

// Lookup returns the format with the given name.
func Lookup(name string) (format Format, err error) {
	switch name {
	case "verilog":
		format = Verilog{}
	case "memh":
		format = MemH{}
	default:
		err = ErrFormatUnknown(name)
	}

	return
}

// Write renders the program, in position order, to w.
func Write(w io.Writer, format Format, prog *asm.Program) (err error) {
	out := bufio.NewWriter(w)

	body := internal.IterSeqMap(slices.Values(prog.Lines), format.Line)
	for text := range internal.IterSeqConcat(format.Header(), body) {
		_, err = fmt.Fprintln(out, text)
		if err != nil {
			return
		}
	}

	return out.Flush()
}
