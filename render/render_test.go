package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rissy/asm"
)

var testProgram = []string{
	"LW R5 R1 0",
	"ADD R3 R5 R1",
	"SW R3 R0 1",
	"LW R3 R0 1",
	"ADD R3 R3 R1",
	"ADD R3 R3 R0",
	"JAL R1 12",
}

func assembleTest(t *testing.T) *asm.Program {
	assembler := &asm.Assembler{}
	prog, err := assembler.Parse(strings.NewReader(strings.Join(testProgram, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestVerilog(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	err := Write(buff, Verilog{}, assembleTest(t))
	assert.NoError(err)

	expected := []string{
		"// Rissy Processor Program Memory Initialization",
		"// Generated by Rissy Assembler",
		"//",
		"{prog_mem[1], prog_mem[0]} = 16'h4A40; // LW R5 R1 0",
		"{prog_mem[3], prog_mem[2]} = 16'h0A58; // ADD R3 R5 R1",
		"{prog_mem[5], prog_mem[4]} = 16'h5601; // SW R3 R0 1",
		"{prog_mem[7], prog_mem[6]} = 16'h4601; // LW R3 R0 1",
		"{prog_mem[9], prog_mem[8]} = 16'h0658; // ADD R3 R3 R1",
		"{prog_mem[11], prog_mem[10]} = 16'h0618; // ADD R3 R3 R0",
		"{prog_mem[13], prog_mem[12]} = 16'h820C; // JAL R1 12",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), buff.String())
}

func TestVerilogMemory(t *testing.T) {
	assert := assert.New(t)

	prog, err := asm.Assemble(context.Background(), asm.NewRecord("JAL", "R1", "12"))
	assert.NoError(err)

	format := Verilog{Memory: "mem"}
	assert.Equal("{mem[1], mem[0]} = 16'h820C; // JAL R1 12", format.Line(prog.Lines[0]))
}

func TestMemH(t *testing.T) {
	assert := assert.New(t)

	buff := &bytes.Buffer{}
	err := Write(buff, MemH{}, assembleTest(t))
	assert.NoError(err)

	lines := strings.Split(strings.TrimSpace(buff.String()), "\n")
	assert.Len(lines, 8)
	assert.Equal("@0 40 4A // LW R5 R1 0", lines[1])
	assert.Equal("@C 0C 82 // JAL R1 12", lines[7])
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	format, err := Lookup("verilog")
	assert.NoError(err)
	assert.Equal(Verilog{}, format)

	format, err = Lookup("memh")
	assert.NoError(err)
	assert.Equal(MemH{}, format)

	_, err = Lookup("ihex")
	assert.Equal(ErrFormatUnknown("ihex"), err)
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestWriteError(t *testing.T) {
	assert := assert.New(t)

	err := Write(failWriter{}, Verilog{}, assembleTest(t))
	assert.ErrorIs(err, errWrite)
}
