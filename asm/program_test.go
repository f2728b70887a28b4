package asm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rissy/isa"
)

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	var records []Record
	for _, text := range testProgram {
		rec, err := ParseRecord(text)
		assert.NoError(err)
		records = append(records, rec)
	}

	prog, err := Assemble(context.Background(), records...)
	assert.NoError(err)
	assert.Len(prog.Lines, 7)

	for n, line := range prog.Lines {
		low, high := line.Cells()
		assert.Equal(2*n, low)
		assert.Equal(2*n+1, high)
	}

	var indexes []int
	var words []isa.Word
	for index, w := range prog.Words() {
		indexes = append(indexes, index)
		words = append(words, w)
	}
	assert.Equal([]int{0, 1, 2, 3, 4, 5, 6}, indexes)
	assert.Equal([]isa.Word{0x4a40, 0x0a58, 0x5601, 0x4601, 0x0658, 0x0618, 0x820c}, words)

	assert.Equal([]byte{
		0x40, 0x4a, 0x58, 0x0a, 0x01, 0x56, 0x01, 0x46,
		0x58, 0x06, 0x18, 0x06, 0x0c, 0x82,
	}, prog.Binary())
}

func TestAssembleGaps(t *testing.T) {
	assert := assert.New(t)

	prog, err := Assemble(context.Background(),
		NewRecord("JAL", "R1", "12"),
		NewRecord("NOP"),
		NewRecord("JAL", "R2", "1"),
	)
	assert.ErrorIs(err, isa.ErrUnknownOpcode("NOP"))
	assert.Len(prog.Lines, 2)
	assert.Equal(2, prog.Lines[1].Index)

	// The failed instruction's cells are left zero.
	assert.Equal([]byte{0x0c, 0x82, 0x00, 0x00, 0x01, 0x84}, prog.Binary())

	empty := &Program{}
	assert.Nil(empty.Binary())
}
