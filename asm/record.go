package asm

import (
	"strings"
	"unicode"
)

// Record is a single tokenized instruction.
type Record struct {
	Mnemonic string   // Opcode mnemonic, ie "ADD".
	Operands []string // Operands in textual order.
	Text     string   // Instruction as written, if known.
}

// NewRecord creates a record from its tokens.
func NewRecord(mnemonic string, operands ...string) Record {
	return Record{Mnemonic: mnemonic, Operands: operands}
}

// ParseRecord tokenizes one instruction. Operands are separated by white
// space and/or commas, so "ADD R3 R5 R1" and "ADD R3, R5, R1" are the same.
func ParseRecord(text string) (rec Record, err error) {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(words) == 0 {
		err = ErrRecordEmpty
		return
	}

	rec = Record{
		Mnemonic: words[0],
		Operands: words[1:],
		Text:     strings.TrimSpace(text),
	}

	return
}

// String returns the instruction text.
func (rec Record) String() string {
	if len(rec.Text) != 0 {
		return rec.Text
	}

	return strings.Join(append([]string{rec.Mnemonic}, rec.Operands...), " ")
}
