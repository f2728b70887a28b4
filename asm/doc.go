// Package asm assembles Rissy instruction records into machine words.
//
// A Record is one tokenized instruction: a mnemonic and its operand text.
// Encode resolves a record against the isa tables and packs it; EncodeAll
// does so for a batch in parallel, keeping input order.
//
// The Assembler reads line oriented source text. Comments start with ';'
// or '#'. A $(...) anywhere in a line is a compile-time integer expression,
// evaluated before the line is tokenized.
package asm
