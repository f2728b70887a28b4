// Package isa implements the instruction set of the Rissy 16-bit processor.
//
// Rissy has eight 3-bit addressed registers (R0-R7, with R7 used as the
// program counter by convention) and six opcodes in three fixed formats:
//
//	register:  [opcode:4][rs:3][rt:3][rd:3][000]   ADD, NDA
//	immediate: [opcode:4][rt:3][rs:3][imm:6]       LW, SW, BEQ
//	jump:      [opcode:4][rd:3][imm:9]             JAL
//
// Immediates are unsigned. Each format is a distinct Instruction type, and
// encoding an instruction is a pure function of its fields.
package isa
