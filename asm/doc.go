// Package asm implements the VM-11 line assembler.
//
// Each source line holds one instruction: a mnemonic followed by one or two
// operands, optionally separated by commas. A line is parsed into an
// Instruction, whose addressing mode is derived from the operand kinds, and
// then serialized into a fixed 4-byte Word:
//
//	Byte 0: [ opcode:6 ][ mode:2 ]
//	Byte 1: [ reserved:8 = 0 ]
//	Byte 2: [ source field:8 ]
//	Byte 3: [ destination field:8 ]
//
// The Assembler drives a whole source stream through the line encoder and
// collects the words into a Program, stopping at the first invalid line.
package asm
