package isa

import (
	"iter"
	"maps"
)

// Opcode is a 6-bit instruction code.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_MOV   = Opcode(0b000001) // MOV
	OP_ADD   = Opcode(0b000010) // ADD
	OP_SUB   = Opcode(0b000011) // SUB
	OP_MUL   = Opcode(0b000100) // MUL
	OP_CMP   = Opcode(0b000101) // CMP
	OP_PUSH  = Opcode(0b000110) // PUSH
	OP_POP   = Opcode(0b000111) // POP
	OP_JMP   = Opcode(0b001000) // JMP
	OP_BE    = Opcode(0b001001) // BE
	OP_BNE   = Opcode(0b001010) // BNE
	OP_PRINT = Opcode(0b001011) // PRINT
)

// OPCODE_MASK is the mask of the bits an opcode may occupy.
const OPCODE_MASK = 0x3f

// Valid returns true if the opcode fits in its 6-bit field.
func (op Opcode) Valid() bool {
	return op&^OPCODE_MASK == 0
}

// Register is an 8-bit register code.
type Register uint8

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_NONE = Register(0) // none
	REG_R0   = Register(1) // R0
	REG_R1   = Register(2) // R1
	REG_R2   = Register(3) // R2
	REG_PC   = Register(4) // PC
	REG_SP   = Register(5) // SP
	REG_BP   = Register(6) // BP
	REG_ZF   = Register(7) // ZF
	REG_CF   = Register(8) // CF
	REG_OF   = Register(9) // OF
)

// Mode is the 2-bit addressing mode of an instruction.
type Mode uint8

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_BOTH_REG = Mode(0b00) // bothReg
	MODE_BOTH_IMM = Mode(0b01) // bothImm
	MODE_ONE_REG  = Mode(0b10) // oneReg
	MODE_ONE_IMM  = Mode(0b11) // oneImm
)

// MODE_MASK is the mask of the bits a mode may occupy.
const MODE_MASK = 0x3

// Operands returns the number of operands an instruction in this mode takes.
func (mode Mode) Operands() int {
	if mode&0b10 != 0 {
		return 1
	}
	return 2
}

// DestinationRegister returns true if the destination operand is a register.
func (mode Mode) DestinationRegister() bool {
	return mode != MODE_ONE_IMM
}

// SourceRegister returns true if the mode has a register source operand.
func (mode Mode) SourceRegister() bool {
	return mode == MODE_BOTH_REG
}

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"MOV":   OP_MOV,
	"ADD":   OP_ADD,
	"SUB":   OP_SUB,
	"MUL":   OP_MUL,
	"CMP":   OP_CMP,
	"PUSH":  OP_PUSH,
	"POP":   OP_POP,
	"JMP":   OP_JMP,
	"BE":    OP_BE,
	"BNE":   OP_BNE,
	"PRINT": OP_PRINT,
}

// registerMap maps register names to register codes.
var registerMap = map[string]Register{
	"R0": REG_R0,
	"R1": REG_R1,
	"R2": REG_R2,
	"PC": REG_PC,
	"SP": REG_SP,
	"BP": REG_BP,
	"ZF": REG_ZF,
	"CF": REG_CF,
	"OF": REG_OF,
}

// LookupOpcode returns the opcode of a mnemonic.
// Mnemonics are case sensitive.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[mnemonic]
	return
}

// LookupRegister returns the register code of a register name.
// Register names are case sensitive.
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[name]
	return
}

// Mnemonics returns an iterator over all mnemonics and their opcodes.
func Mnemonics() iter.Seq2[string, Opcode] {
	return maps.All(opcodeMap)
}

// Registers returns an iterator over all register names and their codes.
func Registers() iter.Seq2[string, Register] {
	return maps.All(registerMap)
}
