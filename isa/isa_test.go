package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupOpcode(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name string
		op   Opcode
	}{
		{"MOV", 0b000001},
		{"ADD", 0b000010},
		{"SUB", 0b000011},
		{"MUL", 0b000100},
		{"CMP", 0b000101},
		{"PUSH", 0b000110},
		{"POP", 0b000111},
		{"JMP", 0b001000},
		{"BE", 0b001001},
		{"BNE", 0b001010},
		{"PRINT", 0b001011},
	}

	for _, entry := range table {
		op, ok := LookupOpcode(entry.name)
		assert.True(ok, entry.name)
		assert.Equal(entry.op, op, entry.name)
		assert.True(op.Valid(), entry.name)
		assert.Equal(entry.name, op.String())
	}

	for _, name := range []string{"", "mov", "Mov", "XOR", "NOP", "MOV "} {
		_, ok := LookupOpcode(name)
		assert.False(ok, name)
	}
}

func TestLookupRegister(t *testing.T) {
	assert := assert.New(t)

	names := []string{"R0", "R1", "R2", "PC", "SP", "BP", "ZF", "CF", "OF"}
	for n, name := range names {
		reg, ok := LookupRegister(name)
		assert.True(ok, name)
		assert.Equal(Register(n+1), reg, name)
		assert.NotEqual(REG_NONE, reg, name)
		assert.Equal(name, reg.String())
	}

	for _, name := range []string{"", "r0", "R3", "IP", "none", "5"} {
		reg, ok := LookupRegister(name)
		assert.False(ok, name)
		assert.Equal(REG_NONE, reg, name)
	}
}

func TestTables(t *testing.T) {
	assert := assert.New(t)

	seen := map[Opcode]string{}
	for name, op := range Mnemonics() {
		assert.True(op.Valid(), name)
		assert.NotContains(seen, op, name)
		seen[op] = name
	}
	assert.Equal(11, len(seen))

	codes := map[Register]string{}
	for name, reg := range Registers() {
		assert.NotEqual(REG_NONE, reg, name)
		assert.NotContains(codes, reg, name)
		codes[reg] = name
	}
	assert.Equal(9, len(codes))
}

func TestMode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, MODE_BOTH_REG.Operands())
	assert.Equal(2, MODE_BOTH_IMM.Operands())
	assert.Equal(1, MODE_ONE_REG.Operands())
	assert.Equal(1, MODE_ONE_IMM.Operands())

	assert.True(MODE_BOTH_REG.SourceRegister())
	assert.False(MODE_BOTH_IMM.SourceRegister())
	assert.False(MODE_ONE_REG.SourceRegister())
	assert.False(MODE_ONE_IMM.SourceRegister())

	assert.True(MODE_BOTH_REG.DestinationRegister())
	assert.True(MODE_BOTH_IMM.DestinationRegister())
	assert.True(MODE_ONE_REG.DestinationRegister())
	assert.False(MODE_ONE_IMM.DestinationRegister())

	for mode := range Mode(4) {
		assert.Equal(mode, mode&MODE_MASK)
	}

	assert.Equal("bothReg", MODE_BOTH_REG.String())
	assert.Equal("oneImm", MODE_ONE_IMM.String())
	assert.Equal("Mode(4)", Mode(4).String())
}

func TestOpcodeValid(t *testing.T) {
	assert := assert.New(t)

	assert.True(Opcode(0).Valid())
	assert.True(Opcode(63).Valid())
	assert.False(Opcode(64).Valid())
	assert.False(Opcode(0xff).Valid())
	assert.Equal("Opcode(0)", Opcode(0).String())
	assert.Equal("Opcode(12)", Opcode(12).String())
}
