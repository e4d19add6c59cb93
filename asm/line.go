// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/vmasm/isa"
)

// Operand is either a register or an 8-bit immediate value.
type Operand struct {
	Register isa.Register // Register code, REG_NONE for an immediate.
	Value    uint8        // Immediate value.
}

// IsRegister returns true for a register operand.
func (op Operand) IsRegister() bool {
	return op.Register != isa.REG_NONE
}

// Field returns the byte the operand occupies in an instruction word.
func (op Operand) Field() uint8 {
	if op.IsRegister() {
		return uint8(op.Register)
	}
	return op.Value
}

func (op Operand) String() string {
	if op.IsRegister() {
		return op.Register.String()
	}
	return strconv.Itoa(int(op.Value))
}

// Instruction is a single parsed line of assembly text.
type Instruction struct {
	Mnemonic    string
	Opcode      isa.Opcode
	Mode        isa.Mode
	Destination Operand
	Source      *Operand // nil for single operand instructions.
}

// tokenize splits a line into its mnemonic and operand words.
func tokenize(line string) (words []string) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	line = strings.ReplaceAll(line, ",", "")

	return strings.Fields(line)
}

// immediateOf parses an immediate literal.
//
// Literals are decimal unless prefixed with 0x, 0b or 0o; a leading zero
// alone does not make a literal octal.
func immediateOf(word string) (value uint8, err error) {
	sign, digits := "", word
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		sign, digits = digits[:1], digits[1:]
	}

	base := 10
	if len(digits) > 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X':
			base = 16
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		}
		if base != 10 {
			digits = digits[2:]
		}
	}

	v64, err := strconv.ParseInt(sign+digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrImmediateRange(word)
		} else {
			err = ErrParseNumber(word)
		}
		return
	}

	if v64 < 0 || v64 > 0xff {
		err = ErrImmediateRange(word)
		return
	}

	value = uint8(v64)
	return
}

// operandOf classifies a word as a register or an immediate.
func operandOf(word string) (op Operand, err error) {
	reg, ok := isa.LookupRegister(word)
	if ok {
		op.Register = reg
		return
	}

	op.Value, err = immediateOf(word)
	return
}

// parseWords builds an instruction from the words of a line.
func parseWords(words []string) (inst Instruction, err error) {
	var dst, src string

	switch len(words) {
	case 2:
		dst = words[1]
	case 3:
		dst = words[1]
		src = words[2]
	default:
		err = ErrTokenCount(len(words))
		return
	}

	_, dst_is_reg := isa.LookupRegister(dst)
	_, src_is_reg := isa.LookupRegister(src)

	switch {
	case len(words) == 2 && dst_is_reg:
		inst.Mode = isa.MODE_ONE_REG
	case len(words) == 2:
		inst.Mode = isa.MODE_ONE_IMM
	case !dst_is_reg:
		err = ErrDestination(dst)
		return
	case src_is_reg:
		inst.Mode = isa.MODE_BOTH_REG
	default:
		inst.Mode = isa.MODE_BOTH_IMM
	}

	op, ok := isa.LookupOpcode(words[0])
	if !ok {
		err = ErrMnemonic(words[0])
		return
	}
	inst.Mnemonic = words[0]
	inst.Opcode = op

	inst.Destination, err = operandOf(dst)
	if err != nil {
		return
	}

	if inst.Mode.Operands() == 2 {
		var source Operand
		source, err = operandOf(src)
		if err != nil {
			return
		}
		inst.Source = &source
	}

	return
}

// ParseLine parses a single line of assembly text into an instruction.
func ParseLine(line string) (inst Instruction, err error) {
	return parseWords(tokenize(line))
}

// Encode serializes the instruction into a Word.
//
// Byte 3 always carries the destination operand and byte 2 the source
// operand, or zero when the mode has none.
func (inst Instruction) Encode() (word Word, err error) {
	if !inst.Opcode.Valid() {
		err = ErrMnemonic(inst.Opcode.String())
		return
	}

	if inst.Mode > isa.MODE_MASK {
		err = ErrInvalidOperands
		return
	}

	if inst.Destination.IsRegister() != inst.Mode.DestinationRegister() {
		err = ErrInvalidOperands
		return
	}

	layout := wordLayout{
		Control:     uint8(inst.Opcode)<<2 | uint8(inst.Mode),
		Destination: inst.Destination.Field(),
	}

	if inst.Mode.Operands() == 2 {
		if inst.Source == nil || inst.Source.IsRegister() != inst.Mode.SourceRegister() {
			err = ErrInvalidOperands
			return
		}
		layout.Source = inst.Source.Field()
	}

	return layout.pack()
}

// EncodeLine parses and encodes a single line of assembly text.
func EncodeLine(line string) (word Word, err error) {
	inst, err := ParseLine(line)
	if err != nil {
		return
	}

	return inst.Encode()
}
