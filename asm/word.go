package asm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/lunixbochs/struc"

	"github.com/ezrec/vmasm/isa"
)

// WORD_SIZE is the size in bytes of every encoded instruction.
const WORD_SIZE = 4

// Word is an encoded instruction.
type Word [WORD_SIZE]byte

// wordLayout is the binary layout of a Word.
type wordLayout struct {
	Control     uint8 // opcode << 2 | mode
	Reserved    uint8
	Source      uint8
	Destination uint8
}

// pack serializes the layout into a Word.
func (layout *wordLayout) pack() (word Word, err error) {
	buf := bytes.NewBuffer(make([]byte, 0, WORD_SIZE))
	err = struc.PackWithOrder(buf, layout, binary.BigEndian)
	if err != nil {
		return
	}

	copy(word[:], buf.Bytes())
	return
}

// ReadWord reads the next encoded instruction from a binary stream.
func ReadWord(r io.Reader) (word Word, err error) {
	var layout wordLayout
	err = struc.UnpackWithOrder(r, &layout, binary.BigEndian)
	if err != nil {
		return
	}

	return layout.pack()
}

// Opcode returns the opcode field of the word.
func (word Word) Opcode() isa.Opcode {
	return isa.Opcode(word[0] >> 2)
}

// Mode returns the addressing mode field of the word.
func (word Word) Mode() isa.Mode {
	return isa.Mode(word[0] & isa.MODE_MASK)
}

// Reserved returns the reserved byte, which is always zero for a valid word.
func (word Word) Reserved() uint8 {
	return word[1]
}

// Source returns the source field of the word.
func (word Word) Source() uint8 {
	return word[2]
}

// Destination returns the destination field of the word.
func (word Word) Destination() uint8 {
	return word[3]
}

func (word Word) String() string {
	return fmt.Sprintf("% X", word[:])
}
