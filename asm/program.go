package asm

import (
	"io"
	"iter"

	"github.com/pkg/errors"
)

// Statement is a line of source text and its encoded instruction.
type Statement struct {
	LineNo      int      // Source line number, starting at 1.
	Words       []string // Mnemonic and operand words, after expansion.
	Instruction Instruction
	Word        Word
}

// Program is an assembled instruction stream, in source order.
type Program struct {
	Statements []Statement
}

// Lookup returns the statement that encoded the byte at offset in the
// binary, or nil if offset is outside the program.
func (prog *Program) Lookup(offset int) *Statement {
	n := offset / WORD_SIZE
	if offset < 0 || n >= len(prog.Statements) {
		return nil
	}

	return &prog.Statements[n]
}

// Words returns an iterator over the byte offset and word of each instruction.
func (prog *Program) Words() iter.Seq2[int, Word] {
	return func(yield func(offset int, word Word) bool) {
		for n, stmt := range prog.Statements {
			if !yield(n*WORD_SIZE, stmt.Word) {
				return
			}
		}
	}
}

// Binary returns the concatenated instruction words.
func (prog *Program) Binary() (bin []byte) {
	bin = make([]byte, 0, len(prog.Statements)*WORD_SIZE)
	for _, word := range prog.Words() {
		bin = append(bin, word[:]...)
	}

	return
}

// WriteTo writes the binary form of the program to w.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	for offset, word := range prog.Words() {
		var wrote int
		wrote, err = w.Write(word[:])
		n += int64(wrote)
		if err != nil {
			err = errors.Wrap(err, f("write at offset %d", offset))
			return
		}
	}

	return
}
