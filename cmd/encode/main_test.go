package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vmasm/asm"
)

// writeSource writes text to a fresh input file and returns it along with
// a path for the output file.
func writeSource(t *testing.T, text string) (input, output string) {
	dir := t.TempDir()
	input = filepath.Join(dir, "prog.s")
	output = filepath.Join(dir, "prog.bin")
	err := os.WriteFile(input, []byte(text), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	input, output := writeSource(t, "MOV R0, R1\nADD R0, 5\nPUSH R2\nPUSH 10\n")

	err := run([]string{input, output}, &bytes.Buffer{})
	assert.NoError(err)

	data, err := os.ReadFile(output)
	assert.NoError(err)
	assert.Equal([]byte{
		0x04, 0x00, 0x02, 0x01,
		0x09, 0x00, 0x05, 0x01,
		0x1A, 0x00, 0x00, 0x03,
		0x1B, 0x00, 0x00, 0x0A,
	}, data)
}

func TestRunFlags(t *testing.T) {
	assert := assert.New(t)

	input, output := writeSource(t, "; header\nPUSH 1\n\nPOP R0 ; done\n")

	err := run([]string{"-c", "-j", "4", input, output}, &bytes.Buffer{})
	assert.NoError(err)

	data, err := os.ReadFile(output)
	assert.NoError(err)
	assert.Equal([]byte{
		0x1B, 0x00, 0x00, 0x01,
		0x1E, 0x00, 0x00, 0x01,
	}, data)
}

func TestRunErrorNoOutput(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text string
		line int
		err  error
	}{
		{"PUSH 1\nXOR R0, R1\nPUSH 2\n", 2, asm.ErrUnknownMnemonic},
		{"PUSH 1\n\nPUSH 2\n", 2, asm.ErrInvalidFormat},
		{"MOV R0 R1 R2\n", 1, asm.ErrInvalidFormat},
		{"PUSH 1\nPUSH 256\n", 2, asm.ErrImmediateOutOfRange},
	}

	for _, entry := range table {
		input, output := writeSource(t, entry.text)

		err := run([]string{input, output}, &bytes.Buffer{})
		var se *asm.ErrSyntax
		if assert.True(errors.As(err, &se), entry.text) {
			assert.Equal(entry.line, se.LineNo, entry.text)
		}
		assert.ErrorIs(err, entry.err, entry.text)
		assert.Contains(err.Error(), input, entry.text)
		assert.NoFileExists(output, entry.text)
	}
}

func TestRunUsage(t *testing.T) {
	assert := assert.New(t)

	for _, args := range [][]string{{}, {"only.s"}, {"a.s", "b.bin", "c"}} {
		stderr := &bytes.Buffer{}
		err := run(args, stderr)
		assert.ErrorIs(err, errUsage, "%v", args)
		assert.Contains(stderr.String(), "Usage: encode <inputfile> <outputfile>", "%v", args)
	}
}

func TestRunMissingInput(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	output := filepath.Join(dir, "prog.bin")

	err := run([]string{filepath.Join(dir, "missing.s"), output}, &bytes.Buffer{})
	assert.ErrorIs(err, os.ErrNotExist)
	assert.NoFileExists(output)
}

func TestRunBadOutput(t *testing.T) {
	assert := assert.New(t)

	input, _ := writeSource(t, "PUSH 1\n")
	output := filepath.Join(t.TempDir(), "missing", "prog.bin")

	err := run([]string{input, output}, &bytes.Buffer{})
	assert.Error(err)
	assert.NoFileExists(output)
}
