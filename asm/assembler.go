// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/vmasm/internal"
)

// Assembler is a single pass line assembler for the VM-11.
type Assembler struct {
	Verbose  bool // If set, verbosely logs the assembler actions.
	Comments bool // If set, ';' starts a comment and blank lines are skipped.
	Jobs     int  // Lines encoded in parallel. Values below 2 encode in order.
}

// source is a line of assembly text.
type source struct {
	LineNo int
	Text   string // Raw line, as read.
	Code   string // Line without its comment.
}

var (
	charRegexp = regexp.MustCompile(`'\\?[^']'`)
	evalRegexp = regexp.MustCompile(`\$\([^\$]*\)`)
)

// parenEval does compile-time $(...) evaluations
func parenEval(expr string, lineno int) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", "rc="+expr+"\n", pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value, ok = st_int.Int64()
	if !ok {
		err = ErrImmediateRange(st_int.String())
		return
	}

	return
}

// expandLine replaces character literals and $(...) expressions with
// their decimal values.
func expandLine(line string, lineno int) (expanded string, err error) {
	// Do 'x' evaluations
	line = charRegexp.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "t":
				str = "\t"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%d", str[0])
	})

	// Do $() evaluations
	expanded = evalRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := parenEval(str[2:len(str)-1], lineno)
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})

	return
}

// assemble encodes a single source line.
func (asm *Assembler) assemble(src source) (stmt Statement, err error) {
	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: src.LineNo, Line: src.Text, Err: err}
		}
	}()

	line, err := expandLine(src.Code, src.LineNo)
	if err != nil {
		return
	}

	words := tokenize(line)
	inst, err := parseWords(words)
	if err != nil {
		return
	}

	word, err := inst.Encode()
	if err != nil {
		return
	}

	stmt = Statement{
		LineNo:      src.LineNo,
		Words:       words,
		Instruction: inst,
		Word:        word,
	}

	return
}

// Parse parses an input stream into a Program of encoded instructions.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	return asm.ParseContext(context.Background(), input)
}

// ParseContext parses an input stream into a Program of encoded
// instructions, stopping early if ctx is cancelled.
//
// Every line, blank or not, encodes to exactly one word; only the newline
// ending the last line is optional. The first invalid line, in source
// order, aborts the parse and is returned as an *ErrSyntax.
func (asm *Assembler) ParseContext(ctx context.Context, input io.Reader) (prog *Program, err error) {
	var lines []source

	scanner := bufio.NewScanner(input)
	lineno := 0
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		code := text
		if asm.Comments {
			code, _, _ = strings.Cut(text, ";")
			if len(strings.TrimSpace(code)) == 0 {
				continue
			}
		}

		lines = append(lines, source{LineNo: lineno, Text: text, Code: code})
	}

	err = scanner.Err()
	if err != nil {
		err = errors.Wrap(err, f("line %d", lineno+1))
		return
	}

	stmts, err := internal.MapOrdered(ctx, lines, asm.Jobs, asm.assemble)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Print(f("%d instructions, %d bytes\n", len(stmts), len(stmts)*WORD_SIZE))
	}

	prog = &Program{
		Statements: stmts,
	}

	return
}
