// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/ezrec/vmasm/asm"
	"github.com/ezrec/vmasm/translate"
)

var f = translate.From

var errUsage = errors.New(f("wrong number of arguments"))

// run assembles args[0] into args[1]. The output file is only created once
// the whole input has assembled, and is removed again if writing it fails.
func run(args []string, stderr io.Writer) (err error) {
	var verbose bool
	var comments bool
	var jobs int

	flags := flag.NewFlagSet("encode", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.BoolVar(&comments, "c", false, "Allow ';' comments and blank lines")
	flags.IntVar(&jobs, "j", 1, "Lines to encode in parallel")
	flags.Usage = func() {
		translate.Fprintf(stderr, "Usage: %v <inputfile> <outputfile>\n", "encode")
		flags.PrintDefaults()
	}

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() != 2 {
		flags.Usage()
		err = errUsage
		return
	}

	input := flags.Arg(0)
	output := flags.Arg(1)

	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	assembler := &asm.Assembler{
		Verbose:  verbose,
		Comments: comments,
		Jobs:     jobs,
	}
	prog, err := assembler.Parse(inf)
	if err != nil {
		err = errors.Wrap(err, input)
		return
	}

	ouf, err := os.Create(output)
	if err != nil {
		return
	}

	_, err = prog.WriteTo(ouf)
	if cerr := ouf.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(output)
		err = errors.Wrap(err, output)
		return
	}

	if verbose {
		log.Print(f("%v: wrote %d bytes\n", output, len(prog.Statements)*asm.WORD_SIZE))
	}

	return
}

func main() {
	err := run(os.Args[1:], os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		os.Exit(1)
	default:
		log.Fatal(err)
	}
}
