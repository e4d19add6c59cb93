package asm

import (
	"errors"

	"github.com/ezrec/vmasm/translate"
)

var f = translate.From

var (
	// Line encoding errors
	ErrInvalidFormat       = errors.New(f("invalid instruction format"))
	ErrUnknownMnemonic     = errors.New(f("unknown mnemonic"))
	ErrInvalidOperands     = errors.New(f("invalid operands"))
	ErrImmediateOutOfRange = errors.New(f("immediate out of range"))
)

// ErrSyntax reports the source line an assembly error occurred on.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("%v: '%v'", ErrUnknownMnemonic, string(err))
}

func (err ErrMnemonic) Is(target error) bool {
	return target == ErrUnknownMnemonic
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("%v: '%v' is not a number or register", ErrInvalidOperands, string(err))
}

func (err ErrParseNumber) Is(target error) bool {
	return target == ErrInvalidOperands
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("%v: $(%v) is not a valid expression", ErrInvalidOperands, string(err))
}

func (err ErrParseExpression) Is(target error) bool {
	return target == ErrInvalidOperands
}

// ErrImmediateRange is an immediate that does not fit in its 8-bit field.
type ErrImmediateRange string

func (err ErrImmediateRange) Error() string {
	return f("%v: '%v' is outside 0..255", ErrImmediateOutOfRange, string(err))
}

func (err ErrImmediateRange) Is(target error) bool {
	return target == ErrImmediateOutOfRange
}

// ErrTokenCount is a line with neither one nor two operands.
type ErrTokenCount int

func (err ErrTokenCount) Error() string {
	return f("%v: %d tokens", ErrInvalidFormat, int(err))
}

func (err ErrTokenCount) Is(target error) bool {
	return target == ErrInvalidFormat
}

// ErrDestination is a two-operand instruction whose destination is not a register.
type ErrDestination string

func (err ErrDestination) Error() string {
	return f("%v: destination '%v' is not a register", ErrInvalidOperands, string(err))
}

func (err ErrDestination) Is(target error) bool {
	return target == ErrInvalidOperands
}
