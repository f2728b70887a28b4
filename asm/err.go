package asm

import (
	"errors"

	"github.com/ezrec/rissy/translate"
)

var f = translate.From

var (
	ErrRecordEmpty = errors.New(f("instruction empty"))
)

// ErrSyntax locates an error at an instruction of the program.
type ErrSyntax struct {
	Index  int    // Position of the instruction in the program.
	LineNo int    // Source line, or 0 when the record did not come from source text.
	Line   string // Instruction text.
	Err    error
}

func (err *ErrSyntax) Error() string {
	if err.LineNo > 0 {
		return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
	}

	return f("instruction %d '%v' %v", err.Index, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrExpression is a $(...) expression that could not be evaluated.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

// ErrExpressionValue is an expression whose result is not an integer.
type ErrExpressionValue string

func (err ErrExpressionValue) Error() string {
	return f("result of type %v is not an integer", string(err))
}
