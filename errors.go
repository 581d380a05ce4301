package equation

import "strconv"

// TokenOrderError is an error indicating a token where the grammar forbids
// it, given the token immediately before. It implements InputError.
type TokenOrderError struct {
	// Col is the position of the offending token.
	Col int
	// Prev describes the preceding token, e.g. "number 2". It is empty
	// when the offending token was the first in the expression.
	Prev string
	// Curr describes the offending token.
	Curr string
	// First is whether the offending token was the first in the
	// expression.
	First bool
}

func (err *TokenOrderError) Error() string {
	m := "incorrect order of operands and operations: the " + err.Curr
	if err.First {
		return errpos(err.Col, m+" cannot be the first in an expression")
	}
	return errpos(err.Col, m+" cannot be after the "+err.Prev)
}

func (err *TokenOrderError) Pos() int {
	return err.Col
}

// ParenError is an error indicating an unmatched parenthesis. It
// implements InputError.
type ParenError struct {
	// Col is the position of the extra parenthesis, or of the last token
	// for an open parenthesis still unmatched at the end of the input.
	Col int
	// Open is whether the extra parenthesis is an open one.
	Open bool
}

func (err *ParenError) Error() string {
	if err.Open {
		return errpos(err.Col, "extra open parenthesis")
	}
	return errpos(err.Col, "extra close parenthesis")
}

func (err *ParenError) Pos() int {
	return err.Col
}

// NoOperandsError is an error indicating an expression with no operand
// tokens at all, including the empty input.
type NoOperandsError struct{}

func (err *NoOperandsError) Error() string {
	return "expression does not contain any operands"
}

// NameError is an error from a lookup for a variable that is missing from
// the evaluation context.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// DivisionByZeroError is an error from a division whose divisor is exactly
// zero.
type DivisionByZeroError struct{}

func (err *DivisionByZeroError) Error() string {
	return "division by zero"
}

// UnderflowError is an error from an operation that needed more operands
// than the value stack held. It cannot result from a compiled expression;
// it guards hand-built programs.
type UnderflowError struct {
	// Op is the operation that underflowed.
	Op Operation
}

func (err *UnderflowError) Error() string {
	return "malformed expression: missing operand for " + err.Op.String()
}

// InternalError reports a violated invariant that was caught at the
// Calculate boundary instead of escaping as a panic.
type InternalError struct {
	// Cause describes the violation.
	Cause string
}

func (err *InternalError) Error() string {
	return "internal error: " + err.Cause
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Errors that point at a
// particular token of the input implement InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of
	// the token that caused it.
	Pos() int
}

var (
	_ InputError = (*TokenOrderError)(nil)
	_ InputError = (*ParenError)(nil)
)
