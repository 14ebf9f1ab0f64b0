package arith

import "strconv"

// NumberError is an error indicating that a number was required at a
// position where none begins. It implements InputError.
type NumberError struct {
	// Col is the position at which a number was expected.
	Col int
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "expected number")
}

func (err *NumberError) Pos() int {
	return err.Col
}

// BracketError is an error indicating an opening parenthesis with no
// matching closer. It implements InputError.
type BracketError struct {
	// Col is the position at which the closer was expected.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "missing )")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// DivisionError is an error indicating a division whose right operand is
// exactly zero. It implements InputError.
type DivisionError struct {
	// Col is the position of the / operator.
	Col int
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// ModuloError is an error indicating a remainder whose right operand
// truncates to zero. It implements InputError.
type ModuloError struct {
	// Col is the position of the % operator.
	Col int
}

func (err *ModuloError) Error() string {
	return errpos(err.Col, "modulo by zero")
}

func (err *ModuloError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating input remaining after a complete
// expression. It implements InputError.
type TrailingError struct {
	// Col is the position of the first unconsumed byte.
	Col int
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected trailing input")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return msg + " at offset " + strconv.Itoa(pos)
}

// InputError is an error with position information. Every error returned
// from Eval implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset of the cursor at the point of failure,
	// between 0 and the length of the input inclusive.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*ModuloError)(nil)
	_ InputError = (*TrailingError)(nil)
)
