package frac

import "errors"

var (
	// ErrZeroDenominator is returned when a fraction would be built over a zero denominator.
	ErrZeroDenominator = errors.New("frac: zero denominator")
	// ErrDivisionByZero is returned when dividing by, or taking the reciprocal of, zero.
	ErrDivisionByZero = errors.New("frac: division by zero")
	// ErrOverflow is returned by the Checked operations when a result does not fit in T.
	ErrOverflow = errors.New("frac: integer overflow")
)
