// Package frac provides exact fractions over any Go integer type.
//
// A Fraction[T] built through Make, New or any arithmetic method is kept in
// lowest terms with a positive denominator, so the sign of the value is the
// sign of the numerator and every value has exactly one representation.
package frac

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Integer is the set of types a Fraction can be built over.
type Integer interface {
	constraints.Integer
}

// Fraction is the exact ratio Num/Den.
//
// Arithmetic uses T's own operators, so intermediate products wrap around
// on overflow exactly like any other Go integer expression and the result
// is silently wrong. The one exception is a denominator product that wraps
// to zero: Add, Sub and Mul panic with an error wrapping ErrOverflow, and
// Div, Mod and Pow return one. Values whose cross products may not fit in
// T should use the Checked operations, which report ErrOverflow instead.
// For signed T the most negative value of T cannot be negated and is not
// supported as a denominator.
//
// The zero value is 0/0 and is not a valid fraction until Reduce is called
// on it; use Zero for the fraction 0.
type Fraction[T Integer] struct {
	Num T
	Den T
}

// FromInt returns the whole number n/1.
func FromInt[T Integer](n T) Fraction[T] {
	return Fraction[T]{Num: n, Den: 1}
}

// Make returns num/den reduced to lowest terms with a positive denominator.
// It returns ErrZeroDenominator if den is zero.
func Make[T Integer](num, den T) (Fraction[T], error) {
	if den == 0 {
		return Fraction[T]{}, fmt.Errorf("make %d/%d: %w", num, den, ErrZeroDenominator)
	}
	return normalize(num, den), nil
}

// New is like Make but panics if den is zero.
func New[T Integer](num, den T) Fraction[T] {
	f, err := Make(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// NewReduced stores num/den as given, skipping normalization. The caller
// guarantees the pair is already in lowest terms with a positive denominator.
func NewReduced[T Integer](num, den T) Fraction[T] {
	return Fraction[T]{Num: num, Den: den}
}

// Zero returns 0/1.
func Zero[T Integer]() Fraction[T] {
	return Fraction[T]{Num: 0, Den: 1}
}

// One returns 1/1.
func One[T Integer]() Fraction[T] {
	return Fraction[T]{Num: 1, Den: 1}
}

// Reduce puts f in lowest terms with a positive denominator. A zero
// numerator gives the canonical zero 0/1. Reduce returns ErrZeroDenominator
// and leaves f untouched if f has a non-zero numerator over a zero
// denominator.
func (f *Fraction[T]) Reduce() error {
	if f.Num == 0 {
		f.Den = 1
		return nil
	}
	if f.Den == 0 {
		return fmt.Errorf("reduce %d/0: %w", f.Num, ErrZeroDenominator)
	}

	// 約分
	g := GCD(abs(f.Num), abs(f.Den))
	if g != 1 {
		f.Num /= g
		f.Den /= g
	}

	if f.Den < 0 {
		f.Num = -f.Num
		f.Den = -f.Den
	}
	return nil
}

// normalize builds num/den through Reduce and panics on a non-zero
// numerator over a zero den.
func normalize[T Integer](num, den T) Fraction[T] {
	f := Fraction[T]{Num: num, Den: den}
	if err := f.Reduce(); err != nil {
		panic(err)
	}
	return f
}

func (f Fraction[T]) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Float64 returns the nearest float64 to f.
func (f Fraction[T]) Float64() float64 {
	return float64(f.Num) / float64(f.Den)
}

func abs[T Integer](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// signed reports whether T can hold negative values.
func signed[T Integer]() bool {
	return ^T(0) < 0
}
