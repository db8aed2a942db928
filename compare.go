package frac

import "cmp"

// Compare returns -1 if f < g, 0 if f == g and +1 if f > g.
//
// With both denominators positive, f < g exactly when f.Num*g.Den is less
// than g.Num*f.Den, so no division or sign case analysis is needed. Every
// other relation below is derived from Compare.
//
// The cross products are not checked: if either wraps around in T the
// result, and every relation derived from it, can be wrong.
func (f Fraction[T]) Compare(g Fraction[T]) int {
	f, g = f.positive(), g.positive()
	return cmp.Compare(f.Num*g.Den, g.Num*f.Den)
}

// positive moves a negative denominator's sign onto the numerator. Values
// built by this package already satisfy this; NewReduced values may not.
func (f Fraction[T]) positive() Fraction[T] {
	if f.Den < 0 {
		return Fraction[T]{Num: -f.Num, Den: -f.Den}
	}
	return f
}

func (f Fraction[T]) Equal(g Fraction[T]) bool          { return f.Compare(g) == 0 }
func (f Fraction[T]) NotEqual(g Fraction[T]) bool       { return f.Compare(g) != 0 }
func (f Fraction[T]) Less(g Fraction[T]) bool           { return f.Compare(g) < 0 }
func (f Fraction[T]) LessOrEqual(g Fraction[T]) bool    { return f.Compare(g) <= 0 }
func (f Fraction[T]) Greater(g Fraction[T]) bool        { return f.Compare(g) > 0 }
func (f Fraction[T]) GreaterOrEqual(g Fraction[T]) bool { return f.Compare(g) >= 0 }

// Sign returns -1, 0 or +1 depending on the sign of f.
func (f Fraction[T]) Sign() int {
	switch {
	case f.Num == 0:
		return 0
	case (f.Num < 0) != (f.Den < 0):
		return -1
	default:
		return 1
	}
}

// IsZero reports whether f is 0.
func (f Fraction[T]) IsZero() bool {
	return f.Num == 0
}

// IsInteger reports whether f is a whole number.
func (f Fraction[T]) IsInteger() bool {
	return f.Den != 0 && f.Num%f.Den == 0
}

// Compare is the function form of Fraction.Compare, for use with
// slices.SortFunc and friends.
func Compare[T Integer](a, b Fraction[T]) int {
	return a.Compare(b)
}

// Min returns the smallest of the given fractions.
func Min[T Integer](first Fraction[T], rest ...Fraction[T]) Fraction[T] {
	m := first
	for _, f := range rest {
		if f.Less(m) {
			m = f
		}
	}
	return m
}

// Max returns the largest of the given fractions.
func Max[T Integer](first Fraction[T], rest ...Fraction[T]) Fraction[T] {
	m := first
	for _, f := range rest {
		if f.Greater(m) {
			m = f
		}
	}
	return m
}
