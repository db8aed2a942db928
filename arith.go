package frac

import "fmt"

// Add returns f + g. It panics if f.Den*g.Den wraps to zero.
func (f Fraction[T]) Add(g Fraction[T]) Fraction[T] {
	return combine(f, g, f.Num*g.Den+g.Num*f.Den, f.Den*g.Den)
}

// Sub returns f - g. It panics if f.Den*g.Den wraps to zero.
func (f Fraction[T]) Sub(g Fraction[T]) Fraction[T] {
	return combine(f, g, f.Num*g.Den-g.Num*f.Den, f.Den*g.Den)
}

// Mul returns f * g. It panics if f.Den*g.Den wraps to zero.
func (f Fraction[T]) Mul(g Fraction[T]) Fraction[T] {
	return combine(f, g, f.Num*g.Num, f.Den*g.Den)
}

// combine normalizes num/den computed from f and g. With both operands
// valid, a zero den can only be a wrapped product.
func combine[T Integer](f, g Fraction[T], num, den T) Fraction[T] {
	if den == 0 && f.Den != 0 && g.Den != 0 {
		panic(fmt.Errorf("%s, %s: denominator product wrapped to zero: %w", f, g, ErrOverflow))
	}
	return normalize(num, den)
}

// Div returns f / g, ErrDivisionByZero if g is zero, or ErrOverflow if the
// denominator product wraps to zero.
func (f Fraction[T]) Div(g Fraction[T]) (Fraction[T], error) {
	r, err := g.Reciprocal()
	if err != nil {
		return Fraction[T]{}, err
	}
	if f.Den*r.Den == 0 {
		return Fraction[T]{}, fmt.Errorf("%s / %s: %w", f, g, ErrOverflow)
	}
	return f.Mul(r), nil
}

// Mod returns the remainder of f / g truncated toward zero, so the result
// has the sign of f like T's own % operator. A divisor or denominator
// product that wraps to zero yields ErrOverflow.
func (f Fraction[T]) Mod(g Fraction[T]) (Fraction[T], error) {
	if g.Num == 0 {
		return Fraction[T]{}, fmt.Errorf("%s mod %s: %w", f, g, ErrDivisionByZero)
	}
	divisor, den := g.Num*f.Den, f.Den*g.Den
	if divisor == 0 || den == 0 {
		return Fraction[T]{}, fmt.Errorf("%s mod %s: %w", f, g, ErrOverflow)
	}
	return normalize((f.Num*g.Den)%divisor, den), nil
}

// Reciprocal returns 1/f. Zero has no reciprocal and yields ErrDivisionByZero.
func (f Fraction[T]) Reciprocal() (Fraction[T], error) {
	if f.Num == 0 {
		return Fraction[T]{}, fmt.Errorf("reciprocal of %s: %w", f, ErrDivisionByZero)
	}
	// swapping a reduced pair keeps it reduced; only the sign has to move
	if f.Num < 0 {
		return NewReduced(-f.Den, -f.Num), nil
	}
	return NewReduced(f.Den, f.Num), nil
}

// Neg returns -f.
func (f Fraction[T]) Neg() Fraction[T] {
	return NewReduced(-f.Num, f.Den)
}

// Abs returns |f|.
func (f Fraction[T]) Abs() Fraction[T] {
	if f.Num < 0 {
		return f.Neg()
	}
	return f
}

// Pow returns f raised to the integer power n. Negative powers go through
// the reciprocal, so zero to a negative power yields ErrDivisionByZero. A
// denominator power that wraps to zero yields ErrOverflow.
func (f Fraction[T]) Pow(n int) (Fraction[T], error) {
	if n < 0 {
		r, err := f.Reciprocal()
		if err != nil {
			return Fraction[T]{}, err
		}
		// -(n+1)+1 stays in range for math.MinInt
		return r.pow(uint(-(n+1)) + 1)
	}
	return f.pow(uint(n))
}

// pow relies on gcd(a, b) == 1 implying gcd(a^n, b^n) == 1.
func (f Fraction[T]) pow(n uint) (Fraction[T], error) {
	den := ipow(f.Den, n)
	if den == 0 {
		return Fraction[T]{}, fmt.Errorf("(%s)^%d: %w", f, n, ErrOverflow)
	}
	return NewReduced(ipow(f.Num, n), den), nil
}

func ipow[T Integer](base T, n uint) T {
	result := T(1)
	for n > 0 {
		if n&1 == 1 {
			result *= base
		}
		base *= base
		n >>= 1
	}
	return result
}

// AddAssign sets f to f + g.
func (f *Fraction[T]) AddAssign(g Fraction[T]) {
	*f = f.Add(g)
}

// SubAssign sets f to f - g.
func (f *Fraction[T]) SubAssign(g Fraction[T]) {
	*f = f.Sub(g)
}

// MulAssign sets f to f * g.
func (f *Fraction[T]) MulAssign(g Fraction[T]) {
	*f = f.Mul(g)
}

// DivAssign sets f to f / g. On error f is left unchanged.
func (f *Fraction[T]) DivAssign(g Fraction[T]) error {
	r, err := f.Div(g)
	if err != nil {
		return err
	}
	*f = r
	return nil
}
