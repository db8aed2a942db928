package frac

import "fmt"

// CheckedAdd returns f + g, or ErrOverflow if an intermediate value does not
// fit in T. Denominators are brought to their least common multiple first,
// so CheckedAdd succeeds on some inputs where Add would wrap.
func (f Fraction[T]) CheckedAdd(g Fraction[T]) (Fraction[T], error) {
	r, ok := checkedSum(f, g, checkedAdd[T])
	if !ok {
		return Fraction[T]{}, fmt.Errorf("%s + %s: %w", f, g, ErrOverflow)
	}
	return r, nil
}

// CheckedSub returns f - g, or ErrOverflow.
func (f Fraction[T]) CheckedSub(g Fraction[T]) (Fraction[T], error) {
	r, ok := checkedSum(f, g, checkedSub[T])
	if !ok {
		return Fraction[T]{}, fmt.Errorf("%s - %s: %w", f, g, ErrOverflow)
	}
	return r, nil
}

// CheckedMul returns f * g, or ErrOverflow. Common factors across the two
// fractions are cancelled before multiplying.
func (f Fraction[T]) CheckedMul(g Fraction[T]) (Fraction[T], error) {
	r, ok := checkedProduct(f, g)
	if !ok {
		return Fraction[T]{}, fmt.Errorf("%s * %s: %w", f, g, ErrOverflow)
	}
	return r, nil
}

// CheckedDiv returns f / g, ErrDivisionByZero if g is zero, or ErrOverflow.
func (f Fraction[T]) CheckedDiv(g Fraction[T]) (Fraction[T], error) {
	if g.Num == 0 {
		return Fraction[T]{}, fmt.Errorf("%s / %s: %w", f, g, ErrDivisionByZero)
	}
	num, den := g.Den, g.Num
	if den < 0 {
		var ok1, ok2 bool
		num, ok1 = checkedNeg(num)
		den, ok2 = checkedNeg(den)
		if !ok1 || !ok2 {
			return Fraction[T]{}, fmt.Errorf("%s / %s: %w", f, g, ErrOverflow)
		}
	}
	r, ok := checkedProduct(f, NewReduced(num, den))
	if !ok {
		return Fraction[T]{}, fmt.Errorf("%s / %s: %w", f, g, ErrOverflow)
	}
	return r, nil
}

// checkedSum combines the numerators of two reduced fractions brought over
// lcm(f.Den, g.Den).
func checkedSum[T Integer](f, g Fraction[T], combine func(a, b T) (T, bool)) (Fraction[T], bool) {
	gcd := GCD(f.Den, g.Den)
	fScale, gScale := g.Den/gcd, f.Den/gcd

	den, ok := checkedMul(f.Den, fScale)
	if !ok {
		return Fraction[T]{}, false
	}
	a, ok := checkedMul(f.Num, fScale)
	if !ok {
		return Fraction[T]{}, false
	}
	b, ok := checkedMul(g.Num, gScale)
	if !ok {
		return Fraction[T]{}, false
	}
	num, ok := combine(a, b)
	if !ok {
		return Fraction[T]{}, false
	}
	return normalize(num, den), true
}

// checkedProduct cancels f.Num against g.Den and g.Num against f.Den so the
// result is already in lowest terms.
func checkedProduct[T Integer](f, g Fraction[T]) (Fraction[T], bool) {
	if f.Num == 0 || g.Num == 0 {
		return Zero[T](), true
	}
	// a negative numerator can make GCD negative, but never beyond the
	// positive denominator, so abs cannot overflow even for MinInt
	g1 := abs(GCD(g.Den, f.Num))
	g2 := abs(GCD(f.Den, g.Num))

	num, ok := checkedMul(f.Num/g1, g.Num/g2)
	if !ok {
		return Fraction[T]{}, false
	}
	den, ok := checkedMul(f.Den/g2, g.Den/g1)
	if !ok {
		return Fraction[T]{}, false
	}
	return NewReduced(num, den), true
}

func checkedAdd[T Integer](a, b T) (T, bool) {
	s := a + b
	if signed[T]() {
		return s, !((b > 0 && s < a) || (b < 0 && s > a))
	}
	return s, s >= a
}

func checkedSub[T Integer](a, b T) (T, bool) {
	d := a - b
	if signed[T]() {
		return d, !((b > 0 && d > a) || (b < 0 && d < a))
	}
	return d, b <= a
}

func checkedMul[T Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if signed[T]() {
		// -1 * MinInt wraps back to MinInt, and MinInt / -1 hides it
		minusOne := ^T(0)
		if (a == minusOne && b == -b) || (b == minusOne && a == -a) {
			return 0, false
		}
	}
	p := a * b
	return p, p/b == a
}

func checkedNeg[T Integer](v T) (T, bool) {
	if v == 0 {
		return 0, true
	}
	if !signed[T]() {
		return 0, false
	}
	n := -v
	return n, n != v
}
