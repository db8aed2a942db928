package frac

// GCD returns the greatest common divisor of a and b using the Euclidean
// algorithm. GCD(0, b) is b and GCD(a, 0) is a.
//
// a and b must not be negative; pass absolute values.
func GCD[T Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
