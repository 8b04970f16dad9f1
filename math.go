// math.go
package boxscript

import "fmt"

// Divide returns a/b, or ErrDivisionByZero when b is zero.
func Divide[T BoxInt](a, b T) (T, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, a)
	}
	return a / b, nil
}

// Modulo returns a mod b with the sign of the divisor, so the result is
// a true mathematical modulo rather than Go's truncating remainder.
// Fails with ErrInvalidModulus when b is zero.
func Modulo[T BoxInt](a, b T) (T, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %d mod 0", ErrInvalidModulus, a)
	}
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r, nil
}

// InvModulo returns the multiplicative inverse of a mod b, found by
// linear search over 1..b. Fails with ErrNotInvertible when no inverse
// exists (gcd(a mod b, b) != 1, or b < 2), with ErrInvalidModulus when b
// is zero, and with ErrArithmeticOverflow if a search product leaves T.
func InvModulo[T BoxInt](a, b T) (T, error) {
	x, err := Modulo(a, b)
	if err != nil {
		return 0, err
	}
	for n := T(1); n < b; n++ {
		p, err := CheckedMul(n, x)
		if err != nil {
			return 0, err
		}
		r, err := Modulo(p, b)
		if err != nil {
			return 0, err
		}
		if r == 1 {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %d has no inverse modulo %d", ErrNotInvertible, a, b)
}
