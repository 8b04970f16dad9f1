// numeric.go
package boxscript

import "fmt"

// BoxInt is the numeric domain the whole core is parameterized over: any
// native signed integer type. Comparison, bitwise complement and shifts
// come from the language; the checked helpers below supply the overflow
// discipline the evaluator needs.
type BoxInt interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// CheckedAdd returns a+b, or ErrArithmeticOverflow if the sum does not
// fit in T.
func CheckedAdd[T BoxInt](a, b T) (T, error) {
	s := a + b
	if (a > 0 && b > 0 && s <= 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, fmt.Errorf("%w: %d + %d", ErrArithmeticOverflow, a, b)
	}
	return s, nil
}

// CheckedSub returns a-b, or ErrArithmeticOverflow if the difference does
// not fit in T.
func CheckedSub[T BoxInt](a, b T) (T, error) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, fmt.Errorf("%w: %d - %d", ErrArithmeticOverflow, a, b)
	}
	return d, nil
}

// CheckedMul returns a*b, or ErrArithmeticOverflow if the product does
// not fit in T. Division round-trips catch every wrap, including the
// MinInt * -1 corner where Go's quotient itself wraps.
func CheckedMul[T BoxInt](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/a != b || p/b != a {
		return 0, fmt.Errorf("%w: %d * %d", ErrArithmeticOverflow, a, b)
	}
	return p, nil
}

// ShiftCount converts b into an unsigned shift amount, or
// ErrNegativeShiftAmount when b is negative. Counts at or beyond the
// width of T are fine: Go defines those shifts to zero out.
func ShiftCount[T BoxInt](b T) (uint, error) {
	if b < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeShiftAmount, b)
	}
	return uint(b), nil
}
