// eval.go: the postfix stack machine.
//
// Run validates and sorts the molecule (both memoized), then executes the
// postfix sequence against an operand stack. Memory is the caller-owned
// integer store shared across a whole program run; stdout is the
// caller-owned output accumulator. Both are mutated strictly
// left-to-right; evaluation runs to completion or to the first error.
package boxscript

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// replacementMarker is appended by Output for values that are not valid
// code points.
const replacementMarker = '�'

// Run evaluates the molecule. The result is the value left on the
// operand stack (zero for the empty expression) plus a snapshot of the
// output accumulator.
func (m *Molecule[T]) Run(memory map[T]T, stdout *strings.Builder) (T, string, error) {
	if err := m.Validate(); err != nil {
		return 0, "", err
	}
	sorted, err := m.Sort()
	if err != nil {
		return 0, "", err
	}

	// The validator ignores parentheses, so a pathological grouping can
	// still sort into an operand-starved sequence; every pop is guarded.
	var stack []T
	pop := func(op AtomKind) (T, error) {
		if len(stack) == 0 {
			var zero T
			return zero, fmt.Errorf("%w: %s is missing an operand", ErrMalformedExpression, op)
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, nil
	}

	for _, atom := range sorted {
		switch atom.Kind {
		case Data:
			stack = append(stack, atom.Data)
		case Memory:
			a, err := pop(atom.Kind)
			if err != nil {
				return 0, "", err
			}
			stack = append(stack, memory[a]) // unset keys read zero
		case Not:
			a, err := pop(atom.Kind)
			if err != nil {
				return 0, "", err
			}
			stack = append(stack, ^a)
		case Output:
			a, err := pop(atom.Kind)
			if err != nil {
				return 0, "", err
			}
			stack = append(stack, a) // output does not consume
			stdout.WriteRune(outputRune(a))
		default:
			b, err := pop(atom.Kind)
			if err != nil {
				return 0, "", err
			}
			a, err := pop(atom.Kind)
			if err != nil {
				return 0, "", err
			}
			v, err := apply(atom.Kind, a, b, memory)
			if err != nil {
				return 0, "", err
			}
			stack = append(stack, v)
		}
	}

	if len(stack) == 0 {
		return 0, stdout.String(), nil
	}
	return stack[len(stack)-1], stdout.String(), nil
}

// apply executes one binary operator. a is the left operand.
func apply[T BoxInt](kind AtomKind, a, b T, memory map[T]T) (T, error) {
	switch kind {
	case Assign:
		memory[a] = b
		return b, nil
	case Greater:
		return fromBool[T](a > b), nil
	case Less:
		return fromBool[T](a < b), nil
	case Equal:
		return fromBool[T](a == b), nil
	case NotEqual:
		return fromBool[T](a != b), nil
	case Sum:
		return CheckedAdd(a, b)
	case Difference:
		return CheckedSub(a, b)
	case Product:
		return CheckedMul(a, b)
	case Quotient:
		return Divide(a, b)
	case Remainder:
		return Modulo(a, b)
	case InverseRemainder:
		return InvModulo(a, b)
	case LeftShift:
		s, err := ShiftCount(b)
		if err != nil {
			return 0, err
		}
		return a << s, nil
	case RightShift:
		s, err := ShiftCount(b)
		if err != nil {
			return 0, err
		}
		return a >> s, nil
	case And:
		return a & b, nil
	case Or:
		return a | b, nil
	case Xor:
		return a ^ b, nil
	default:
		return 0, fmt.Errorf("%w: %s is not a binary operator", ErrMalformedExpression, kind)
	}
}

func fromBool[T BoxInt](ok bool) T {
	if ok {
		return 1
	}
	return 0
}

// outputRune converts a value to the character it prints as, or the
// replacement marker when the value is not a valid code point.
func outputRune[T BoxInt](a T) rune {
	v := int64(a)
	if v < 0 || v > int64(utf8.MaxRune) || !utf8.ValidRune(rune(v)) {
		return replacementMarker
	}
	return rune(v)
}
