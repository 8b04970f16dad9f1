// errors.go: the error taxonomy shared by every component.
//
// Each failure the core can report wraps exactly one of the sentinels
// below, so callers can classify with errors.Is no matter how much
// positional detail the formatted message carries. Producers that have
// structure worth keeping (the tokenizer, box construction) define typed
// errors next to themselves and unwrap to these sentinels.
package boxscript

import "errors"

var (
	// ErrInvalidBounds reports a box whose start does not precede its end.
	ErrInvalidBounds = errors.New("invalid bounds")

	// ErrInvalidCharacter reports a glyph outside the reserved alphabet.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrMalformedExpression reports an atom sequence that fails the
	// arity checks in Molecule.Validate.
	ErrMalformedExpression = errors.New("malformed expression")

	// ErrMissingLeftParenthesis and ErrMissingRightParenthesis report
	// unbalanced grouping discovered while sorting into postfix form.
	ErrMissingLeftParenthesis  = errors.New("missing left parenthesis")
	ErrMissingRightParenthesis = errors.New("missing right parenthesis")

	// Evaluation-time arithmetic conditions.
	ErrDivisionByZero      = errors.New("division by zero")
	ErrInvalidModulus      = errors.New("invalid modulus")
	ErrNotInvertible       = errors.New("not invertible")
	ErrNegativeShiftAmount = errors.New("negative shift amount")
	ErrArithmeticOverflow  = errors.New("arithmetic overflow")
)
