// molecule.go: one tokenized leaf expression.
//
// A Molecule owns an ordered atom sequence plus two memoizations: the
// validation verdict and the postfix (RPN) form produced by the
// shunting-yard sort. Both are computed at most once per molecule, so a
// loop body re-evaluated many times re-parses nothing.
package boxscript

import "fmt"

// Molecule is one parsed leaf expression.
type Molecule[T BoxInt] struct {
	children []Atom[T]

	// postfix is non-nil once Sort has succeeded; valid flips true once
	// Validate has succeeded. Failed attempts are not cached: the inputs
	// are immutable, so a retry just reproduces the same error cheaply.
	postfix []Atom[T]
	valid   bool
}

// NewMolecule wraps an atom sequence.
func NewMolecule[T BoxInt](children []Atom[T]) *Molecule[T] {
	return &Molecule[T]{children: children}
}

// ParseMolecule tokenizes a glyph expression into a fresh molecule.
func ParseMolecule[T BoxInt](expr string) (*Molecule[T], error) {
	atoms, err := Tokenize[T](expr)
	if err != nil {
		return nil, err
	}
	return NewMolecule(atoms), nil
}

// Validate checks the atom sequence for well-formedness, ignoring
// parentheses: numerals and operators must alternate so that every
// binary operator has a numeral on its left and a non-binary token on
// its right, every unary operator prefixes a non-binary token, and the
// sequence ends on a numeral. The empty sequence is valid and evaluates
// to zero.
func (m *Molecule[T]) Validate() error {
	if m.valid {
		return nil
	}

	seq := make([]arity, 0, len(m.children))
	for _, a := range m.children {
		if k := a.arity(); k != arityGroup {
			seq = append(seq, k)
		}
	}

	fail := func(i int) error {
		return fmt.Errorf("%w: unexpected %s at atom %d", ErrMalformedExpression, m.children[i], i)
	}
	// fail positions index the filtered sequence; map back for messages.
	pos := make([]int, 0, len(seq))
	for i, a := range m.children {
		if a.arity() != arityGroup {
			pos = append(pos, i)
		}
	}

	n := len(seq)
	switch n {
	case 0:
		m.valid = true
		return nil
	case 1:
		if seq[0] != arityNumber {
			return fail(pos[0])
		}
		m.valid = true
		return nil
	}

	for i, cur := range seq {
		switch {
		case i == 0:
			switch cur {
			case arityNumber:
				if seq[1] != arityBinary {
					return fail(pos[1])
				}
			case arityUnary:
				if seq[1] == arityBinary {
					return fail(pos[1])
				}
			default:
				return fail(pos[0])
			}
		case i == n-1:
			if cur != arityNumber {
				return fail(pos[i])
			}
			if seq[i-1] != arityBinary && seq[i-1] != arityUnary {
				return fail(pos[i])
			}
		default:
			switch cur {
			case arityNumber:
				if seq[i-1] == arityNumber || seq[i+1] == arityNumber {
					return fail(pos[i])
				}
			case arityUnary:
				if seq[i+1] == arityBinary {
					return fail(pos[i])
				}
			case arityBinary:
				if seq[i-1] != arityNumber || seq[i+1] == arityBinary {
					return fail(pos[i])
				}
			}
		}
	}

	m.valid = true
	return nil
}

// Sort reorders the atoms into postfix form with the classic
// operator-precedence algorithm. Numerals go straight to the output;
// left parentheses and the prefix unaries Not/Memory push straight to
// the operator stack (they have no left operand to wait for); a right
// parenthesis pops to its matching left parenthesis or fails with
// ErrMissingLeftParenthesis; any other operator first pops everything of
// precedence >= its own — strictly > for Assign, which chains
// right-to-left. A left parenthesis surviving the final drain fails with
// ErrMissingRightParenthesis.
//
// The result is memoized: a second call returns the identical sequence.
func (m *Molecule[T]) Sort() ([]Atom[T], error) {
	if m.postfix != nil {
		return m.postfix, nil
	}

	output := make([]Atom[T], 0, len(m.children))
	var stack []Atom[T]

	for _, child := range m.children {
		switch child.Kind {
		case Data:
			output = append(output, child)
		case LeftParen, Not, Memory:
			stack = append(stack, child)
		case RightParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == LeftParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, fmt.Errorf("%w: unmatched right parenthesis", ErrMissingLeftParenthesis)
			}
		default:
			p := child.Precedence()
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				tp := top.Precedence()
				if tp > p || (tp == p && child.Kind != Assign) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, child)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == LeftParen {
			return nil, fmt.Errorf("%w: unmatched left parenthesis", ErrMissingRightParenthesis)
		}
		output = append(output, top)
	}

	m.postfix = output
	return output, nil
}
