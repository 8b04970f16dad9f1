// atom.go: the lexical units of a leaf expression.
//
// An Atom is a tagged value: either a Data numeral carrying one integer
// of the numeric domain, or an operator/parenthesis with no payload.
// Equality is structural, so atoms compare with ==.
package boxscript

import "fmt"

// AtomKind tags an Atom.
type AtomKind int

const (
	Data AtomKind = iota

	// comparison
	Greater
	Less
	Equal
	NotEqual

	Assign

	// unary prefix
	Not
	Memory
	Output

	// binary arithmetic / bitwise
	Sum
	Difference
	Product
	Quotient
	Remainder
	InverseRemainder
	LeftShift
	RightShift
	And
	Or
	Xor

	// grouping
	LeftParen
	RightParen
)

var atomNames = [...]string{
	"Data",
	"Greater", "Less", "Equal", "NotEqual",
	"Assign",
	"Not", "Memory", "Output",
	"Sum", "Difference", "Product", "Quotient", "Remainder", "InverseRemainder",
	"LeftShift", "RightShift", "And", "Or", "Xor",
	"LeftParen", "RightParen",
}

func (k AtomKind) String() string {
	if k < 0 || int(k) >= len(atomNames) {
		return fmt.Sprintf("AtomKind(%d)", int(k))
	}
	return atomNames[k]
}

// Atom is one lexical unit. Data holds the numeral payload and is
// meaningful only when Kind == Data.
type Atom[T BoxInt] struct {
	Kind AtomKind
	Data T
}

// Datum wraps a numeral into an Atom.
func Datum[T BoxInt](n T) Atom[T] {
	return Atom[T]{Kind: Data, Data: n}
}

func (a Atom[T]) String() string {
	if a.Kind == Data {
		return fmt.Sprintf("Data(%d)", a.Data)
	}
	return a.Kind.String()
}

// Precedence returns the binding strength used by Molecule.Sort, from 1
// (Output/Assign, loosest) to 9 (Memory/Not, tightest). Data and
// parentheses sit at 0 and are never compared.
func (a Atom[T]) Precedence() int {
	switch a.Kind {
	case Output, Assign:
		return 1
	case Less, Greater, Equal, NotEqual:
		return 2
	case Or:
		return 3
	case Xor:
		return 4
	case And:
		return 5
	case LeftShift, RightShift:
		return 6
	case Sum, Difference:
		return 7
	case Product, Quotient, Remainder, InverseRemainder:
		return 8
	case Memory, Not:
		return 9
	default:
		return 0
	}
}

// arity is the validator's view of an atom: parentheses are transparent,
// everything else is a numeral, a prefix unary, or a binary operator.
type arity int

const (
	arityNumber arity = iota
	arityUnary
	arityBinary
	arityGroup
)

func (a Atom[T]) arity() arity {
	switch a.Kind {
	case Data:
		return arityNumber
	case Not, Memory, Output:
		return arityUnary
	case LeftParen, RightParen:
		return arityGroup
	default:
		return arityBinary
	}
}
