// lexer.go: glyph tokenizer for leaf expressions.
//
// The reserved alphabet maps each block-drawing glyph 1:1 to an atom
// kind, except the two digit glyphs: a run of digits encodes a signed
// numeral whose first glyph is the sign flag (▀ non-negative, ▄
// negative) and whose remaining glyphs are big-endian magnitude bits. A
// run of length 1 is the literal zero. Whitespace separates tokens and is
// discarded. No semantic checking happens here; Molecule.Validate owns
// that.
package boxscript

import (
	"fmt"
	"unicode"
)

// Digit glyphs. GlyphOne doubles as the non-negative sign flag.
const (
	GlyphOne  = '▀'
	GlyphZero = '▄'
)

// glyphs maps every operator glyph to its atom kind.
var glyphs = map[rune]AtomKind{
	'▷': Greater,
	'◁': Less,
	'▣': Equal,
	'▨': NotEqual,
	'◈': Assign,
	'▘': Not,
	'◇': Memory,
	'▭': Output,
	'▐': Sum,
	'▌': Difference,
	'▞': Product,
	'▚': Quotient,
	'▦': Remainder,
	'▩': InverseRemainder,
	'◀': LeftShift,
	'▶': RightShift,
	'▙': And,
	'▟': Or,
	'▜': Xor,
	'◖': LeftParen,
	'◗': RightParen,
}

// GlyphError reports a rune outside the reserved alphabet. Pos is the
// rune index within the expression. It unwraps to ErrInvalidCharacter.
type GlyphError struct {
	Pos   int
	Glyph rune
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d: unrecognized glyph %q", e.Pos, e.Glyph)
}

func (e *GlyphError) Unwrap() error { return ErrInvalidCharacter }

func isDigitGlyph(r rune) bool { return r == GlyphOne || r == GlyphZero }

// Tokenize scans a glyph expression into atoms.
func Tokenize[T BoxInt](expr string) ([]Atom[T], error) {
	runes := []rune(expr)
	atoms := make([]Atom[T], 0, len(runes))

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isDigitGlyph(r):
			start := i
			for i < len(runes) && isDigitGlyph(runes[i]) {
				i++
			}
			n, err := scanNumeral[T](runes[start:i])
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, Datum(n))
		default:
			kind, ok := glyphs[r]
			if !ok {
				return nil, &GlyphError{Pos: i, Glyph: r}
			}
			atoms = append(atoms, Atom[T]{Kind: kind})
			i++
		}
	}
	return atoms, nil
}

// scanNumeral decodes one digit run. The magnitude accumulates toward the
// sign so the most negative value of T stays representable, and any run
// too wide for T surfaces as ErrArithmeticOverflow.
func scanNumeral[T BoxInt](run []rune) (T, error) {
	if len(run) == 1 {
		return 0, nil
	}

	negative := run[0] == GlyphZero
	var v T
	for _, r := range run[1:] {
		var bit T
		if r == GlyphOne {
			bit = 1
		}

		v2, err := CheckedMul(v, 2)
		if err != nil {
			return 0, err
		}
		if negative {
			v, err = CheckedSub(v2, bit)
		} else {
			v, err = CheckedAdd(v2, bit)
		}
		if err != nil {
			return 0, err
		}
	}
	return v, nil
}
