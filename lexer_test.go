// lexer_test.go
package boxscript

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func toks(t *testing.T, expr string) []Atom[int64] {
	t.Helper()
	atoms, err := Tokenize[int64](expr)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", expr, err)
	}
	return atoms
}

func wantAtoms(t *testing.T, expr string, want []Atom[int64]) {
	t.Helper()
	got := toks(t, expr)
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("Tokenize(%q) mismatch (-want +got):\n%s", expr, diff)
	}
}

func Test_Tokenize_Operators(t *testing.T) {
	wantAtoms(t, "◖▭◇◈▘◗", []Atom[int64]{
		{Kind: LeftParen},
		{Kind: Output},
		{Kind: Memory},
		{Kind: Assign},
		{Kind: Not},
		{Kind: RightParen},
	})
	wantAtoms(t, "▐▌▞▚▦▩", []Atom[int64]{
		{Kind: Sum},
		{Kind: Difference},
		{Kind: Product},
		{Kind: Quotient},
		{Kind: Remainder},
		{Kind: InverseRemainder},
	})
	wantAtoms(t, "◀▶◁▷▣▨▙▟▜", []Atom[int64]{
		{Kind: LeftShift},
		{Kind: RightShift},
		{Kind: Less},
		{Kind: Greater},
		{Kind: Equal},
		{Kind: NotEqual},
		{Kind: And},
		{Kind: Or},
		{Kind: Xor},
	})
}

func Test_Tokenize_Numerals(t *testing.T) {
	tests := []struct {
		expr string
		want int64
	}{
		{"▀", 0},  // a lone digit glyph is the literal zero
		{"▄", 0},
		{"▀▀", 1},
		{"▀▄", 0},
		{"▄▀", -1},
		{"▀▀▀▄▀", 13}, // sign ▀, magnitude 1101
		{"▄▀▀▄▀", -13},
		{"▀▄▄▄▄▀", 1}, // leading zero bits are harmless
	}
	for _, tc := range tests {
		wantAtoms(t, tc.expr, []Atom[int64]{Datum(tc.want)})
	}
}

func Test_Tokenize_WhitespaceSplitsRuns(t *testing.T) {
	// whitespace is discarded but still terminates a digit run
	wantAtoms(t, " ▀▀ ▐\t▀▀ ", []Atom[int64]{Datum[int64](1), {Kind: Sum}, Datum[int64](1)})
	wantAtoms(t, "▀▀ ▀▀", []Atom[int64]{Datum[int64](1), Datum[int64](1)})
	wantAtoms(t, "", nil)
	wantAtoms(t, " \n\t", nil)
}

func Test_Tokenize_MixedExpression(t *testing.T) {
	wantAtoms(t, "▀◈▀▀▀▄▀", []Atom[int64]{
		Datum[int64](0),
		{Kind: Assign},
		Datum[int64](13),
	})
	wantAtoms(t, "▭◇▀", []Atom[int64]{
		{Kind: Output},
		{Kind: Memory},
		Datum[int64](0),
	})
}

func Test_Tokenize_InvalidCharacter(t *testing.T) {
	for _, expr := range []string{"a", "▀▐x", "◇?", "█"} {
		_, err := Tokenize[int64](expr)
		if !errors.Is(err, ErrInvalidCharacter) {
			t.Fatalf("Tokenize(%q): want ErrInvalidCharacter, got %v", expr, err)
		}
	}

	_, err := Tokenize[int64]("▀▀ ▐ z")
	var ge *GlyphError
	if !errors.As(err, &ge) {
		t.Fatalf("want *GlyphError, got %v", err)
	}
	if ge.Glyph != 'z' || ge.Pos != 5 {
		t.Fatalf("glyph detail wrong: %+v", ge)
	}
}

func Test_Tokenize_NumeralOverflow(t *testing.T) {
	// nine magnitude bits cannot fit an int8
	_, err := Tokenize[int8]("▀▀▀▀▀▀▀▀▀▀")
	if !errors.Is(err, ErrArithmeticOverflow) {
		t.Fatalf("want ErrArithmeticOverflow, got %v", err)
	}

	// but the most negative value is representable
	atoms, err := Tokenize[int8]("▄▀▄▄▄▄▄▄▄")
	if err != nil {
		t.Fatalf("min numeral: %v", err)
	}
	if len(atoms) != 1 || atoms[0].Data != -128 {
		t.Fatalf("min numeral decoded wrong: %v", atoms)
	}
}
