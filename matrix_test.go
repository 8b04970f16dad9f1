package boxscript

import (
	"reflect"
	"testing"
)

func TestChars(t *testing.T) {
	tests := []struct {
		name string
		code string
		want [][]rune
	}{
		{"rectangular", "ab\ncd", [][]rune{{'a', 'b'}, {'c', 'd'}}},
		{"short line padded", "ab\nc", [][]rune{{'a', 'b'}, {'c', 0}}},
		{"empty", "", nil},
		{"single line", "abc", [][]rune{{'a', 'b', 'c'}}},
		{"trailing newline adds no row", "ab\ncd\n", [][]rune{{'a', 'b'}, {'c', 'd'}}},
		{"crlf", "ab\r\nc", [][]rune{{'a', 'b'}, {'c', 0}}},
		{"interior blank line", "ab\n\ncd", [][]rune{{'a', 'b'}, {0, 0}, {'c', 'd'}}},
		{"multibyte runes count as one cell", "▀▄\nc", [][]rune{{'▀', '▄'}, {'c', 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Chars(tc.code)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Chars(%q) = %q, want %q", tc.code, got, tc.want)
			}
		})
	}
}

func TestNeighboring(t *testing.T) {
	src := "abc\ndef\nghi"

	n := Neighboring(src, Loc[int64]{X: 1, Y: 1}) // centered on 'e'
	want := Neighbors{North: 'b', South: 'h', East: 'f', West: 'd'}
	if n != want {
		t.Fatalf("center: got %+v, want %+v", n, want)
	}

	n = Neighboring(src, Loc[int64]{X: 0, Y: 0}) // corner 'a'
	want = Neighbors{North: 0, South: 'd', East: 'b', West: 0}
	if n != want {
		t.Fatalf("corner: got %+v, want %+v", n, want)
	}

	n = Neighboring(src, Loc[int64]{X: 2, Y: 2}) // corner 'i'
	want = Neighbors{North: 'f', South: 0, East: 0, West: 'h'}
	if n != want {
		t.Fatalf("corner: got %+v, want %+v", n, want)
	}

	// off-grid locations see NUL everywhere except back toward the grid
	n = Neighboring(src, Loc[int64]{X: 3, Y: 1})
	want = Neighbors{North: 0, South: 0, East: 0, West: 'f'}
	if n != want {
		t.Fatalf("off-grid: got %+v, want %+v", n, want)
	}

	// padded cells read as NUL
	n = Neighboring("ab\nc", Loc[int64]{X: 1, Y: 1})
	want = Neighbors{North: 'b', South: 0, East: 0, West: 'c'}
	if n != want {
		t.Fatalf("padded: got %+v, want %+v", n, want)
	}
}
