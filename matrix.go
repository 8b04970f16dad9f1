// matrix.go: grid ingestion.
package boxscript

import "strings"

// Chars splits a source blob into a rectangular rune matrix, padding
// every line on the right with NUL to the length of the longest line. A
// trailing newline does not produce an extra row, and \r\n line endings
// are tolerated. Empty input yields an empty matrix.
func Chars(code string) [][]rune {
	if code == "" {
		return nil
	}

	lines := strings.Split(code, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	width := 0
	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		r := []rune(strings.TrimSuffix(line, "\r"))
		if len(r) > width {
			width = len(r)
		}
		rows = append(rows, r)
	}

	for i, r := range rows {
		for len(r) < width {
			r = append(r, 0)
		}
		rows[i] = r
	}
	return rows
}

// Neighbors holds the four grid-adjacent characters of a cell.
type Neighbors struct {
	North, South, East, West rune
}

// Neighboring looks up the four neighbors of loc (X = column, Y = row)
// in the padded matrix of source, substituting NUL for any direction
// that falls outside the grid.
func Neighboring[T BoxInt](source string, loc Loc[T]) Neighbors {
	grid := Chars(source)
	row, col := int(loc.Y), int(loc.X)

	at := func(r, c int) rune {
		if r < 0 || r >= len(grid) {
			return 0
		}
		if c < 0 || c >= len(grid[r]) {
			return 0
		}
		return grid[r][c]
	}

	return Neighbors{
		North: at(row-1, col),
		South: at(row+1, col),
		East:  at(row, col+1),
		West:  at(row, col-1),
	}
}
