package beams

import (
	"iter"
	"strings"
)

// lines yields the non-empty lines of s with their 1-based line number.
func lines(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n := 0
		found := true
		var line string
		for found {
			line, s, found = strings.Cut(s, "\n")
			n++
			line = strings.TrimSuffix(line, "\r")
			if line == "" {
				continue
			}
			if !yield(n, line) {
				return
			}
		}
	}
}

// Parse reads puzzle text, one row per line, one cell per character.
// Blank lines are skipped. A grid without a Start cell is accepted; the
// engines report it.
func Parse(raw string) (*Grid, error) {
	var (
		rows  [][]Cell
		start *Pos
	)
	for n, line := range lines(raw) {
		row := make([]Cell, 0, len(line))
		col := 0
		for _, r := range line {
			col++
			c, err := ParseCell(r)
			if err != nil {
				e := err.(MalformedGridError)
				e.Line, e.Column = n, col
				return nil, e
			}
			if c == Start {
				if start != nil {
					return nil, MalformedGridError{
						Reason: "second start, first one at " + start.String(),
						Line:   n,
						Column: col,
					}
				}
				start = &Pos{X: col - 1, Y: len(rows)}
			}
			row = append(row, c)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, MalformedGridError{
				Reason: "row width differs from first row",
				Line:   n,
				Column: len(row),
			}
		}
		rows = append(rows, row)
	}
	Log.WithField("rows", len(rows)).Debug("parsed grid")
	return NewGrid(rows)
}
