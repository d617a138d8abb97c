package beams

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Pos struct {
	X, Y int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

type Grid struct {
	splits int
	rows   [][]Cell
}

// NewGrid copies rows into a new grid. Rows must be non-empty and all of
// the same length.
func NewGrid(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, MalformedGridError{Reason: "empty grid"}
	}
	width := len(rows[0])
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, MalformedGridError{
				Reason: "row width differs from first row",
				Line:   y + 1,
				Column: len(row),
			}
		}
		cells[y] = make([]Cell, width)
		copy(cells[y], row)
	}
	return &Grid{rows: cells}, nil
}

func (g *Grid) inBounds(x, y int) bool {
	return y >= 0 && y < len(g.rows) && x >= 0 && x < len(g.rows[0])
}

// Get returns the cell at column x, row y. ok is false off the grid.
func (g *Grid) Get(x, y int) (c Cell, ok bool) {
	if !g.inBounds(x, y) {
		return 0, false
	}
	return g.rows[y][x], true
}

// Set replaces the cell at column x, row y. It reports false off the grid.
func (g *Grid) Set(x, y int, c Cell) bool {
	if !g.inBounds(x, y) {
		return false
	}
	g.rows[y][x] = c
	return true
}

func (g *Grid) FindStart() (Pos, bool) {
	for y, row := range g.rows {
		for x, c := range row {
			if c == Start {
				return Pos{x, y}, true
			}
		}
	}
	return Pos{}, false
}

// Shape returns (width, height).
func (g *Grid) Shape() (int, int) {
	return len(g.rows[0]), len(g.rows)
}

// Splits is the number of split events counted by [Grid.Drop] so far.
func (g *Grid) Splits() int {
	return g.splits
}

func (g *Grid) Clone() *Grid {
	rows := make([][]Cell, len(g.rows))
	for y, row := range g.rows {
		rows[y] = make([]Cell, len(row))
		copy(rows[y], row)
	}
	return &Grid{splits: g.splits, rows: rows}
}

// Grid implements [fmt.Stringer]
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.rows {
		for _, c := range row {
			b.WriteString(c.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
