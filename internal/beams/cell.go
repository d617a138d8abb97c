package beams

import "strconv"

type Cell int8

const (
	Space    Cell = iota
	Splitter      // duplicates an incoming signal left and right
	Start         // entry point, exactly one per grid
	Beam          // lit by a signal, absorbs re-entry
)

func (c Cell) String() string {
	switch c {
	case Space:
		return "."
	case Splitter:
		return "^"
	case Start:
		return "S"
	case Beam:
		return "|"
	default:
		return "!"
	}
}

func ParseCell(r rune) (Cell, error) {
	switch r {
	case '.':
		return Space, nil
	case '^':
		return Splitter, nil
	case 'S':
		return Start, nil
	case '|':
		return Beam, nil
	default:
		return 0, MalformedGridError{Reason: "unrecognized cell " + strconv.QuoteRune(r)}
	}
}
