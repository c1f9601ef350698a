package game

import (
	"fmt"
)

// Colour is the owner of a cell. It's the symbolic view of a mark.
type Colour int32

const (
	None Colour = iota
	Max
	Min
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 'v': // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case Max:
			fmt.Fprint(s, "Max")
		case Min:
			fmt.Fprint(s, "Min")
		}
	case 's': // used in board renderings
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case Max:
			fmt.Fprint(s, "X")
		case Min:
			fmt.Fprint(s, "O")
		}
	}
}

// Mark returns the numeric cell value stamped by the colour.
func (cl Colour) Mark() float32 {
	switch cl {
	case Max:
		return MaxMark
	case Min:
		return MinMark
	}
	return Empty
}

// ColourOf converts a cell value back to a colour. Values outside the three
// marks are reported as not ok.
func ColourOf(mark float32) (Colour, bool) {
	switch mark {
	case Empty:
		return None, true
	case MaxMark:
		return Max, true
	case MinMark:
		return Min, true
	}
	return None, false
}
