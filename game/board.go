package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// Cell values of a board.
const (
	Empty   float32 = 0
	MaxMark float32 = 1
	MinMark float32 = -1
)

const (
	// Side is the length of a row.
	Side = 3
	// Size is the number of cells on a board.
	Size = Side * Side
)

// Board is a row major 3x3 tic-tac-toe grid.
//
// Boards are values: Play returns a new board and leaves the receiver as it was,
// so a board recorded anywhere can never be changed by a later move.
type Board [Size]float32

var (
	// EmptyBoard is the start position. MAX moves first.
	EmptyBoard Board

	// CenterOpening is the position after MAX opened in the center.
	CenterOpening = Board{4: MaxMark}

	// LastCornerOpening is the position after MAX opened in the bottom right corner.
	LastCornerOpening = Board{8: MaxMark}
)

// NewBoard validates cells and copies them into a Board.
func NewBoard(cells []float32) (Board, error) {
	var b Board
	if len(cells) != Size {
		return b, errors.Wrapf(ErrBoardSize, "got %d cells", len(cells))
	}
	for i, v := range cells {
		if _, ok := ColourOf(v); !ok {
			return b, errors.Wrapf(ErrMark, "cell %d holds %v", i, v)
		}
		b[i] = v
	}
	return b, nil
}

// MustBoard is NewBoard for literals in tests and examples. It panics on invalid input.
func MustBoard(cells ...float32) Board {
	b, err := NewBoard(cells)
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
	return b
}

// Play returns a copy of the board with mark placed at i.
// Placing on an occupied cell is a programming error.
func (b Board) Play(i int, mark float32) Board {
	if b[i] != Empty {
		panic(fmt.Sprintf("cell %d is already taken", i))
	}
	b[i] = mark
	return b
}

// Stones counts the non empty cells.
func (b Board) Stones() int {
	var n int
	for _, v := range b {
		if v != Empty {
			n++
		}
	}
	return n
}

// IsMaxToMove reports whether MAX is the side to move. MAX always opens, so
// it moves whenever the stone count is even.
func (b Board) IsMaxToMove() bool { return b.Stones()%2 == 0 }

// ToMove returns the side to move.
func (b Board) ToMove() Colour {
	if b.IsMaxToMove() {
		return Max
	}
	return Min
}

// Key packs the board into a base-3 number. It is a bijection over valid
// boards (3^9 = 19683 fits in 16 bits).
func (b Board) Key() uint16 {
	var k uint16
	for i := Size - 1; i >= 0; i-- {
		k *= 3
		switch b[i] {
		case MaxMark:
			k += 1
		case MinMark:
			k += 2
		}
	}
	return k
}

// FromKey is the inverse of Key.
func FromKey(k uint16) Board {
	var b Board
	for i := 0; i < Size; i++ {
		switch k % 3 {
		case 1:
			b[i] = MaxMark
		case 2:
			b[i] = MinMark
		}
		k /= 3
	}
	return b
}

// Colours returns the symbolic view of the board.
func (b Board) Colours() []Colour {
	retVal := make([]Colour, Size)
	for i, v := range b {
		retVal[i], _ = ColourOf(v)
	}
	return retVal
}

func (b Board) Format(s fmt.State, c rune) {
	for i, cl := range b.Colours() {
		if i%Side == 0 {
			fmt.Fprint(s, "⎢ ")
		}
		fmt.Fprintf(s, "%s ", cl)
		if (i+1)%Side == 0 {
			fmt.Fprint(s, "⎥\n")
		}
	}
}
