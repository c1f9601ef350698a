package game

import "github.com/pkg/errors"

var (
	// ErrBoardSize is returned when a board is built from anything other than 9 cells.
	ErrBoardSize = errors.New("board must have exactly 9 cells")

	// ErrMark is returned when a cell holds a value that is not one of the three marks.
	ErrMark = errors.New("cell holds an unknown mark")
)
