package game

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b, err := NewBoard([]float32{1, 0, -1, 0, 0, 0, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, Board{0: X, 2: O, 8: X}, b)

	_, err = NewBoard(make([]float32, 8))
	assert.Equal(t, ErrBoardSize, errors.Cause(err))

	_, err = NewBoard(make([]float32, 10))
	assert.Equal(t, ErrBoardSize, errors.Cause(err))

	_, err = NewBoard([]float32{0, 0, 0, 0, 2, 0, 0, 0, 0})
	assert.Equal(t, ErrMark, errors.Cause(err))

	// near misses are rejected, not rounded
	_, err = NewBoard([]float32{0, 0, 0, 0, 0.999, 0, 0, 0, 0})
	assert.Equal(t, ErrMark, errors.Cause(err))
}

func TestMustBoardPanics(t *testing.T) {
	assert.Panics(t, func() { MustBoard(1, 2, 3) })
}

func TestPlay(t *testing.T) {
	b := EmptyBoard
	c := b.Play(4, X)

	assert.Equal(t, EmptyBoard, b, "Play must not change the receiver")
	assert.Equal(t, CenterOpening, c)
	assert.Panics(t, func() { c.Play(4, O) })
}

func TestToMove(t *testing.T) {
	assert.True(t, EmptyBoard.IsMaxToMove())
	assert.Equal(t, Min, CenterOpening.ToMove())
	assert.Equal(t, Min, LastCornerOpening.ToMove())
	assert.Equal(t, Max, CenterOpening.Play(0, O).ToMove())
}

func TestKey(t *testing.T) {
	assert.Equal(t, uint16(0), EmptyBoard.Key())

	full := MustBoard(
		O, O, O,
		O, O, O,
		O, O, O,
	)
	assert.Equal(t, uint16(19682), full.Key())

	seen := make(map[uint16]Board)
	walk(EmptyBoard, seen)
	for k, b := range seen {
		if b.Key() != k {
			t.Fatalf("key mismatch for\n%v", b)
		}
		if FromKey(k) != b {
			t.Fatalf("FromKey(%d) = \n%v\nwant\n%v", k, FromKey(k), b)
		}
	}
}

func TestFormat(t *testing.T) {
	b := MustBoard(
		X, Z, O,
		Z, X, Z,
		Z, Z, Z,
	)
	expected := "⎢ X · O ⎥\n⎢ · X · ⎥\n⎢ · · · ⎥\n"
	assert.Equal(t, expected, fmt.Sprintf("%v", b))
	assert.Equal(t, "Max", fmt.Sprintf("%v", Max))
	assert.Equal(t, "O", fmt.Sprintf("%s", Min))
}
