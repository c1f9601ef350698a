package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	X = MaxMark
	O = MinMark
	Z = Empty
)

func TestHasWon(t *testing.T) {
	b := MustBoard(
		X, O, X,
		O, X, O,
		O, O, X,
	)
	if !HasWon(b, X) {
		t.Error("expected X to be winner")
	}
	if HasWon(b, O) {
		t.Error("did not expect O to be winner")
	}

	b = MustBoard(
		X, O, O,
		X, O, X,
		O, X, X,
	)
	if !HasWon(b, O) {
		t.Error("expected O to be winner")
	}

	b = MustBoard(
		X, O, X,
		X, O, O,
		O, X, X,
	)
	if HasWon(b, X) || HasWon(b, O) {
		t.Errorf("expected nobody to win\n%v", b)
	}
}

func TestHasWonLines(t *testing.T) {
	for _, l := range lines {
		var b Board
		for _, i := range l {
			b[i] = O
		}
		assert.True(t, HasWon(b, O), "line %v", l)
		assert.False(t, HasWon(b, X), "line %v", l)

		// two out of three is not a win
		b[l[1]] = Z
		assert.False(t, HasWon(b, O), "line %v", l)
	}
}

func TestHasEmptyCell(t *testing.T) {
	assert.True(t, HasEmptyCell(EmptyBoard))
	assert.True(t, HasEmptyCell(MustBoard(
		X, O, X,
		O, X, O,
		O, X, Z,
	)))
	assert.False(t, HasEmptyCell(MustBoard(
		X, O, X,
		X, O, O,
		O, X, X,
	)))
}

func TestEnded(t *testing.T) {
	var testCases = []struct {
		board  Board
		ended  bool
		winner Colour
	}{
		{MustBoard(
			O, Z, X,
			Z, Z, X,
			Z, O, X,
		), true, Max},
		{MustBoard(
			O, O, O,
			Z, Z, X,
			X, O, X,
		), true, Min},
		{MustBoard(
			Z, Z, X,
			X, O, X,
			O, O, O,
		), true, Min},
		{MustBoard(
			X, O, X,
			X, O, O,
			O, X, X,
		), true, None},
		{MustBoard(
			X, Z, Z,
			Z, O, Z,
			Z, Z, Z,
		), false, None},
	}
	for i, tc := range testCases {
		ended, winner := Ended(tc.board)
		if ended != tc.ended || winner != tc.winner {
			t.Errorf("%d: expected (%v, %v), got (%v, %v)\n%v", i, tc.ended, tc.winner, ended, winner, tc.board)
		}
	}
}

// walk visits every board reachable from b by legal alternating moves,
// including terminal boards.
func walk(b Board, seen map[uint16]Board) {
	if _, ok := seen[b.Key()]; ok {
		return
	}
	seen[b.Key()] = b
	if ended, _ := Ended(b); ended {
		return
	}
	mark := b.ToMove().Mark()
	for _, i := range EmptyCells(b) {
		walk(b.Play(i, mark), seen)
	}
}

func TestReachableBoards(t *testing.T) {
	seen := make(map[uint16]Board)
	walk(EmptyBoard, seen)

	assert.Equal(t, 5478, len(seen), "number of legal positions")

	var terminal int
	for _, b := range seen {
		if HasWon(b, X) && HasWon(b, O) {
			t.Fatalf("both players won\n%v", b)
		}
		if ended, _ := Ended(b); ended {
			terminal++
		}
	}
	assert.Equal(t, 958, terminal, "number of terminal positions")
}

func TestEmptyCells(t *testing.T) {
	b := MustBoard(
		X, Z, O,
		Z, X, Z,
		O, Z, Z,
	)
	assert.Equal(t, []int{1, 3, 5, 7, 8}, EmptyCells(b))
	assert.Len(t, EmptyCells(EmptyBoard), Size)
}
