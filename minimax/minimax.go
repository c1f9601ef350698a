// Package minimax enumerates every tic-tac-toe position reachable from a board by
// exhaustive minimax search, recording a per-move score vector for each position
// from which a move is possible.
package minimax

import (
	"github.com/gorgonia/tictac/game"
	"github.com/pkg/errors"
)

// Game values. Wins are adjusted by the depth at which they occur, so every
// win lies in [1, 10] or [-10, -1] and faster wins are more extreme.
const (
	MaxWin    float32 = 10
	MinWin    float32 = -10
	DrawValue float32 = 0

	// Occupied marks a cell that held a stone in the scored board.
	Occupied float32 = 0

	// DepthAdvantage is the value one ply of depth is worth.
	DepthAdvantage float32 = 1
)

// ErrScoreSize is returned when a score vector does not line up with its board.
var ErrScoreSize = errors.New("score vector length disagrees with board")

// ScoreVector holds, for every cell of a board, the depth-adjusted value of playing
// there, or Occupied.
type ScoreVector [game.Size]float32

// Record pairs a board with the scores of the moves available on it.
type Record struct {
	Board  game.Board
	Scores ScoreVector
}

// NewRecord validates scores against the board and builds a Record.
func NewRecord(b game.Board, scores []float32) (Record, error) {
	if len(scores) != len(b) {
		return Record{}, errors.Wrapf(ErrScoreSize, "board has %d cells, scores have %d", len(b), len(scores))
	}
	r := Record{Board: b}
	copy(r.Scores[:], scores)
	return r, nil
}

// Generate searches the whole game from the empty board.
// It returns the value of the root and every recorded position, in the order the
// positions were closed: a node is recorded after all of its children.
func Generate() (root float32, recs []Record) {
	return GenerateFrom(game.EmptyBoard)
}

// GenerateFrom searches from b, with the side to move inferred from the stone count.
// Depth is counted from b. A finished board yields its terminal value and no records.
func GenerateFrom(b game.Board) (root float32, recs []Record) {
	recs = make([]Record, 0, 1024)
	if b.IsMaxToMove() {
		root = maximize(b, 0, &recs)
	} else {
		root = minimize(b, 0, &recs)
	}
	return root, recs
}

// maximize is the MAX side of the search. out is the shared accumulator.
func maximize(b game.Board, depth int, out *[]Record) float32 {
	if game.HasWon(b, game.MinMark) {
		return MinWin + float32(depth)
	} else if !game.HasEmptyCell(b) {
		return DrawValue
	}

	var scores ScoreVector
	best := MinWin
	for i := 0; i < game.Size; i++ {
		if b[i] != game.Empty {
			scores[i] = Occupied
			continue
		}
		v := minimize(b.Play(i, game.MaxMark), depth+1, out)
		scores[i] = v
		if v > best {
			best = v
		}
	}

	*out = append(*out, Record{Board: b, Scores: scores})
	return best
}

// minimize mirrors maximize for MIN.
func minimize(b game.Board, depth int, out *[]Record) float32 {
	if game.HasWon(b, game.MaxMark) {
		return MaxWin - float32(depth)
	} else if !game.HasEmptyCell(b) {
		return DrawValue
	}

	var scores ScoreVector
	best := MaxWin
	for i := 0; i < game.Size; i++ {
		if b[i] != game.Empty {
			scores[i] = Occupied
			continue
		}
		v := maximize(b.Play(i, game.MinMark), depth+1, out)
		scores[i] = v
		if v < best {
			best = v
		}
	}

	*out = append(*out, Record{Board: b, Scores: scores})
	return best
}
