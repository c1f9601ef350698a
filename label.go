package tictac

import (
	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/minimax"
	"gorgonia.org/vecf32"
)

// Smallest win magnitudes: a win found at the deepest possible ply.
const (
	SmallestMaxWin float32 = 1
	BiggestMinWin  float32 = -1
)

// Encode converts the scores of a position into the label a policy should learn.
//
// A side that can win picks its fastest win. Otherwise it picks the first
// drawing move, and when every move loses, the first empty cell. Ties always go to
// the lowest index; there is no randomness.
func Encode(r minimax.Record, tol float32) (LabelVector, Branch) {
	b, s := r.Board, r.Scores

	var draws, maxWins, minWins int
	for i := range b {
		if b[i] != game.Empty {
			continue
		}
		switch {
		case approx(s[i], minimax.DrawValue, tol):
			draws++
		case s[i] >= SmallestMaxWin:
			maxWins++
		case s[i] <= BiggestMinWin:
			minWins++
		}
	}

	maxToMove := b.IsMaxToMove()
	switch {
	case maxToMove && maxWins > 0:
		return maxWinLabel(s, maxWins), MaxWinBranch
	case !maxToMove && minWins > 0:
		return minWinLabel(s, minWins), MinWinBranch
	case draws > 0:
		return drawLabel(b, s, tol), DrawBranch
	default:
		return lossLabel(b), LossBranch
	}
}

// maxWinLabel marks the index of the highest score. The comparison runs over
// every index, occupied ones included, and stops once wins updates happened.
func maxWinLabel(s minimax.ScoreVector, wins int) (retVal LabelVector) {
	var found int
	fastest := SmallestMaxWin - minimax.DepthAdvantage
	for i := 0; i < game.Size && found < wins; i++ {
		if s[i] > fastest {
			fastest = s[i]
			retVal = LabelVector{}
			retVal[i] = TargetWeight
			found++
		}
	}
	return retVal
}

// minWinLabel is maxWinLabel for MIN.
func minWinLabel(s minimax.ScoreVector, wins int) (retVal LabelVector) {
	var found int
	fastest := BiggestMinWin + minimax.DepthAdvantage
	for i := 0; i < game.Size && found < wins; i++ {
		if s[i] < fastest {
			fastest = s[i]
			retVal = LabelVector{}
			retVal[i] = TargetWeight
			found++
		}
	}
	return retVal
}

func drawLabel(b game.Board, s minimax.ScoreVector, tol float32) (retVal LabelVector) {
	for i := range b {
		if b[i] == game.Empty && approx(s[i], minimax.DrawValue, tol) {
			retVal[i] = TargetWeight
			break
		}
	}
	return retVal
}

// lossLabel takes the first empty cell.
func lossLabel(b game.Board) (retVal LabelVector) {
	for i := range b {
		if b[i] == game.Empty {
			retVal[i] = TargetWeight
			break
		}
	}
	return retVal
}

// Value is the minimax value of the recorded board for the side to move:
// the best score over its empty cells.
func Value(r minimax.Record) float32 {
	legal := make([]float32, 0, game.Size)
	for i, v := range r.Board {
		if v == game.Empty {
			legal = append(legal, r.Scores[i])
		}
	}
	if len(legal) == 0 {
		return minimax.DrawValue
	}
	if r.Board.IsMaxToMove() {
		return vecf32.MaxOf(legal)
	}
	return vecf32.MinOf(legal)
}

// EncodeAll labels every record, keeping order and length.
func EncodeAll(recs []minimax.Record, tol float32) []Example {
	retVal := make([]Example, len(recs))
	for i, r := range recs {
		policy, branch := Encode(r, tol)
		retVal[i] = Example{
			Board:  r.Board,
			Policy: policy,
			Value:  Value(r),
			Branch: branch,
		}
	}
	return retVal
}
