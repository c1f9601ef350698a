package tictac

import (
	"github.com/chewxy/math32"
	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/minimax"
	"github.com/pkg/errors"
)

// ErrTolerance is returned for a tolerance that is not positive, or so loose
// that two different marks would compare equal.
var ErrTolerance = errors.New("tolerance must be in (0, 1]")

// marks are at least 1 apart, so anything up to 1 never merges distinct boards.
func validTolerance(tol float32) bool { return tol > 0 && tol <= 1 }

func approx(a, b, tol float32) bool {
	if a == b {
		return true
	}
	return math32.Abs(a-b) < tol
}

// ApproxEqual compares two boards cell by cell within tol.
func ApproxEqual(a, b game.Board, tol float32) bool {
	for i := range a {
		if !approx(a[i], b[i], tol) {
			return false
		}
	}
	return true
}

var marks = [...]float32{game.Empty, game.MaxMark, game.MinMark}

// snap moves every cell of b onto the nearest mark. A cell farther than tol
// from every mark is an ErrMark.
func snap(b game.Board, tol float32) (game.Board, error) {
	for i, v := range b {
		nearest := marks[0]
		for _, m := range marks[1:] {
			if math32.Abs(v-m) < math32.Abs(v-nearest) {
				nearest = m
			}
		}
		if !approx(v, nearest, tol) {
			return b, errors.Wrapf(game.ErrMark, "cell %d holds %v", i, v)
		}
		b[i] = nearest
	}
	return b, nil
}

// Deduplicate keeps the first record of every distinct board, in order.
// Records are returned as given; only the comparison uses the snapped board.
//
// Each board is snapped onto the marks within tol and keyed by its packed
// encoding. Marks are at least 1 apart, so this is the same equivalence as
// ApproxEqual, in linear time.
func Deduplicate(recs []minimax.Record, tol float32) ([]minimax.Record, error) {
	if !validTolerance(tol) {
		return nil, errors.Wrapf(ErrTolerance, "got %v", tol)
	}
	seen := make(map[uint16]struct{}, 1<<13)
	retVal := make([]minimax.Record, 0, len(recs)/32)
	for i, r := range recs {
		b, err := snap(r.Board, tol)
		if err != nil {
			return nil, errors.WithMessagef(err, "record %d", i)
		}
		k := b.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		retVal = append(retVal, r)
	}
	return retVal, nil
}

// DeduplicateLinear is Deduplicate by scanning every board seen so far.
// It is quadratic in the number of distinct boards and kept as the reference
// for the keyed version.
func DeduplicateLinear(recs []minimax.Record, tol float32) ([]minimax.Record, error) {
	if !validTolerance(tol) {
		return nil, errors.Wrapf(ErrTolerance, "got %v", tol)
	}
	var retVal []minimax.Record
	for i, r := range recs {
		if _, err := snap(r.Board, tol); err != nil {
			return nil, errors.WithMessagef(err, "record %d", i)
		}
		if !present(retVal, r.Board, tol) {
			retVal = append(retVal, r)
		}
	}
	return retVal, nil
}

func present(uniques []minimax.Record, b game.Board, tol float32) bool {
	for _, u := range uniques {
		if ApproxEqual(u.Board, b, tol) {
			return true
		}
	}
	return false
}
