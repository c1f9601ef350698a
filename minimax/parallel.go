package minimax

import (
	"context"

	"github.com/gorgonia/tictac/game"
	"golang.org/x/sync/errgroup"
)

// GenerateParallel is Generate with the subtrees below the root searched concurrently.
// threads caps the number of concurrent subtrees; threads <= 0 means no cap.
func GenerateParallel(ctx context.Context, threads int) (root float32, recs []Record, err error) {
	return GenerateParallelFrom(ctx, game.EmptyBoard, threads)
}

// GenerateParallelFrom is GenerateFrom with the subtrees below b searched concurrently.
//
// Each subtree collects into its own slice. The slices are joined in move index
// order and b's own record goes last, which is exactly the order the sequential
// search produces, so the first occurrence of every board is the same.
func GenerateParallelFrom(ctx context.Context, b game.Board, threads int) (root float32, recs []Record, err error) {
	if ended, _ := game.Ended(b); ended {
		root, recs = GenerateFrom(b)
		return root, recs, nil
	}

	maxToMove := b.IsMaxToMove()
	mark := game.MinMark
	if maxToMove {
		mark = game.MaxMark
	}

	var values ScoreVector
	parts := make([][]Record, game.Size)

	g, ctx := errgroup.WithContext(ctx)
	if threads > 0 {
		g.SetLimit(threads)
	}
	for _, i := range game.EmptyCells(b) {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child := b.Play(i, mark)
			out := make([]Record, 0, 1024)
			if maxToMove {
				values[i] = minimize(child, 1, &out)
			} else {
				values[i] = maximize(child, 1, &out)
			}
			parts[i] = out
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return 0, nil, err
	}

	var n int
	for _, p := range parts {
		n += len(p)
	}
	recs = make([]Record, 0, n+1)
	for _, p := range parts {
		recs = append(recs, p...)
	}

	scores := values
	if maxToMove {
		root = MinWin
	} else {
		root = MaxWin
	}
	for i := range scores {
		if b[i] != game.Empty {
			scores[i] = Occupied
			continue
		}
		if maxToMove && scores[i] > root || !maxToMove && scores[i] < root {
			root = scores[i]
		}
	}
	recs = append(recs, Record{Board: b, Scores: scores})
	return root, recs, nil
}
