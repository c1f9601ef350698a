// Package tictac builds a supervised learning dataset for tic-tac-toe.
//
// Every position is enumerated by exhaustive minimax search (package minimax),
// duplicates are removed, and each position gets a one-hot label naming the
// move a policy should imitate.
package tictac

import (
	"context"
	"encoding/gob"
	"io"
	"os"
	"time"

	"github.com/gorgonia/tictac/game"
	"github.com/gorgonia/tictac/minimax"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Dataset is the deduplicated, labelled output of a search.
type Dataset struct {
	Root     float32          // value of the empty board
	Records  []minimax.Record // one per distinct board, first seen order
	Examples []Example        // Records labelled, same order
	Statistics

	index map[uint16]int
}

func newDataset(root float32, recs []minimax.Record, tol float32) *Dataset {
	d := &Dataset{
		Root:     root,
		Records:  recs,
		Examples: EncodeAll(recs, tol),
		index:    make(map[uint16]int, len(recs)),
	}
	for i, r := range recs {
		d.index[r.Board.Key()] = i
	}
	d.Statistics = makeStatistics(d.Examples)
	return d
}

// Build runs the search, removes duplicates and labels the result.
func Build(ctx context.Context, conf Config) (*Dataset, error) {
	if !conf.IsValid() {
		return nil, errors.Errorf("invalid config %+v", conf)
	}
	log := logrus.WithField("dataset", conf.Name)

	start := time.Now()
	var root float32
	var recs []minimax.Record
	if conf.Parallel {
		var err error
		if root, recs, err = minimax.GenerateParallel(ctx, conf.Threads); err != nil {
			return nil, errors.WithMessage(err, "search failed")
		}
	} else {
		root, recs = minimax.Generate()
	}
	log.WithFields(logrus.Fields{
		"positions": len(recs),
		"root":      root,
		"took":      time.Since(start),
	}).Info("All positions generated")

	start = time.Now()
	unique, err := Deduplicate(recs, conf.Tolerance)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"unique": len(unique),
		"took":   time.Since(start),
	}).Info("Duplicates removed")

	d := newDataset(root, unique, conf.Tolerance)
	log.WithFields(logrus.Fields{
		"max-win": d.Count(MaxWinBranch),
		"min-win": d.Count(MinWinBranch),
		"draw":    d.Count(DrawBranch),
		"loss":    d.Count(LossBranch),
	}).Debug("Labels encoded")
	return d, nil
}

// Lookup finds the labelled example for b.
func (d *Dataset) Lookup(b game.Board) (Example, bool) {
	i, ok := d.index[b.Key()]
	if !ok {
		return Example{}, false
	}
	return d.Examples[i], true
}

// Scores finds the recorded score vector of b.
func (d *Dataset) Scores(b game.Board) (minimax.ScoreVector, bool) {
	i, ok := d.index[b.Key()]
	if !ok {
		return minimax.ScoreVector{}, false
	}
	return d.Records[i].Scores, true
}

// Len is the number of distinct positions.
func (d *Dataset) Len() int { return len(d.Records) }

// archive is what gets persisted. Labels are cheap to recompute, so only the
// search output is stored.
type archive struct {
	Root    float32
	Records []minimax.Record
}

// Encode writes the search output of d as a gob stream.
func (d *Dataset) Encode(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(archive{Root: d.Root, Records: d.Records}); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Decode reads a gob stream written by Encode, validates every record and labels them with tol.
func Decode(r io.Reader, tol float32) (*Dataset, error) {
	if !validTolerance(tol) {
		return nil, errors.Wrapf(ErrTolerance, "got %v", tol)
	}
	var a archive
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&a); err != nil {
		return nil, errors.WithStack(err)
	}
	for i, rec := range a.Records {
		if _, err := game.NewBoard(rec.Board[:]); err != nil {
			return nil, errors.WithMessagef(err, "record %d", i)
		}
	}
	return newDataset(a.Root, a.Records, tol), nil
}

// Save the dataset into filename.
func (d *Dataset) Save(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	return d.Encode(f)
}

// Load a dataset from filename.
func Load(filename string, tol float32) (*Dataset, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	return Decode(f, tol)
}
