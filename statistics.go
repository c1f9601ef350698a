package tictac

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Statistics counts how the examples of a dataset were labelled, per side to move.
// It describes the composition of the data; it says nothing about a model.
type Statistics struct {
	Total     int
	MaxToMove int
	MinToMove int
	Branches  [branchCount]int
}

func makeStatistics(examples []Example) Statistics {
	s := Statistics{Total: len(examples)}
	for _, ex := range examples {
		if ex.Board.IsMaxToMove() {
			s.MaxToMove++
		} else {
			s.MinToMove++
		}
		s.Branches[ex.Branch]++
	}
	return s
}

// Count returns the number of examples labelled by b.
func (s Statistics) Count(b Branch) int { return s.Branches[b] }

// Write writes the statistics as a two column CSV.
func (s Statistics) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		{"total", strconv.Itoa(s.Total)},
		{"max-to-move", strconv.Itoa(s.MaxToMove)},
		{"min-to-move", strconv.Itoa(s.MinToMove)},
	}
	for b := Branch(0); b < branchCount; b++ {
		records = append(records, []string{b.String(), strconv.Itoa(s.Branches[b])})
	}
	if err := cw.WriteAll(records); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// Dump writes the statistics into filename.
func (s Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	return s.Write(f)
}
