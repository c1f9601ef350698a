package tictac

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/gorgonia/tictac/game"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/vecf32"
)

// Channels of the image encoding.
const (
	EmptyChannel = iota
	MaxChannel
	MinChannel

	Channels
)

// EncodeImage encodes a board as three 3x3 planes: empty cells, MAX's stones and MIN's stones.
func EncodeImage(b game.Board, prealloc []float32) []float32 {
	if len(prealloc) != Channels*game.Size {
		prealloc = make([]float32, Channels*game.Size)
	}
	for i := range prealloc {
		prealloc[i] = 0
	}
	for i, v := range b {
		var ch int
		switch v {
		case game.MaxMark:
			ch = MaxChannel
		case game.MinMark:
			ch = MinChannel
		default:
			ch = EmptyChannel
		}
		prealloc[ch*game.Size+i] = 1
	}
	return prealloc
}

// EncodeForMover encodes a board from the point of view of the side to move:
// its own stones are 1, the opponent's -1.
func EncodeForMover(b game.Board, prealloc []float32) []float32 {
	if len(prealloc) != game.Size {
		prealloc = make([]float32, game.Size)
	}
	copy(prealloc, b[:])
	if !b.IsMaxToMove() {
		vecf32.Scale(prealloc, -1)
	}
	return prealloc
}

// Stack stacks the boards and the labels of examples into two (n, 9) matrices.
func Stack(examples []Example) (boards, labels *tensor.Dense, err error) {
	if len(examples) == 0 {
		return nil, nil, errors.New("cannot stack an empty set of examples")
	}
	n := len(examples)
	boardsBacking := make([]float32, 0, n*game.Size)
	labelsBacking := make([]float32, 0, n*game.Size)
	for _, ex := range examples {
		boardsBacking = append(boardsBacking, ex.Board[:]...)
		labelsBacking = append(labelsBacking, ex.Policy[:]...)
	}
	boards = tensor.New(tensor.WithBacking(boardsBacking), tensor.WithShape(n, game.Size))
	labels = tensor.New(tensor.WithBacking(labelsBacking), tensor.WithShape(n, game.Size))
	return boards, labels, nil
}

// StackImages is Stack with the boards in the image encoding, shaped (n, 3, 3, 3).
func StackImages(examples []Example) (images, labels *tensor.Dense, err error) {
	if len(examples) == 0 {
		return nil, nil, errors.New("cannot stack an empty set of examples")
	}
	n := len(examples)
	const plane = Channels * game.Size
	imagesBacking := make([]float32, n*plane)
	labelsBacking := make([]float32, 0, n*game.Size)
	for i, ex := range examples {
		EncodeImage(ex.Board, imagesBacking[i*plane:(i+1)*plane])
		labelsBacking = append(labelsBacking, ex.Policy[:]...)
	}
	images = tensor.New(tensor.WithBacking(imagesBacking), tensor.WithShape(n, Channels, game.Side, game.Side))
	labels = tensor.New(tensor.WithBacking(labelsBacking), tensor.WithShape(n, game.Size))
	return images, labels, nil
}

func formatFloat(f float32) string { return strconv.FormatFloat(float64(f), 'g', -1, 32) }

// WriteCSV writes one row per example: 9 board cells, 9 scores, 9 label cells and the value.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, 3*game.Size+1)
	for _, prefix := range []string{"b", "s", "l"} {
		for i := 0; i < game.Size; i++ {
			header = append(header, prefix+strconv.Itoa(i))
		}
	}
	header = append(header, "value")
	if err := cw.Write(header); err != nil {
		return errors.WithStack(err)
	}

	row := make([]string, len(header))
	for i, ex := range d.Examples {
		scores := d.Records[i].Scores
		for j := 0; j < game.Size; j++ {
			row[j] = formatFloat(ex.Board[j])
			row[game.Size+j] = formatFloat(scores[j])
			row[2*game.Size+j] = formatFloat(ex.Policy[j])
		}
		row[3*game.Size] = formatFloat(ex.Value)
		if err := cw.Write(row); err != nil {
			return errors.WithStack(err)
		}
	}
	cw.Flush()
	return errors.WithStack(cw.Error())
}
