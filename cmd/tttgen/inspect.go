package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/gorgonia/tictac"
	"github.com/gorgonia/tictac/game"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// loadDataset loads the dataset named by --input, or the default data file.
func loadDataset(cmd *cobra.Command) (*tictac.Dataset, error) {
	conf, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	input, err := datasetPath(cmd, "input")
	if err != nil {
		return nil, err
	}
	return tictac.Load(input, conf.Tolerance)
}

// parseBoard reads 9 comma separated cells written as x, o or . (or 1, -1, 0).
func parseBoard(s string) (game.Board, error) {
	fields := strings.Split(s, ",")
	cells := make([]float32, len(fields))
	for i, f := range fields {
		switch f = strings.TrimSpace(strings.ToLower(f)); f {
		case "x":
			cells[i] = game.MaxMark
		case "o":
			cells[i] = game.MinMark
		case ".", "_":
			cells[i] = game.Empty
		default:
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return game.Board{}, errors.Wrapf(err, "cell %d", i)
			}
			cells[i] = float32(v)
		}
	}
	return game.NewBoard(cells)
}

func Inspect() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [board]",
		Short: "Show the scores and label of a position",
		Long: heredoc.Doc(`
			Looks a position up in a generated dataset. The board is given as 9
			comma separated cells in row major order, x for MAX, o for MIN and
			. for empty. Without a board the two opening spot checks are shown.
		`),
		Example: "  tttgen inspect x,x,.,.,o,o,.,.,.",
		Args:    cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDataset(cmd)
			if err != nil {
				return err
			}

			boards := []game.Board{game.CenterOpening, game.LastCornerOpening}
			if len(args) == 1 {
				b, err := parseBoard(args[0])
				if err != nil {
					return err
				}
				boards = []game.Board{b}
			}

			for _, b := range boards {
				ex, ok := d.Lookup(b)
				if !ok {
					fmt.Printf("%v\nnot in the dataset (finished or unreachable)\n\n", b)
					continue
				}
				scores, _ := d.Scores(b)
				fmt.Printf("%v", b)
				fmt.Printf("to move: %v  value: %v  label: %v @ %d\n", b.ToMove(), ex.Value, ex.Branch, ex.Policy.Target())
				fmt.Printf("scores: %v\n", scores)
				fmt.Printf("policy: %v\n\n", ex.Policy)
			}
			return nil
		},
	}
	cmd.Flags().StringP("input", "i", "", "Dataset file (default $XDG_DATA_HOME/tictac/positions.gob)")
	return cmd
}

func Dot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Render the opening positions as a graphviz graph",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDataset(cmd)
			if err != nil {
				return err
			}
			ply, _ := cmd.Flags().GetInt("ply")
			dot, err := d.ToDot(ply)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(os.Stdout, dot)
			return err
		},
	}
	cmd.Flags().StringP("input", "i", "", "Dataset file (default $XDG_DATA_HOME/tictac/positions.gob)")
	cmd.Flags().Int("ply", 2, "Include positions with at most this many stones")
	return cmd
}
