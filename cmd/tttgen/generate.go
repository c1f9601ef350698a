package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/gorgonia/tictac"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Generate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate, deduplicate and label every position",
		Long: heredoc.Doc(`
			Runs the full minimax search from the empty board and writes the
			deduplicated (board, scores) records as a gob file. Labels are
			recomputed from the scores whenever the file is loaded.

			With --csv the labelled examples are also written as CSV, one row
			per position: 9 board cells, 9 scores, 9 label cells and the value.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("parallel") {
				conf.Parallel, _ = cmd.Flags().GetBool("parallel")
			}
			if cmd.Flags().Changed("threads") {
				conf.Threads, _ = cmd.Flags().GetInt("threads")
			}

			output, err := datasetPath(cmd, "output")
			if err != nil {
				return err
			}

			s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
			s.Suffix = " searching..."
			s.Start()
			d, err := tictac.Build(cmd.Context(), conf)
			s.Stop()
			if err != nil {
				return err
			}

			if err = d.Save(output); err != nil {
				return err
			}
			logrus.WithField("file", output).Infof("Saved %d positions", d.Len())

			if path, _ := cmd.Flags().GetString("csv"); path != "" {
				if err = writeCSV(d, path); err != nil {
					return err
				}
				logrus.WithField("file", path).Info("Saved labelled examples")
			}

			if path, _ := cmd.Flags().GetString("stats"); path != "" {
				if err = d.Statistics.Dump(path); err != nil {
					return err
				}
			} else {
				fmt.Printf("root value %v, %d positions\n", d.Root, d.Len())
				return d.Statistics.Write(os.Stdout)
			}
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Dataset file (default $XDG_DATA_HOME/tictac/positions.gob)")
	cmd.Flags().String("csv", "", "Also write the labelled examples as CSV")
	cmd.Flags().String("stats", "", "Write label statistics as CSV instead of printing them")
	cmd.Flags().BoolP("parallel", "p", false, "Search the root subtrees concurrently")
	cmd.Flags().Int("threads", 0, "Cap on concurrent subtrees (0 = one per opening move)")

	return cmd
}

func writeCSV(d *tictac.Dataset, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	defer f.Close()
	return d.WriteCSV(f)
}
