package main

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tttgen",
		Short: "Tic-tac-toe minimax dataset generator",
		Long: heredoc.Doc(`
			tttgen enumerates every tic-tac-toe position by exhaustive minimax
			search, removes duplicate positions and labels each one with the
			move a policy network should learn.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", "", "YAML configuration file")

	root.AddCommand(Generate())
	root.AddCommand(Inspect())
	root.AddCommand(Dot())

	return root
}
