// Command tttgen generates the tic-tac-toe minimax dataset and inspects it.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := tttgen(); err != nil {
		logrus.Fatal(err)
	}
}

func tttgen() error {
	root := Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
