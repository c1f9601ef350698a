package tictac

import (
	"github.com/gorgonia/tictac/game"
	"gorgonia.org/vecf32"
)

// Config configures the generation pipeline.
type Config struct {
	Name string `yaml:"name"`

	// Tolerance is the absolute difference under which two cell values are
	// considered equal, both when deduplicating boards and when matching draw scores.
	Tolerance float32 `yaml:"tolerance"`

	Parallel bool `yaml:"parallel"` // search root subtrees concurrently
	Threads  int  `yaml:"threads"`  // cap on concurrent subtrees, 0 means one per root move
}

// DefaultConfig is a sequential run with a tolerance well below the spacing of the marks.
func DefaultConfig() Config {
	return Config{
		Name:      "tictactoe",
		Tolerance: 1e-5,
	}
}

func (conf Config) IsValid() bool {
	return validTolerance(conf.Tolerance) &&
		conf.Threads >= 0
}

// TargetWeight is the weight put on the chosen move of a label.
const TargetWeight float32 = 1

// LabelVector is the training target for a board: zero everywhere except the move(s) to imitate.
type LabelVector [game.Size]float32

// Target returns the index carrying the highest weight.
func (l LabelVector) Target() int { return vecf32.Argmax(l[:]) }

// Weight is the total weight of the label.
func (l LabelVector) Weight() float32 { return vecf32.Sum(l[:]) }

// Branch names the policy that produced a label.
type Branch int

const (
	MaxWinBranch Branch = iota
	MinWinBranch
	DrawBranch
	LossBranch

	branchCount
)

func (b Branch) String() string {
	switch b {
	case MaxWinBranch:
		return "max-win"
	case MinWinBranch:
		return "min-win"
	case DrawBranch:
		return "draw"
	case LossBranch:
		return "loss"
	}
	return "unknown"
}

// Example is a labelled board.
type Example struct {
	Board  game.Board
	Policy LabelVector
	Value  float32 // minimax value of Board for the side to move
	Branch Branch
}
