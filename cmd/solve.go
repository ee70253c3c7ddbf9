package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rybkr/puzzle15/internal/board"
	"github.com/rybkr/puzzle15/internal/solver"
	"github.com/spf13/cobra"
)

var (
	startFile    string
	goalFile     string
	maxDepth     int
	solveTimeout time.Duration
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the shortest move sequence between two boards",
		Long: `Find the minimum-length sequence of slides transforming one board into
another. Boards use the text grid format, one cell per slot, blank for
the empty cell:

  |  1 |  2 |  3 |  4 |
  |  5 |  6 |  7 |  8 |
  |  9 | 10 | 11 | 12 |
  | 13 | 14 | 15 |    |

The goal defaults to the solved board.

Examples:
  puzzle15 solve --start scrambled.txt
  puzzle15 solve --start a.txt --goal b.txt --max-depth 40
  cat scrambled.txt | puzzle15 solve`,
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&startFile, "start", "s", "", "Start board file (default: stdin)")
	solveCmd.Flags().StringVarP(&goalFile, "goal", "g", "", "Goal board file (default: the solved board)")
	solveCmd.Flags().IntVar(&maxDepth, "max-depth", solver.DefaultMaxDepth, "Maximum path length to search")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Abort the search after this long (0 = no timeout)")

	rootCmd.AddCommand(solveCmd)
}

// readBoard parses a board from a file, or stdin for "" and "-".
func readBoard(path string) (*board.Board, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return board.Parse(string(data))
}

func runSolve(cmd *cobra.Command, args []string) error {
	start, err := readBoard(startFile)
	if err != nil {
		return fmt.Errorf("start board: %w", err)
	}
	goal := board.New()
	if goalFile != "" {
		if goal, err = readBoard(goalFile); err != nil {
			return fmt.Errorf("goal board: %w", err)
		}
	}

	opts := solver.DefaultOptions()
	opts.MaxDepth = maxDepth
	opts.Timeout = solveTimeout

	moves, err := solver.New(start, goal, opts).Solve()
	if err != nil {
		return err
	}

	fmt.Printf("Solved in %d moves:\n", len(moves))
	for i, m := range moves {
		fmt.Printf("%3d. %s\n", i+1, m)
	}
	return nil
}
