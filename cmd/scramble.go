package cmd

import (
	"fmt"

	"github.com/rybkr/puzzle15/internal/scramble"
	"github.com/spf13/cobra"
)

var (
	scrambleMoves int
	scrambleSeed  int64
	showMoves     bool
)

func init() {
	scrambleCmd := &cobra.Command{
		Use:   "scramble",
		Short: "Generate a scrambled board",
		Long: `Generate a board by walking random legal moves away from the solved
position. The result is always solvable.

Examples:
  puzzle15 scramble
  puzzle15 scramble -n 40 --seed 7
  puzzle15 scramble --show-moves`,
		RunE: runScramble,
	}

	scrambleCmd.Flags().IntVarP(&scrambleMoves, "moves", "n", scramble.DefaultMoves, "Number of scramble moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Seed for reproducible scrambles (0 = random)")
	scrambleCmd.Flags().BoolVar(&showMoves, "show-moves", false, "Print the scramble sequence as well")

	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	opts := &scramble.Options{Moves: scrambleMoves, Seed: scrambleSeed}
	b, moves, err := scramble.New(opts).Generate()
	if err != nil {
		return err
	}

	fmt.Print(b)
	if showMoves {
		fmt.Println()
		for i, m := range moves {
			fmt.Printf("%3d. %s\n", i+1, m)
		}
	}
	return nil
}
