package cli

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a cube and display the result",
	Long: `Apply a sequence of moves to a solved 3x3x3 cube and display the
resulting state. This command does not solve the cube - it just applies
the moves and shows the result.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moves := args[0]

		alg, err := cube.ParseAlgorithm(moves)
		if err != nil {
			return fmt.Errorf("parsing moves: %w", err)
		}

		c := cube.NewSolvedCube()
		c.ApplyAlgorithm(alg)

		fmt.Printf("Applying moves: %s\n\n", moves)
		fmt.Println(c.UnfoldedString())
		fmt.Printf("Moves applied: %d\n", alg.Len())

		if c.IsSolved() {
			fmt.Println("Status: solved")
		} else {
			fmt.Println("Status: scrambled")
		}
		return nil
	},
}
