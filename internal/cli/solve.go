package cli

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled 3x3x3 cube using the two-phase algorithm.
The scramble should be provided as a string of moves.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := args[0]
		headless, _ := cmd.Flags().GetBool("headless")
		orientationPath, _ := cmd.Flags().GetString("orientation-table")
		permutationPath, _ := cmd.Flags().GetString("permutation-table")

		alg, err := cube.ParseAlgorithm(scramble)
		if err != nil {
			return fmt.Errorf("parsing scramble: %w", err)
		}

		c := cube.NewSolvedCube()
		c.ApplyAlgorithm(alg)

		if !headless {
			fmt.Printf("Solving cube with scramble: %s\n\n", scramble)
			fmt.Printf("Cube state after scramble:\n%s\n", c.UnfoldedString())
		}

		result := cube.TwoPhaseSolve(c, orientationPath, permutationPath)
		c.ApplyAlgorithm(result.Solution)

		if headless {
			fmt.Print(result.Solution.String())
			return nil
		}

		fmt.Printf("Solution: %s\n", result.Solution.String())
		fmt.Printf("Moves: %d\n", result.Solution.Len())
		fmt.Printf("Time: %v\n", result.Duration)
		if !c.IsSolved() {
			return fmt.Errorf("internal error: solution did not solve the cube")
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().Bool("headless", false, "output only space-separated moves for programmatic use")
	solveCmd.Flags().String("orientation-table", cube.DefaultOrientationTablePath, "path to the corner-orientation table file")
	solveCmd.Flags().String("permutation-table", cube.DefaultPermutationTablePath, "path to the corner-permutation table file")
}
