package cli

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/spf13/cobra"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [moves]",
	Short: "Simplify a sequence of moves",
	Long: `Simplify a sequence of moves by combining consecutive same-face moves,
commuting and combining moves across opposite faces, and dropping cancellations.

Examples:
  cube simplify "R R"           # Outputs: R2
  cube simplify "R R'"          # Outputs: (empty - moves cancel)
  cube simplify "R L R"         # Outputs: R2 L
  cube simplify "R U R' U'"     # Outputs: R U R' U' (no simplification possible)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moves := args[0]

		alg, err := cube.ParseAlgorithm(moves)
		if err != nil {
			return fmt.Errorf("parsing moves: %w", err)
		}

		simplified := cube.Simplify(alg)

		fmt.Printf("Original:   %s (%d moves)\n", alg.String(), alg.Len())
		if simplified.Len() == 0 {
			fmt.Println("Simplified: (empty - all moves cancel out)")
		} else {
			fmt.Printf("Simplified: %s (%d moves)\n", simplified.String(), simplified.Len())
		}

		if alg.Len() != simplified.Len() {
			fmt.Printf("Saved %d move(s)\n", alg.Len()-simplified.Len())
		}

		return nil
	},
}

