package cli

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/spf13/cobra"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Scramble generates a random sequence of moves that never immediately
repeats or un-does the previous twist, suitable for practicing solves.

Examples:
  cube scramble
  cube scramble --length 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		length, _ := cmd.Flags().GetInt("length")
		if length <= 0 {
			return fmt.Errorf("length must be positive, got %d", length)
		}

		alg := cube.RandomScramble(length)
		fmt.Println(alg.String())
		return nil
	},
}

func init() {
	scrambleCmd.Flags().IntP("length", "n", 25, "number of moves in the scramble")
}
