package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A two-phase 3x3x3 Rubik's cube solver",
	Long: `Cube applies, scrambles, simplifies, and solves moves on a 3x3x3
Rubik's cube using a two-phase IDA* solver.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(simplifyCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(serveCmd)
}
