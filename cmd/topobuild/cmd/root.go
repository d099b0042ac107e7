// Package cmd provides the command-line interface for topobuild, a tool
// that builds a UniTorus or Cake topology from a .env-style config file and
// prints a summary of the result.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "topobuild",
	Short: "topobuild builds a network topology from a config file and reports its shape.",
	Long: `topobuild reads a .env-style key=value config file, builds the ` +
		`topology it names (unitorus or cake), and prints a summary: node ` +
		`count, channel count, and (for unitorus) capacity.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
