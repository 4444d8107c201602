// Package main implements the tweec CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tweec/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tweec [flags] <input>...",
	Short: "Twee story compiler",
	Long:  "tweec compiles Twee v3 stories into playable Twine 2 HTML files.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  compileExecution,
}

func init() {
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|always|ansi|never)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
