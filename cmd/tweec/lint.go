package main

import "github.com/spf13/cobra"

// lintCmd is the subcommand form of --lint.
var lintCmd = &cobra.Command{
	Use:   "lint [flags] <input>...",
	Short: "Check stories without producing HTML output",
	Args:  cobra.MinimumNArgs(1),
	RunE:  lintExecution,
}

func lintExecution(cmd *cobra.Command, args []string) error {
	if err := cmd.Flags().Set("lint", "true"); err != nil {
		return err
	}
	return compileExecution(cmd, args)
}

func init() {
	addCompileFlags(lintCmd)
}
