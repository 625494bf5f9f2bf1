package cmd

import (
	"github.com/spf13/cobra"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate requirement and source cross references",
		Long: `Load the requirement manifest and scan the sources, then report every
dangling file reference, unknown requirement in a source marker, unresolved
function or class binding and invalid line range.

` + pathPatternsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Check(cmd.Context(), loadArgs(args))
		},
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
