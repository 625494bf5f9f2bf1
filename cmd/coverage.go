package cmd

import (
	"github.com/spf13/cobra"

	"reqtrace.dev/pkg/reqtrace/internal/domain"
)

var tracedOnlyFlag bool

// coverageCmd represents the coverage command.
var coverageCmd = newCoverageCmd()

func newCoverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage [paths...]",
		Short: "Show how many lines of each file are covered by requirements",
		Long: `Show per-file requirement coverage. A line is covered when it lies inside a
function, class or line range documented by at least one requirement.

` + pathPatternsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Coverage(cmd.Context(), domain.CoverageArgs{
				LoadArgs:   loadArgs(args),
				OnlyTraced: tracedOnlyFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&tracedOnlyFlag, tracedFlagName, false, "only list files with requirements or markers")

	return cmd
}

func init() {
	rootCmd.AddCommand(coverageCmd)
}
