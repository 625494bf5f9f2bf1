package cmd

import (
	"github.com/spf13/cobra"

	"reqtrace.dev/pkg/reqtrace/internal/domain"
	m "reqtrace.dev/pkg/reqtrace/internal/model"
)

// fileCmd represents the file command.
var fileCmd = newFileCmd()

func newFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file PATH",
		Short: "List the requirements of a source file",
		Long: `List the requirements referencing a source file, split into requirements
covering the whole file and requirements bound to functions, classes or ranges.
PATH is relative to the source root.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.FileRequirements(cmd.Context(), domain.FileArgs{
				LoadArgs: loadArgs(nil),
				Path:     m.Path(args[0]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(fileCmd)
}
