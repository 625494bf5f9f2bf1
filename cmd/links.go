package cmd

import (
	"github.com/spf13/cobra"

	"reqtrace.dev/pkg/reqtrace/internal/domain"
)

// linksCmd represents the links command.
var linksCmd = newLinksCmd()

func newLinksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links UID [paths...]",
		Short: "List the source locations of a requirement",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Links(cmd.Context(), domain.LinksArgs{
				LoadArgs: loadArgs(args[1:]),
				UID:      args[0],
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(linksCmd)
}
