package cmd

import (
	"github.com/spf13/cobra"

	"gooze.dev/pkg/hardlit/internal/domain"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [reports-dir]",
		Short: "Print the violations recorded by earlier runs",
		Long: `Print the hardcoded strings stored in a reports directory (default: --output).
Unmerged shard_* subdirectories are read when the directory itself holds no reports.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsDir(args)})
		},
	}
}

var viewCmd = newViewCmd()

func init() {
	rootCmd.AddCommand(viewCmd)
}
