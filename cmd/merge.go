package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/hardlit/internal/domain"
	m "gooze.dev/pkg/hardlit/internal/model"
)

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge [reports-dir]",
		Short: "Combine the reports of sharded runs",
		Long: `Collect the reports written by "hardlit run --shard I/N" into the reports
directory itself (default: --output). When a file appears in several shards the
shard directory that sorts last by name wins.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Merge(cmd.Context(), domain.MergeArgs{Reports: reportsDir(args)})
		},
	}
}

var mergeCmd = newMergeCmd()

func init() {
	rootCmd.AddCommand(mergeCmd)
}

// reportsDir returns the positional reports directory, falling back to --output.
func reportsDir(args []string) m.Path {
	if len(args) > 0 && args[0] != "" {
		return m.Path(args[0])
	}

	return m.Path(viper.GetString(outputFlagName))
}
