package cmd

import (
	"github.com/spf13/cobra"

	"gooze.dev/pkg/hardlit/internal/domain"
	m "gooze.dev/pkg/hardlit/internal/model"
)

// explainCmd represents the explain command.
var explainCmd = newExplainCmd()

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <file.swift>",
		Short: "Explain how every string literal of a file is judged",
		Long: `Print each string literal of a Swift file with the chain of enclosing
declarations, calls and collections, and the exemption that applies to it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Explain(cmd.Context(), domain.ExplainArgs{Path: m.Path(args[0])})
		},
	}
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
