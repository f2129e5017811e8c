package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ldaviz",
		Short:         "Transform topic-model output into LDAvis client data",
		Long: `ldaviz turns the raw matrices of a fitted topic model into the derived
tables an LDAvis-style interactive client consumes: topic coordinates,
ranked per-topic terms across the relevance sweep, and the token table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newPrepareCommand())
	rootCmd.AddCommand(newTopicsCommand())

	return rootCmd
}
