package cmd

import (
	"github.com/itsmostafa/threador/internal/output"
	"github.com/itsmostafa/threador/internal/thread"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [path]",
	Short: "Print thread statistics and annotations",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := loadThread(cmd, args)
		if err != nil {
			return err
		}
		output.FormatSummary(cmd.OutOrStdout(), thread.Summarize(posts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
