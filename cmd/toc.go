package cmd

import (
	"github.com/itsmostafa/threador/internal/output"
	"github.com/itsmostafa/threador/internal/thread"
	"github.com/spf13/cobra"
)

var tocCmd = &cobra.Command{
	Use:   "toc [path]",
	Short: "Print the table of contents of a thread",
	Long:  `Print the table of contents built from the document's [section: NAME] annotations.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := loadThread(cmd, args)
		if err != nil {
			return err
		}
		output.FormatTOC(cmd.OutOrStdout(), thread.Sections(posts), len(posts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tocCmd)
}
