package cmd

import (
	"github.com/itsmostafa/threador/internal/output"
	"github.com/itsmostafa/threador/internal/thread"
	"github.com/spf13/cobra"
)

var noPrint bool
var noAnnotations bool
var noSummary bool
var oversizedOnly bool

var renderCmd = &cobra.Command{
	Use:   "render [path]",
	Short: "Print every post of a thread with its length",
	Long: `Print each post of the document with its annotations and estimated length,
followed by a summary of the thread. Reads stdin when no path is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := loadThread(cmd, args)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		width := terminalWidth(w)

		if !noPrint {
			output.FormatPosts(w, posts, output.Options{
				PrintAnnotations: !noAnnotations,
				OversizedOnly:    oversizedOnly,
				Width:            width,
			})
			if !noSummary {
				output.FormatRule(w, width)
			}
		}

		if !noSummary {
			output.FormatSummary(w, thread.Summarize(posts))
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&noPrint, "no-print", false, "Do not print posts")
	renderCmd.Flags().BoolVar(&noAnnotations, "no-annotations", false, "Do not print post annotations")
	renderCmd.Flags().BoolVar(&noSummary, "no-summary", false, "Do not print a thread summary")
	renderCmd.Flags().BoolVar(&oversizedOnly, "oversized-only", false, "Only print posts over the length limit")

	rootCmd.AddCommand(renderCmd)
}
