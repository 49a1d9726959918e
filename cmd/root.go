package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/itsmostafa/threador/internal/output"
	"github.com/itsmostafa/threador/internal/version"
	"github.com/spf13/cobra"
)

var addIndex bool
var imageHashes bool
var forceColor bool
var noColor bool
var verbose bool

// logger is configured by the root command before any subcommand runs
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

var rootCmd = &cobra.Command{
	Use:   "threador",
	Short: "Parse, format and summarize post threads",
	Long: `Threador splits a plain-text document into a thread of posts, checks each post
against the 280 character limit and reports the annotations embedded in it.

Posts are separated by three blank lines or a line of dashes. Lines in
[brackets] are annotations: [section: NAME], [image: REF], [comment: TEXT]
and [table of contents].`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		// Environment variables provide defaults for flags left unset
		if err := envBoolFlag(cmd, "index", "THREADOR_INDEX", &addIndex); err != nil {
			return err
		}
		if err := envBoolFlag(cmd, "image-hashes", "THREADOR_IMAGE_HASHES", &imageHashes); err != nil {
			return err
		}
		if err := envBoolFlag(cmd, "color", "THREADOR_COLOR", &forceColor); err != nil {
			return err
		}

		if forceColor && noColor {
			return fmt.Errorf("--color and --no-color are mutually exclusive")
		}
		switch {
		case forceColor:
			output.SetColorMode(output.ColorAlways)
		case noColor:
			output.SetColorMode(output.ColorNever)
		}
		return nil
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("threador %s\n", version.String()))

	rootCmd.PersistentFlags().BoolVarP(&addIndex, "index", "i", false, "Append \"N / TOTAL\" to the end of each post")
	rootCmd.PersistentFlags().BoolVar(&imageHashes, "image-hashes", false, "Prefix image annotations with a content fingerprint")
	rootCmd.PersistentFlags().BoolVar(&forceColor, "color", false, "Use colors even when piped to another program")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
