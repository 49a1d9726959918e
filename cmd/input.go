package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
	"github.com/itsmostafa/threador/internal/output"
	"github.com/itsmostafa/threador/internal/thread"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// stdinPath selects standard input as the document source.
const stdinPath = "-"

// envBoolFlag sets *dst from the environment variable env unless the flag
// was given explicitly on the command line.
func envBoolFlag(cmd *cobra.Command, flag, env string, dst *bool) error {
	if cmd.Flags().Changed(flag) {
		return nil
	}
	raw, ok := os.LookupEnv(env)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", env, raw, err)
	}
	*dst = v
	return nil
}

// documentPath picks the input path from args. With no argument the
// document is read from stdin, but only when stdin is not a terminal.
func documentPath(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return "", fmt.Errorf("no input: pass a file path or pipe a document on stdin")
	}
	return stdinPath, nil
}

// readDocument loads the whole document from path, or from stdin for "-".
func readDocument(path string, stdin io.Reader) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}

// loadThread reads the document named by args and parses it into posts.
func loadThread(cmd *cobra.Command, args []string) ([]*thread.Post, error) {
	path, err := documentPath(args, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}

	content, err := readDocument(path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded document", "path", path, "bytes", len(content))

	posts := thread.Parse(content, thread.Options{
		AddIndex:    addIndex,
		ImageHashes: imageHashes,
	})
	logger.Debug("parsed thread", "posts", len(posts), "over_limit", len(thread.Oversized(posts)))
	return posts, nil
}

// terminalWidth returns the width of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		if width, _, err := term.GetSize(f.Fd()); err == nil && width > 0 {
			return width
		}
	}
	return output.DefaultWidth
}
