package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func resetFlags() {
	addIndex = false
	imageHashes = false
	forceColor = false
	noColor = false
	verbose = false
	noPrint = false
	noAnnotations = false
	noSummary = false
	oversizedOnly = false
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thread.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	return path
}

func TestRenderCommand(t *testing.T) {
	path := writeDocument(t, "hello\n[comment: first]\n\n\nworld")

	out, err := execute(t, "", "render", "--no-color", path)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{
		"hello",
		"world",
		"- comment: first",
		"length = 5 chars",
		"Thread summary",
		"- annotations (1):",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderCommandFlags(t *testing.T) {
	path := writeDocument(t, "one\n[comment: hidden]\n\n\ntwo")

	out, err := execute(t, "", "render", "--no-color", "--no-annotations", "--no-summary", "--index", path)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(out, "- comment: hidden") {
		t.Error("expected annotations to be hidden")
	}
	if strings.Contains(out, "Thread summary") {
		t.Error("expected summary to be hidden")
	}
	if !strings.Contains(out, "1 / 2") || !strings.Contains(out, "2 / 2") {
		t.Errorf("expected index suffixes, got:\n%s", out)
	}
}

func TestRenderFromStdin(t *testing.T) {
	out, err := execute(t, "piped post", "render", "--no-color", "--no-summary")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "piped post") {
		t.Errorf("expected stdin document in output, got:\n%s", out)
	}
}

func TestRenderMissingFile(t *testing.T) {
	_, err := execute(t, "", "render", filepath.Join(t.TempDir(), "missing.md"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read document") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSummaryCommand(t *testing.T) {
	path := writeDocument(t, strings.Repeat("x", 300)+"\n\n\nshort")

	out, err := execute(t, "", "summary", "--no-color", path)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if !strings.Contains(out, "Over limit: 1") {
		t.Errorf("expected one post over the limit, got:\n%s", out)
	}
	if strings.Contains(out, "short\n") {
		t.Error("expected summary command not to print posts")
	}
}

func TestTOCCommand(t *testing.T) {
	path := writeDocument(t, "[section: Intro]\na\n\n\nb\n\n\n[section: Outro]\nc")

	out, err := execute(t, "", "toc", "--no-color", path)
	if err != nil {
		t.Fatalf("toc failed: %v", err)
	}
	want := "table of contents\ntweets 1 - 3 = Intro\ntweets 3 - 3 = Outro\n"
	if out != want {
		t.Errorf("toc output = %q, want %q", out, want)
	}
}

func TestColorFlagsExclusive(t *testing.T) {
	_, err := execute(t, "x", "summary", "--color", "--no-color")
	if err == nil {
		t.Fatal("expected error for --color with --no-color")
	}
	noColor = false
	forceColor = false
}

func TestEnvBoolFlag(t *testing.T) {
	newCmd := func() *cobra.Command {
		c := &cobra.Command{Use: "test"}
		c.Flags().Bool("index", false, "")
		return c
	}

	t.Run("env sets default", func(t *testing.T) {
		t.Setenv("THREADOR_TEST_BOOL", "true")
		var v bool
		if err := envBoolFlag(newCmd(), "index", "THREADOR_TEST_BOOL", &v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v {
			t.Error("expected value from environment")
		}
	})

	t.Run("explicit flag wins", func(t *testing.T) {
		t.Setenv("THREADOR_TEST_BOOL", "true")
		c := newCmd()
		if err := c.Flags().Set("index", "false"); err != nil {
			t.Fatal(err)
		}
		var v bool
		if err := envBoolFlag(c, "index", "THREADOR_TEST_BOOL", &v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v {
			t.Error("expected explicit flag to override environment")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("THREADOR_TEST_BOOL", "maybe")
		var v bool
		err := envBoolFlag(newCmd(), "index", "THREADOR_TEST_BOOL", &v)
		if err == nil || !strings.Contains(err.Error(), "THREADOR_TEST_BOOL") {
			t.Errorf("expected error naming the variable, got %v", err)
		}
	})

	t.Run("unset", func(t *testing.T) {
		var v bool
		if err := envBoolFlag(newCmd(), "index", "THREADOR_TEST_UNSET", &v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v {
			t.Error("expected default to be kept")
		}
	})
}

func TestDocumentPath(t *testing.T) {
	path, err := documentPath([]string{"a.md"}, strings.NewReader(""))
	if err != nil || path != "a.md" {
		t.Errorf("documentPath(a.md) = %q, %v", path, err)
	}

	path, err = documentPath(nil, strings.NewReader("piped"))
	if err != nil || path != stdinPath {
		t.Errorf("documentPath(nil) = %q, %v, want %q", path, err, stdinPath)
	}
}
