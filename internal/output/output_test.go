package output

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/itsmostafa/threador/internal/thread"
)

func TestMain(m *testing.M) {
	SetColorMode(ColorNever)
	os.Exit(m.Run())
}

func TestFormatPost(t *testing.T) {
	posts := thread.Parse("hello\n[comment: nice]", thread.Options{})

	t.Run("with annotations", func(t *testing.T) {
		var buf bytes.Buffer
		FormatPost(&buf, posts[0], Options{PrintAnnotations: true, Width: 40})
		out := buf.String()

		for _, want := range []string{
			strings.Repeat("─", 40),
			"hello",
			"annotations",
			"- comment: nice",
			"length = 5 chars",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("without annotations", func(t *testing.T) {
		var buf bytes.Buffer
		FormatPost(&buf, posts[0], Options{Width: 40})
		if strings.Contains(buf.String(), "annotations") {
			t.Error("expected annotations to be hidden")
		}
	})

	t.Run("length right aligned", func(t *testing.T) {
		var buf bytes.Buffer
		FormatPost(&buf, posts[0], Options{Width: 40})
		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		last := lines[len(lines)-1]
		if len(last) != 40 || !strings.HasSuffix(last, "length = 5 chars") {
			t.Errorf("expected right aligned length line of width 40, got %q", last)
		}
	})
}

func TestFormatPostsOversizedOnly(t *testing.T) {
	long := strings.Repeat("z", thread.CharLimit+10)
	posts := thread.Parse("short\n\n\n"+long, thread.Options{})

	var buf bytes.Buffer
	FormatPosts(&buf, posts, Options{OversizedOnly: true})
	out := buf.String()

	if strings.Contains(out, "short") {
		t.Error("expected compliant post to be filtered out")
	}
	if !strings.Contains(out, long) {
		t.Error("expected oversized post to be printed")
	}
}

func TestFormatSummary(t *testing.T) {
	t.Run("with annotations", func(t *testing.T) {
		posts := thread.Parse("a\n[comment: one]\n\n\nb\n[image: two.png]", thread.Options{})
		var buf bytes.Buffer
		FormatSummary(&buf, thread.Summarize(posts))
		out := buf.String()

		for _, want := range []string{
			"Thread summary",
			"Posts: 2",
			"Over limit: 0",
			"- annotations (2):",
			"    1. comment: one",
			"    2. image: two.png",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected summary to contain %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("no annotations", func(t *testing.T) {
		posts := thread.Parse("a", thread.Options{})
		var buf bytes.Buffer
		FormatSummary(&buf, thread.Summarize(posts))
		if !strings.Contains(buf.String(), "- no annotations") {
			t.Errorf("expected no annotations line, got:\n%s", buf.String())
		}
	})
}

func TestFormatTOC(t *testing.T) {
	sections := []thread.Section{{Name: "Intro", StartIndex: 1, EndIndex: 2}}
	var buf bytes.Buffer
	FormatTOC(&buf, sections, 2)
	want := "table of contents\ntweets 1 - 2 = Intro\n"
	if buf.String() != want {
		t.Errorf("FormatTOC() = %q, want %q", buf.String(), want)
	}
}
