// Package output renders finalized threads to the console.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/itsmostafa/threador/internal/thread"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

var (
	// chromeStyle for rules, headers and annotation lists
	chromeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	// postStyle for post bodies
	postStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8be9fd"))

	// compliantStyle for lengths comfortably under the limit
	compliantStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#b9f29f"))

	// nearLimitStyle for lengths within NearLimitMargin of the limit
	nearLimitStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f1fa8c"))

	// violationStyle for lengths over the limit
	violationStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff0000"))

	// boxStyle for the summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#999999")).
			Padding(0, 1)

	// titleStyle for the summary title
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8be9fd"))
)

// ColorMode selects how styles are rendered.
type ColorMode int

const (
	// ColorAuto detects color support from the output terminal
	ColorAuto ColorMode = iota
	// ColorAlways renders truecolor even when output is piped
	ColorAlways
	// ColorNever renders plain text
	ColorNever
)

// SetColorMode configures color rendering for all styles.
func SetColorMode(mode ColorMode) {
	switch mode {
	case ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Options controls what FormatPosts prints.
type Options struct {
	// PrintAnnotations lists each post's annotations under its body
	PrintAnnotations bool

	// OversizedOnly skips posts within the length limit
	OversizedOnly bool

	// Width is the terminal width used for rules and alignment
	Width int
}

func (o Options) width() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

// FormatPosts renders every post of a thread, honoring OversizedOnly.
func FormatPosts(w io.Writer, posts []*thread.Post, opts Options) {
	for _, p := range posts {
		if opts.OversizedOnly && !p.Oversized() {
			continue
		}
		FormatPost(w, p, opts)
	}
}

// FormatPost renders a single post: a rule, the body, optional
// annotations and a right-aligned length line.
func FormatPost(w io.Writer, p *thread.Post, opts Options) {
	width := opts.width()

	FormatRule(w, width)
	fmt.Fprintln(w, renderLines(postStyle, p.Body))

	if opts.PrintAnnotations && len(p.Annotations.Raw) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, chromeStyle.Render("annotations"))
		for _, a := range p.Annotations.Raw {
			fmt.Fprintln(w, chromeStyle.Render("- "+a))
		}
	}

	length := lengthStyle(p.Status()).Render(fmt.Sprintf("length = %d chars", p.Length))
	fmt.Fprintln(w, lipgloss.PlaceHorizontal(width, lipgloss.Right, length))
}

// FormatRule writes a horizontal rule of the given width.
func FormatRule(w io.Writer, width int) {
	if width <= 0 {
		width = DefaultWidth
	}
	fmt.Fprintln(w, chromeStyle.Render(strings.Repeat("─", width)))
}

// FormatSummary renders thread statistics in a rounded box followed by the
// numbered list of every annotation.
func FormatSummary(w io.Writer, s thread.Summary) {
	lines := []string{
		titleStyle.Render("Thread summary"),
		fmt.Sprintf("%s %d", chromeStyle.Render("Posts:"), s.Total),
		fmt.Sprintf("%s %s", chromeStyle.Render("Over limit:"), countStyle(s.OverLimit, violationStyle).Render(fmt.Sprint(s.OverLimit))),
		fmt.Sprintf("%s %s", chromeStyle.Render("Near limit:"), countStyle(s.NearLimit, nearLimitStyle).Render(fmt.Sprint(s.NearLimit))),
	}
	if len(s.Sections) > 0 {
		lines = append(lines, fmt.Sprintf("%s %d", chromeStyle.Render("Sections:"), len(s.Sections)))
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))

	if len(s.Annotations) == 0 {
		fmt.Fprintln(w, "- no annotations")
		return
	}
	fmt.Fprintf(w, "- annotations (%d):\n", len(s.Annotations))
	for i, a := range s.Annotations {
		fmt.Fprintf(w, "    %d. %s\n", i+1, a)
	}
}

// FormatTOC renders the table of contents for sections of a thread with
// total posts.
func FormatTOC(w io.Writer, sections []thread.Section, total int) {
	fmt.Fprintln(w, renderLines(postStyle, thread.RenderTOC(sections, total)))
}

// renderLines styles each line on its own so multi-line text is not padded
// to a common width.
func renderLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

func lengthStyle(s thread.Status) lipgloss.Style {
	switch s {
	case thread.StatusOverLimit:
		return violationStyle
	case thread.StatusNearLimit:
		return nearLimitStyle
	default:
		return compliantStyle
	}
}

// countStyle highlights non-zero counts.
func countStyle(n int, style lipgloss.Style) lipgloss.Style {
	if n == 0 {
		return compliantStyle
	}
	return style
}
