package thread

import (
	"fmt"
	"strings"
)

// tocLinePrefix starts every section line of a rendered table of contents.
const tocLinePrefix = "tweets"

// Parse segments raw text into posts and finalizes them.
func Parse(raw string, opts Options) []*Post {
	return Finalize(Segment(raw, opts), opts)
}

// Finalize renders the table of contents into every post that asks for it,
// appends the index suffix when requested, and computes each post's length
// from its final body. The posts are modified in place and returned;
// Finalize runs once per thread.
func Finalize(posts []*Post, opts Options) []*Post {
	total := len(posts)

	if hasTOC(posts) {
		toc := RenderTOC(Sections(posts), total)
		for _, p := range posts {
			if p.Annotations.TableOfContents && p.parts != nil {
				p.Body = p.render(toc)
			}
		}
	}

	if opts.AddIndex {
		for i, p := range posts {
			p.Body += fmt.Sprintf("\n\n%d / %d", i+1, total)
		}
	}

	// Length must reflect the body after every mutation above.
	for _, p := range posts {
		p.Length = EstimateLength(p.Body)
	}

	return posts
}

func hasTOC(posts []*Post) bool {
	for _, p := range posts {
		if p.Annotations.TableOfContents {
			return true
		}
	}
	return false
}

// Sections collects the named sections of a thread in post order. Each
// section ends where the next one starts; the last one ends at the final
// post.
func Sections(posts []*Post) []Section {
	var sections []Section
	for i, p := range posts {
		if p.Annotations.SectionStart == "" {
			continue
		}
		sections = append(sections, Section{
			Name:       p.Annotations.SectionStart,
			StartIndex: i + 1,
		})
	}

	for i := range sections {
		if i+1 < len(sections) {
			sections[i].EndIndex = sections[i+1].StartIndex
		} else {
			sections[i].EndIndex = len(posts)
		}
	}
	return sections
}

// RenderTOC formats sections as a table of contents for a thread of total
// posts. Start indices are zero-padded to the width of the post count.
func RenderTOC(sections []Section, total int) string {
	width := indexWidth(total)

	lines := make([]string, 0, len(sections)+1)
	lines = append(lines, tocDirective)
	for _, s := range sections {
		lines = append(lines, fmt.Sprintf("%s %0*d - %d = %s", tocLinePrefix, width, s.StartIndex, s.EndIndex, s.Name))
	}
	return strings.Join(lines, "\n")
}

// indexWidth is the number of digits used for post numbers in the TOC.
func indexWidth(total int) int {
	switch {
	case total < 10:
		return 1
	case total < 100:
		return 2
	default:
		return 3
	}
}
