package thread

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode"
)

const (
	// postSeparator is the canonical boundary between two posts.
	postSeparator = "\n\n\n"

	tocDirective     = "table of contents"
	sectionDirective = "section: "
	imageDirective   = "image: "
	commentDirective = "comment: "

	fingerprintLen = 10
)

// blankRunPattern matches runs of four or more newlines.
var blankRunPattern = regexp.MustCompile(`\n{4,}`)

// Segment splits raw text into posts. The returned posts are not finalized:
// TOC references are rendered as the bare header and Length is zero until
// Finalize runs.
func Segment(raw string, opts Options) []*Post {
	blocks := strings.Split(normalize(raw), postSeparator)

	posts := make([]*Post, 0, len(blocks))
	for _, block := range blocks {
		posts = append(posts, parseBlock(block, opts))
	}
	return posts
}

// normalize turns rule lines into blank-line separators and collapses every
// run of separators down to a single canonical one.
func normalize(raw string) string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if isRule(line) {
			out = append(out, "", "", "")
			continue
		}
		out = append(out, line)
	}

	content := strings.TrimSpace(strings.Join(out, "\n"))

	// A single regexp pass leaves no run of four or more behind.
	return blankRunPattern.ReplaceAllString(content, postSeparator)
}

// isRule reports whether line is a horizontal rule made of '-' or '─'.
func isRule(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if r != '-' && r != '─' {
			return false
		}
	}
	return true
}

// parseBlock builds one post from a raw block.
func parseBlock(block string, opts Options) *Post {
	post := &Post{}

	var body []part
	for _, line := range strings.Split(block, "\n") {
		if !strings.HasPrefix(line, "[") {
			body = append(body, part{text: line})
			continue
		}

		content := strings.TrimRight(strings.TrimLeft(line, "["), "]")
		if post.annotate(content, opts) {
			body = append(body, part{toc: true})
		}
	}

	post.parts = joinParts(body)
	post.Body = post.render(tocDirective)
	return post
}

// annotate dispatches a single annotation line. It returns true when the
// line is a TOC placeholder that belongs in the body.
func (p *Post) annotate(content string, opts Options) bool {
	a := &p.Annotations
	a.Raw = append(a.Raw, content)

	switch {
	case content == tocDirective:
		a.TableOfContents = true
		return true
	case strings.HasPrefix(content, sectionDirective):
		// Later section lines override earlier ones.
		a.SectionStart = strings.TrimPrefix(content, sectionDirective)
	case strings.HasPrefix(content, imageDirective):
		image := strings.TrimPrefix(content, imageDirective)
		if opts.ImageHashes {
			image = Fingerprint(image) + " " + image
		}
		a.Images = append(a.Images, image)
	case strings.HasPrefix(content, commentDirective):
		a.Comments = append(a.Comments, strings.TrimPrefix(content, commentDirective))
	default:
		a.Unknown = append(a.Unknown, content)
	}
	return false
}

// joinParts joins body lines with newlines, keeping TOC references as
// separate parts, and trims whitespace from both ends of the whole body.
func joinParts(lines []part) []part {
	var parts []part
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, part{text: cur.String()})
			cur.Reset()
		}
	}

	for i, line := range lines {
		if i > 0 {
			cur.WriteString("\n")
		}
		if line.toc {
			flush()
			parts = append(parts, line)
			continue
		}
		cur.WriteString(line.text)
	}
	flush()

	if len(parts) > 0 && !parts[0].toc {
		parts[0].text = strings.TrimLeftFunc(parts[0].text, unicode.IsSpace)
	}
	if n := len(parts); n > 0 && !parts[n-1].toc {
		parts[n-1].text = strings.TrimRightFunc(parts[n-1].text, unicode.IsSpace)
	}
	return parts
}

// Fingerprint returns a short, stable content hash of s.
func Fingerprint(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}
