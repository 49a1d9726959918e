package thread

import "strings"

// CharLimit is the maximum transmitted length of a single post.
const CharLimit = 280

// NearLimitMargin is how close to CharLimit a post may get before it is
// reported as near the limit.
const NearLimitMargin = 15

// Options controls the optional transformations applied while parsing.
type Options struct {
	// AddIndex appends "N / TOTAL" to the end of every post body
	AddIndex bool

	// ImageHashes prefixes every image annotation with a short content fingerprint
	ImageHashes bool
}

// Post is one unit of output text.
type Post struct {
	Body        string      `json:"body"`
	Annotations Annotations `json:"annotations"`
	Length      int         `json:"length"`

	// parts holds the body as written, with TOC references kept separate
	// so they can be rendered once every section is known.
	parts []part
}

// Annotations holds the metadata extracted from the bracketed lines of a post.
type Annotations struct {
	Comments        []string `json:"comments,omitempty"`
	Images          []string `json:"images,omitempty"`
	Unknown         []string `json:"unknown,omitempty"`
	TableOfContents bool     `json:"table_of_contents,omitempty"`
	SectionStart    string   `json:"section_start,omitempty"`

	// Raw lists every annotation line in source order, brackets stripped.
	Raw []string `json:"raw,omitempty"`
}

// Section is a named run of posts, used to build the table of contents.
// StartIndex and EndIndex are 1-based post positions.
type Section struct {
	Name       string `json:"name"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
}

// Status classifies a finalized post against CharLimit.
type Status int

const (
	StatusOK Status = iota
	StatusNearLimit
	StatusOverLimit
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNearLimit:
		return "near limit"
	case StatusOverLimit:
		return "over limit"
	default:
		return "unknown"
	}
}

// Status reports how the post's length compares to CharLimit.
func (p *Post) Status() Status {
	switch {
	case p.Length > CharLimit:
		return StatusOverLimit
	case CharLimit-p.Length < NearLimitMargin:
		return StatusNearLimit
	default:
		return StatusOK
	}
}

// Oversized reports whether the post exceeds CharLimit.
func (p *Post) Oversized() bool {
	return p.Length > CharLimit
}

// part is a piece of a post body: either literal text or a reference to
// the table of contents.
type part struct {
	text string
	toc  bool
}

// render joins the body parts, substituting toc for every TOC reference.
func (p *Post) render(toc string) string {
	var sb strings.Builder
	for _, pt := range p.parts {
		if pt.toc {
			sb.WriteString(toc)
		} else {
			sb.WriteString(pt.text)
		}
	}
	return sb.String()
}
