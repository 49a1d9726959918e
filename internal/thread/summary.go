package thread

// Summary aggregates statistics over a finalized thread.
type Summary struct {
	Total       int       `json:"total"`
	OverLimit   int       `json:"over_limit"`
	NearLimit   int       `json:"near_limit"`
	Annotations []string  `json:"annotations,omitempty"`
	Sections    []Section `json:"sections,omitempty"`
}

// Summarize computes thread-wide statistics. Annotations are listed in the
// order they appear in the document.
func Summarize(posts []*Post) Summary {
	s := Summary{
		Total:    len(posts),
		Sections: Sections(posts),
	}
	for _, p := range posts {
		switch p.Status() {
		case StatusOverLimit:
			s.OverLimit++
		case StatusNearLimit:
			s.NearLimit++
		}
		s.Annotations = append(s.Annotations, p.Annotations.Raw...)
	}
	return s
}

// Oversized returns the posts that exceed CharLimit, keeping their order.
func Oversized(posts []*Post) []*Post {
	var over []*Post
	for _, p := range posts {
		if p.Oversized() {
			over = append(over, p)
		}
	}
	return over
}
