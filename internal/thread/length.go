package thread

import (
	"strings"
	"unicode/utf8"
)

// URLPlaceholder stands in for every URL-like token when estimating length.
// Its width matches the fixed display width of a shortened link.
var URLPlaceholder = strings.Repeat("x", 13)

// EstimateLength approximates the transmitted length of text. URL-like
// tokens count as a fixed-width shortened link; everything else counts one
// per code point. Mentions, emoji and wide characters are not special-cased.
func EstimateLength(text string) int {
	if text == "" {
		return 0
	}

	tokens := strings.Split(text, " ")
	for i, tok := range tokens {
		if isURLLike(tok) {
			tokens[i] = URLPlaceholder
		}
	}
	return utf8.RuneCountInString(strings.Join(tokens, " "))
}

// isURLLike reports whether tok looks like a link: it has a dot, does not
// end with one, and has no consecutive dots.
func isURLLike(tok string) bool {
	return strings.Contains(tok, ".") &&
		!strings.HasSuffix(tok, ".") &&
		!strings.Contains(tok, "..")
}
