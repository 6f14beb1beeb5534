package sentiment

import (
	"regexp"
	"strings"
)

var (
	urlPattern        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	mentionPattern    = regexp.MustCompile(`[@#]\w+`)
	lineBreakPattern  = regexp.MustCompile(`[\r\n]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Clean normalizes raw comment text for scoring: URLs, then
// mention/hashtag tokens, then line breaks, then whitespace runs. The
// stripping passes must run before the whitespace collapse so the gaps
// they leave are folded away. Total function, never fails.
func Clean(raw string) string {
	text := urlPattern.ReplaceAllString(raw, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = lineBreakPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
