// Package normalize strips noise from résumé text before it is vectorized.
package normalize

import (
	"regexp"
	"strings"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order. RT and cc are removed wherever they occur, including
// inside words, which is how the vectorizer vocabulary was built. Hashtags and mentions must be consumed before the
// punctuation rule, otherwise '#' and '@' would be stripped on their own and the
// rest of the word would survive.
var rules = []rule{
	{regexp.MustCompile(`http\S*`), " "},
	{regexp.MustCompile(`RT|cc`), " "},
	{regexp.MustCompile(`#\S+`), " "},
	{regexp.MustCompile(`@\S+`), " "},
	{regexp.MustCompile("[!\"#$%&'()*+,\\-./:;<=>?@\\[\\\\\\]^_`{|}~]"), " "},
	{regexp.MustCompile(`[^\x00-\x7f]`), " "},
	{regexp.MustCompile(`\s+`), " "},
}

// Normalize removes URLs, retweet/cc markers, hashtags, mentions, punctuation and
// non-ASCII characters, then collapses whitespace. The rule set is reapplied until the
// text is stable, so Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	out := apply(text)
	for {
		next := apply(out)
		if next == out {
			return out
		}
		out = next
	}
}

func apply(text string) string {
	for _, r := range rules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return strings.TrimSpace(text)
}
