// Package sections splits résumé text into heading-labelled sections and scores them.
package sections

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Section is the content attributed to one heading.
type Section struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// Sections keeps sections in the order their headings first appear in the text.
type Sections []Section

// Get returns the content stored under the canonical heading.
func (s Sections) Get(heading string) (string, bool) {
	for _, section := range s {
		if section.Heading == heading {
			return section.Content, true
		}
	}
	return "", false
}

// Headings returns the canonical headings in order.
func (s Sections) Headings() []string {
	headings := make([]string, 0, len(s))
	for _, section := range s {
		headings = append(headings, section.Heading)
	}
	return headings
}

// Segment partitions text by heading occurrence in a single left-to-right scan.
//
// A section starts at the first heading found at or after the cursor and runs until
// the next boundary, a heading followed by optional whitespace and ':' or '-', or the
// end of the text. When several labels match at the same position the longest wins.
// Sections with blank content are dropped. A repeated heading replaces the earlier
// content but keeps its original position. A nil headings set means DefaultHeadings.
func Segment(text string, headings *HeadingSet) Sections {
	if headings == nil {
		headings = DefaultHeadings()
	}

	var result Sections
	index := make(map[string]int)

	cursor := 0
	for cursor < len(text) {
		start, label, ok := nextHeading(text, cursor, headings)
		if !ok {
			break
		}

		body := skipDelimiter(text, start+len(label))
		end := nextBoundary(text, body, headings)
		cursor = end

		content := strings.TrimSpace(text[body:end])
		if content == "" {
			continue
		}

		key := headings.Canonical(label)
		if i, seen := index[key]; seen {
			result[i].Content = content
			continue
		}
		index[key] = len(result)
		result = append(result, Section{Heading: key, Content: content})
	}

	return result
}

func nextHeading(text string, from int, headings *HeadingSet) (int, string, bool) {
	for pos := from; pos < len(text); pos++ {
		if label, ok := headings.matchAt(text, pos); ok {
			return pos, label, true
		}
	}
	return 0, "", false
}

// nextBoundary finds the next heading followed by a delimiter. Every label matching at a
// position is tried, so a shorter label with a delimiter still ends the section when a
// longer one shares its start.
func nextBoundary(text string, from int, headings *HeadingSet) int {
	for pos := from; pos < len(text); pos++ {
		delimited := headings.eachMatchAt(text, pos, func(label string) bool {
			return isDelimiter(text, skipSpace(text, pos+len(label)))
		})
		if delimited {
			return pos
		}
	}
	return len(text)
}

// skipDelimiter moves past optional whitespace, one ':' or '-', and more whitespace.
func skipDelimiter(text string, pos int) int {
	pos = skipSpace(text, pos)
	if isDelimiter(text, pos) {
		pos++
	}
	return skipSpace(text, pos)
}

func isDelimiter(text string, pos int) bool {
	return pos < len(text) && (text[pos] == ':' || text[pos] == '-')
}

func skipSpace(text string, pos int) int {
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}
