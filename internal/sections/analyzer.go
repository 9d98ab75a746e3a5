package sections

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	summarySentences = 2

	educationKeywordBonus = 5
	experienceYearBonus   = 10
	skillWeight           = 10
)

var (
	educationKeywords = []string{"university", "college", "degree", "bachelor", "master", "phd"}
	yearPattern       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// Result is the summary and heuristic score of one section.
type Result struct {
	Heading string `json:"heading"`
	Summary string `json:"summary"`
	Score   int    `json:"score"`
}

// AnalyzeAll scores every section, preserving order.
func AnalyzeAll(s Sections) []Result {
	results := make([]Result, 0, len(s))
	for _, section := range s {
		summary, score := Analyze(section.Heading, section.Content)
		results = append(results, Result{
			Heading: section.Heading,
			Summary: summary,
			Score:   score,
		})
	}
	return results
}

// Analyze returns the first two sentences of content and a score that depends on
// the heading:
//
//   - Education: words + 5 per occurrence of a degree keyword
//   - Experience, Work Experience: words + 10 per year between 1900 and 2099
//   - Skills: 10 per comma or newline separated item
//   - anything else: words
func Analyze(heading, content string) (string, int) {
	return Summarize(content), Score(heading, content)
}

// Summarize joins the first two sentences of content with a single space. Content
// with fewer sentences is returned trimmed.
func Summarize(content string) string {
	content = strings.TrimSpace(content)
	sentences := splitSentences(content)
	if len(sentences) < summarySentences {
		return content
	}
	return strings.Join(sentences[:summarySentences], " ")
}

// Score computes the heading-specific heuristic score. It is never negative.
func Score(heading, content string) int {
	words := len(strings.Fields(content))

	switch strings.ToLower(strings.TrimSpace(heading)) {
	case "education":
		lower := strings.ToLower(content)
		hits := 0
		for _, kw := range educationKeywords {
			hits += strings.Count(lower, kw)
		}
		return words + hits*educationKeywordBonus
	case "experience", "work experience":
		years := yearPattern.FindAllStringIndex(content, -1)
		return words + len(years)*experienceYearBonus
	case "skills":
		return len(splitSkills(content)) * skillWeight
	default:
		return words
	}
}

// splitSentences cuts after '.', '!' or '?' when whitespace follows.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '.' && text[i] != '!' && text[i] != '?' {
			continue
		}
		next := i + 1
		for next < len(text) {
			r, size := utf8.DecodeRuneInString(text[next:])
			if !unicode.IsSpace(r) {
				break
			}
			next += size
		}
		if next == i+1 {
			continue
		}
		sentences = append(sentences, text[start:i+1])
		start = next
		i = next - 1
	}
	return append(sentences, text[start:])
}

func splitSkills(content string) []string {
	pieces := strings.FieldsFunc(content, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	skills := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if piece = strings.TrimSpace(piece); piece != "" {
			skills = append(skills, piece)
		}
	}
	return skills
}
