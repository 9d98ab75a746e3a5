package sections

import (
	"reflect"
	"strings"
	"testing"
)

func TestSegmentEducationAndSkills(t *testing.T) {
	t.Parallel()

	got := Segment("Education: went to X University. Skills: Python, Go.", DefaultHeadings())

	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(got), got)
	}

	if content, ok := got.Get("Education"); !ok || content != "went to X University." {
		t.Fatalf("unexpected education content: %q (found=%t)", content, ok)
	}

	if content, ok := got.Get("Skills"); !ok || content != "Python, Go." {
		t.Fatalf("unexpected skills content: %q (found=%t)", content, ok)
	}
}

func TestSegmentNoHeadings(t *testing.T) {
	t.Parallel()

	got := Segment("no headings here", DefaultHeadings())
	if len(got) != 0 {
		t.Fatalf("expected no sections, got %+v", got)
	}
}

func TestSegmentDeterministic(t *testing.T) {
	t.Parallel()

	text := "SUMMARY - Backend engineer.\nEXPERIENCE: Acme 2019-2021\nSKILLS:\nGo, SQL"
	first := Segment(text, DefaultHeadings())
	second := Segment(text, DefaultHeadings())

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output, got %+v and %+v", first, second)
	}
}

func TestSegmentCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect Sections
	}{
		{
			name: "case insensitive headings are title cased",
			text: "EDUCATION: MIT\nskills - Go",
			expect: Sections{
				{Heading: "Education", Content: "MIT"},
				{Heading: "Skills", Content: "Go"},
			},
		},
		{
			name: "longer heading wins over its suffix",
			text: "Work Experience: Acme Corp\nEducation: MIT",
			expect: Sections{
				{Heading: "Work Experience", Content: "Acme Corp"},
				{Heading: "Education", Content: "MIT"},
			},
		},
		{
			name: "empty content is dropped",
			text: "Summary:\nSkills: Go",
			expect: Sections{
				{Heading: "Skills", Content: "Go"},
			},
		},
		{
			name: "last match wins and keeps first position",
			text: "Skills: Go\nEducation: MIT\nSkills: Rust",
			expect: Sections{
				{Heading: "Skills", Content: "Rust"},
				{Heading: "Education", Content: "MIT"},
			},
		},
		{
			name: "heading word without delimiter does not end a section",
			text: "Summary: I love working on projects and skills growth.",
			expect: Sections{
				{Heading: "Summary", Content: "I love working on projects and skills growth."},
			},
		},
		{
			name: "text before first heading is ignored",
			text: "John Doe\njohn@example.com\nObjective: build things",
			expect: Sections{
				{Heading: "Objective", Content: "build things"},
			},
		},
		{
			name: "first heading may omit the delimiter",
			text: "Profile Senior engineer\nAwards: none",
			expect: Sections{
				{Heading: "Profile", Content: "Senior engineer"},
				{Heading: "Awards", Content: "none"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Segment(tt.text, DefaultHeadings())
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %+v, got %+v", tt.expect, got)
			}
		})
	}
}

func TestSegmentLongestLabelPrecedence(t *testing.T) {
	t.Parallel()

	headings, err := NewHeadingSet("Skills", "Skills Summary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := Segment("Skills Summary: Go, Rust", headings)
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %+v", got)
	}
	if got[0].Heading != "Skills Summary" || got[0].Content != "Go, Rust" {
		t.Fatalf("unexpected section: %+v", got[0])
	}
}

func TestSegmentBoundaryTriesShorterLabels(t *testing.T) {
	t.Parallel()

	headings, err := NewHeadingSet("Education", "Skills", "Skills - Technical")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := Segment("Education: BSc Skills - Technical Go, Rust", headings)
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %+v", got)
	}
	if got[0].Heading != "Education" || got[0].Content != "BSc" {
		t.Fatalf("expected education to stop at the skills heading, got %+v", got[0])
	}
	if got[1].Heading != "Skills - Technical" || got[1].Content != "Go, Rust" {
		t.Fatalf("unexpected skills section: %+v", got[1])
	}
}

func TestSegmentNilHeadingsUsesDefaults(t *testing.T) {
	t.Parallel()

	got := Segment("Certifications: CKA", nil)
	if content, ok := got.Get("Certifications"); !ok || content != "CKA" {
		t.Fatalf("unexpected certifications content: %q (found=%t)", content, ok)
	}
}

func TestSegmentAllDefaultHeadings(t *testing.T) {
	t.Parallel()

	labels := DefaultHeadings().Labels()

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString("Details number ")
		b.WriteString(strings.Repeat("x", i+1))
		b.WriteString(". Worked since 2015, with a degree. More text here.\n")
	}

	got := Segment(b.String(), DefaultHeadings())
	if len(got) != len(labels) {
		t.Fatalf("expected %d sections, got %d: %v", len(labels), len(got), got.Headings())
	}

	results := AnalyzeAll(got)
	if len(results) != len(labels) {
		t.Fatalf("expected %d results, got %d", len(labels), len(results))
	}

	for i, res := range results {
		if res.Heading != labels[i] {
			t.Fatalf("expected heading %q at %d, got %q", labels[i], i, res.Heading)
		}
		if res.Score < 0 {
			t.Fatalf("expected non-negative score for %q, got %d", res.Heading, res.Score)
		}
		if len(res.Summary) > len(got[i].Content) {
			t.Fatalf("summary longer than content for %q", res.Heading)
		}
	}
}
