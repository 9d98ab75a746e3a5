package sections

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var defaultHeadings = []string{
	"Objective",
	"Summary",
	"Profile",
	"Experience",
	"Work Experience",
	"Education",
	"Skills",
	"Projects",
	"Certifications",
	"Awards",
	"Personal Information",
	"Contact Information",
}

// HeadingSet is an immutable, ordered set of heading labels matched case-insensitively.
type HeadingSet struct {
	labels    []string
	canonical map[string]string
	// byLength holds the labels sorted longest first; ties keep declaration order.
	byLength []string
}

// DefaultHeadings returns the twelve labels used when the caller does not override them.
func DefaultHeadings() *HeadingSet {
	set, err := NewHeadingSet(defaultHeadings...)
	if err != nil {
		panic(fmt.Sprintf("default headings are invalid: %v", err))
	}
	return set
}

// NewHeadingSet validates the labels and builds a HeadingSet. Labels are trimmed; an
// empty set, an empty label or a duplicate after case folding is an error.
func NewHeadingSet(labels ...string) (*HeadingSet, error) {
	if len(labels) == 0 {
		return nil, errors.New("heading set must not be empty")
	}

	title := cases.Title(language.English)
	fold := cases.Fold()

	set := &HeadingSet{
		labels:    make([]string, 0, len(labels)),
		canonical: make(map[string]string, len(labels)),
	}
	seen := make(map[string]string, len(labels))

	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, errors.New("heading label must not be empty")
		}

		key := fold.String(label)
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("duplicate heading %q (already defined as %q)", label, prev)
		}
		seen[key] = label

		set.labels = append(set.labels, label)
		set.canonical[label] = title.String(strings.ToLower(label))
	}

	set.byLength = append([]string(nil), set.labels...)
	sort.SliceStable(set.byLength, func(i, j int) bool {
		return len(set.byLength[i]) > len(set.byLength[j])
	})

	return set, nil
}

// Labels returns the labels in declaration order.
func (h *HeadingSet) Labels() []string {
	return append([]string(nil), h.labels...)
}

// Len returns the number of labels.
func (h *HeadingSet) Len() int {
	return len(h.labels)
}

// Canonical returns the title-cased key used for a label of this set.
func (h *HeadingSet) Canonical(label string) string {
	return h.canonical[label]
}

// matchAt returns the longest label found at text[pos:], ignoring case.
func (h *HeadingSet) matchAt(text string, pos int) (string, bool) {
	for _, label := range h.byLength {
		if hasLabelAt(text, pos, label) {
			return label, true
		}
	}
	return "", false
}

// eachMatchAt calls fn for every label found at text[pos:], longest first, until fn
// returns true.
func (h *HeadingSet) eachMatchAt(text string, pos int, fn func(label string) bool) bool {
	for _, label := range h.byLength {
		if hasLabelAt(text, pos, label) && fn(label) {
			return true
		}
	}
	return false
}

func hasLabelAt(text string, pos int, label string) bool {
	end := pos + len(label)
	return end <= len(text) && strings.EqualFold(text[pos:end], label)
}
