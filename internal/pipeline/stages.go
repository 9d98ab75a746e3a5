package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spigell/resume-sorter/internal/sections"
)

const (
	StageExtract  = "extract"
	StageClassify = "classify"
	StageSegment  = "segment"
	StageScore    = "score"
)

// ErrEmptyText is returned when a document yields no text at all. Such documents
// are rejected before classification.
var ErrEmptyText = errors.New("no text could be extracted from the document")

type extractStage struct{ toggle }

// NewExtract creates the stage that reads the uploaded file. When the analysis
// already carries text the file is not read again.
func NewExtract() Stage { return &extractStage{} }

func (s *extractStage) Name() string { return StageExtract }

func (s *extractStage) Validate(deps Deps) error {
	if deps.Extractor == nil {
		return errors.New("text extractor is required")
	}
	return nil
}

func (s *extractStage) Apply(_ context.Context, deps Deps, a *Analysis) (Step, error) {
	if a.Text == "" {
		text, err := deps.Extractor.Extract(a.Path)
		if err != nil {
			return Step{}, err
		}
		a.Text = text
	}

	if strings.TrimSpace(a.Text) == "" {
		return Step{}, ErrEmptyText
	}

	return Step{Details: map[string]string{
		"characters": strconv.Itoa(utf8.RuneCountInString(a.Text)),
	}}, nil
}

type classifyStage struct{ toggle }

// NewClassify creates the stage that predicts the job category.
func NewClassify() Stage { return &classifyStage{} }

func (s *classifyStage) Name() string { return StageClassify }

func (s *classifyStage) Validate(deps Deps) error {
	if deps.Categorizer == nil {
		return errors.New("categorizer is required when classification is enabled")
	}
	return nil
}

func (s *classifyStage) Apply(ctx context.Context, deps Deps, a *Analysis) (Step, error) {
	prediction, err := deps.Categorizer.Categorize(ctx, a.Text)
	if err != nil {
		return Step{}, err
	}
	a.Prediction = prediction

	details := map[string]string{
		"category": prediction.Category,
		"provider": prediction.Provider,
	}
	if prediction.Confidence > 0 {
		details["confidence"] = fmt.Sprintf("%.2f", prediction.Confidence)
	}
	return Step{Details: details}, nil
}

type segmentStage struct{ toggle }

// NewSegment creates the stage that splits the text into heading sections.
func NewSegment() Stage { return &segmentStage{} }

func (s *segmentStage) Name() string { return StageSegment }

func (s *segmentStage) Validate(Deps) error { return nil }

func (s *segmentStage) Apply(_ context.Context, deps Deps, a *Analysis) (Step, error) {
	a.Sections = sections.Segment(a.Text, deps.Headings)

	return Step{Details: map[string]string{
		"sections": strconv.Itoa(len(a.Sections)),
		"headings": strings.Join(a.Sections.Headings(), ","),
	}}, nil
}

type scoreStage struct{ toggle }

// NewScore creates the stage that summarizes and scores every section.
func NewScore() Stage { return &scoreStage{} }

func (s *scoreStage) Name() string { return StageScore }

func (s *scoreStage) Validate(Deps) error { return nil }

func (s *scoreStage) Apply(_ context.Context, _ Deps, a *Analysis) (Step, error) {
	a.Results = sections.AnalyzeAll(a.Sections)

	total := 0
	for _, r := range a.Results {
		total += r.Score
	}
	return Step{Details: map[string]string{
		"scored":      strconv.Itoa(len(a.Results)),
		"total_score": strconv.Itoa(total),
	}}, nil
}
