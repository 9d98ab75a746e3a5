// Package pipeline runs the stages of a résumé analysis in order.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spigell/resume-sorter/internal/ai"
	"github.com/spigell/resume-sorter/internal/logger"
	"github.com/spigell/resume-sorter/internal/sections"
	"go.uber.org/zap"
)

// Stage is a single step of the analysis.
type Stage interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(deps Deps) error
	Apply(ctx context.Context, deps Deps, a *Analysis) (Step, error)
}

// TextExtractor supplies the raw text of an uploaded file.
type TextExtractor interface {
	Extract(path string) (string, error)
}

// Deps aggregates dependencies shared across all stages.
type Deps struct {
	Logger      *zap.Logger
	Extractor   TextExtractor
	Categorizer ai.Categorizer
	Headings    *sections.HeadingSet
}

// Step describes the outcome of a stage for logging.
type Step struct {
	Details map[string]string
}

// Status represents runtime information about a stage.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
}

// Analysis accumulates the results of every stage for one document.
type Analysis struct {
	ID         string            `json:"id"`
	Filename   string            `json:"filename"`
	Path       string            `json:"-"`
	Text       string            `json:"-"`
	Prediction *ai.Prediction    `json:"prediction,omitempty"`
	Sections   sections.Sections `json:"sections"`
	Results    []sections.Result `json:"results"`
}

// NewAnalysis starts an analysis of the file at path.
func NewAnalysis(path, filename string) *Analysis {
	return &Analysis{
		ID:       uuid.NewString(),
		Filename: filename,
		Path:     path,
	}
}

// Category returns the predicted category or an empty string when classification
// did not run.
func (a *Analysis) Category() string {
	if a == nil || a.Prediction == nil {
		return ""
	}
	return a.Prediction.Category
}

// DefaultStages returns extract, classify, segment and score, all enabled.
func DefaultStages() []Stage {
	return []Stage{
		NewExtract(),
		NewClassify(),
		NewSegment(),
		NewScore(),
	}
}

// DisableByName marks a stage with the provided name as disabled while keeping it in the list.
func DisableByName(stages []Stage, name, reason string) {
	for _, stage := range stages {
		if stage.Name() == name {
			stage.Disable(reason)
		}
	}
}

// Run validates the enabled stages and applies them in order. The first failing
// stage aborts the run.
func Run(ctx context.Context, deps Deps, stages []Stage, a *Analysis) error {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	for _, stage := range stages {
		if !stage.IsEnabled() {
			continue
		}
		if err := stage.Validate(deps); err != nil {
			return fmt.Errorf("%s: %w", stage.Name(), err)
		}
	}

	log := logger.WithAnalysis(deps.Logger, a.ID, a.Filename)
	deps.Logger = log

	for _, stage := range stages {
		if !stage.IsEnabled() {
			fields := []zap.Field{zap.String("name", stage.Name())}
			if r, ok := stage.(interface{ reason() string }); ok && r.reason() != "" {
				fields = append(fields, zap.String("reason", r.reason()))
			}
			log.Info("stage disabled", fields...)
			continue
		}

		info, err := stage.Apply(ctx, deps, a)
		if err != nil {
			return fmt.Errorf("%s: %w", stage.Name(), err)
		}

		log.Info("stage completed",
			zap.String("name", stage.Name()),
			zap.Any("details", info.Details),
		)
	}

	return nil
}

// Describe returns status entries for the provided stages.
func Describe(stages []Stage) []Status {
	statuses := make([]Status, 0, len(stages))
	for _, stage := range stages {
		status := Status{Name: stage.Name(), Enabled: stage.IsEnabled()}
		if r, ok := stage.(interface{ reason() string }); ok {
			status.Reason = r.reason()
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// toggle implements the Disable/IsEnabled half of Stage.
type toggle struct {
	disabled bool
	why      string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.why = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }

func (t *toggle) reason() string { return t.why }
