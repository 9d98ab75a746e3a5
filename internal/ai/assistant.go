package ai

import (
	"context"

	"github.com/spigell/resume-sorter/internal/classifier"
)

const ProviderLocal = "local"

type Prediction struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence,omitempty"`
	Reason     string  `json:"reason,omitempty"`
	Provider   string  `json:"provider"`
}

// Categorizer assigns a résumé to one category of a closed vocabulary.
type Categorizer interface {
	Categorize(ctx context.Context, resume string) (*Prediction, error)
	Categories() []string
}

type localCategorizer struct {
	adapter *classifier.Adapter
}

// Local exposes the pre-trained classifier as a Categorizer.
func Local(adapter *classifier.Adapter) Categorizer {
	return &localCategorizer{adapter: adapter}
}

func (l *localCategorizer) Categorize(_ context.Context, resume string) (*Prediction, error) {
	category, err := l.adapter.Predict(resume)
	if err != nil {
		return nil, err
	}
	return &Prediction{Category: category, Provider: ProviderLocal}, nil
}

func (l *localCategorizer) Categories() []string {
	return l.adapter.Categories()
}
