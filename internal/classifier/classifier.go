// Package classifier predicts the job category of a résumé with a pre-fitted model.
package classifier

import (
	"errors"
	"fmt"

	"github.com/spigell/resume-sorter/internal/normalize"
)

var (
	// ErrModelUnavailable is returned when model artifacts are missing or incompatible.
	// It is fatal at startup.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrClassification is returned when a particular text cannot be classified.
	ErrClassification = errors.New("classification failed")
)

// Vectorizer turns normalized text into a fixed-length feature vector.
type Vectorizer interface {
	Transform(text string) ([]float64, error)
	Features() int
}

// Classifier maps a feature vector to an encoded category.
type Classifier interface {
	Predict(features []float64) (int, error)
	Features() int
}

// LabelEncoder maps an encoded category back to its label.
type LabelEncoder interface {
	InverseTransform(code int) (string, error)
	Classes() []string
}

// Model bundles the three fitted artifacts. It is read-only once built.
type Model struct {
	Vectorizer Vectorizer
	Classifier Classifier
	Encoder    LabelEncoder
}

// Adapter runs normalization, vectorization, prediction and label decoding.
type Adapter struct {
	model Model
}

// New validates the model and returns an Adapter. Missing artifacts or a feature
// width mismatch between vectorizer and classifier yield ErrModelUnavailable.
func New(model Model) (*Adapter, error) {
	switch {
	case model.Vectorizer == nil:
		return nil, fmt.Errorf("%w: vectorizer is not loaded", ErrModelUnavailable)
	case model.Classifier == nil:
		return nil, fmt.Errorf("%w: classifier is not loaded", ErrModelUnavailable)
	case model.Encoder == nil:
		return nil, fmt.Errorf("%w: label encoder is not loaded", ErrModelUnavailable)
	}

	if v, c := model.Vectorizer.Features(), model.Classifier.Features(); v != c {
		return nil, fmt.Errorf("%w: vectorizer produces %d features, classifier expects %d", ErrModelUnavailable, v, c)
	}

	return &Adapter{model: model}, nil
}

// Predict returns the category label for raw résumé text.
func (a *Adapter) Predict(raw string) (string, error) {
	text := normalize.Normalize(raw)
	if text == "" {
		return "", fmt.Errorf("%w: text is empty after normalization", ErrClassification)
	}

	features, err := a.model.Vectorizer.Transform(text)
	if err != nil {
		return "", fmt.Errorf("%w: transform: %w", ErrClassification, err)
	}

	code, err := a.model.Classifier.Predict(features)
	if err != nil {
		return "", fmt.Errorf("%w: predict: %w", ErrClassification, err)
	}

	label, err := a.model.Encoder.InverseTransform(code)
	if err != nil {
		return "", fmt.Errorf("%w: decode label: %w", ErrClassification, err)
	}

	return label, nil
}

// Categories returns the closed label vocabulary of the model.
func (a *Adapter) Categories() []string {
	return a.model.Encoder.Classes()
}
