package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/spigell/resume-sorter/internal/classifier"
)

func TestLocalCategorizer(t *testing.T) {
	adapter, err := classifier.New(classifier.Model{
		Vectorizer: &classifier.TFIDF{Vocabulary: map[string]int{"golang": 0}, IDF: []float64{1}},
		Classifier: &classifier.Linear{Coef: [][]float64{{1}}, Intercept: []float64{-0.5}, Classes: []int{0, 1}},
		Encoder:    &classifier.Encoder{Labels: []string{"HR", "Backend"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := Local(adapter)

	prediction, err := c.Categorize(context.Background(), "Golang developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prediction.Category != "Backend" || prediction.Provider != ProviderLocal {
		t.Fatalf("unexpected prediction: %+v", prediction)
	}

	if _, err := c.Categorize(context.Background(), "   "); !errors.Is(err, classifier.ErrClassification) {
		t.Fatalf("expected ErrClassification, got %v", err)
	}

	if got := c.Categories(); len(got) != 2 {
		t.Fatalf("unexpected categories: %v", got)
	}
}
