package classifier

import (
	"errors"
	"fmt"
)

// Linear is a one-vs-rest linear classifier (LinearSVC, LogisticRegression). A single
// coefficient row is treated as a binary model where a positive decision selects
// Classes[1].
type Linear struct {
	Coef      [][]float64 `yaml:"coef"`
	Intercept []float64   `yaml:"intercept"`
	Classes   []int       `yaml:"classes"`
}

func (l *Linear) validate() error {
	if len(l.Coef) == 0 {
		return errors.New("coef is empty")
	}
	if len(l.Intercept) != len(l.Coef) {
		return fmt.Errorf("intercept has %d values for %d coef rows", len(l.Intercept), len(l.Coef))
	}

	width := len(l.Coef[0])
	for i, row := range l.Coef {
		if len(row) != width {
			return fmt.Errorf("coef row %d has %d features, expected %d", i, len(row), width)
		}
	}

	want := len(l.Coef)
	if want == 1 {
		want = 2
	}
	if len(l.Classes) != want {
		return fmt.Errorf("expected %d classes, got %d", want, len(l.Classes))
	}
	return nil
}

// Features returns the expected vector width.
func (l *Linear) Features() int {
	if len(l.Coef) == 0 {
		return 0
	}
	return len(l.Coef[0])
}

// Predict returns the class with the highest decision value.
func (l *Linear) Predict(features []float64) (int, error) {
	if len(features) != l.Features() {
		return 0, fmt.Errorf("got %d features, expected %d", len(features), l.Features())
	}

	if len(l.Coef) == 1 {
		if l.decision(0, features) > 0 {
			return l.Classes[1], nil
		}
		return l.Classes[0], nil
	}

	best := 0
	bestScore := l.decision(0, features)
	for i := 1; i < len(l.Coef); i++ {
		if score := l.decision(i, features); score > bestScore {
			best, bestScore = i, score
		}
	}
	return l.Classes[best], nil
}

func (l *Linear) decision(row int, features []float64) float64 {
	sum := l.Intercept[row]
	for i, w := range l.Coef[row] {
		sum += w * features[i]
	}
	return sum
}
