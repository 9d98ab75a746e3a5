package classifier

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
)

// tokenPattern mirrors scikit-learn's default token_pattern.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// TFIDF is a fitted TF-IDF vectorizer with L2 normalization.
type TFIDF struct {
	Vocabulary  map[string]int `yaml:"vocabulary"`
	IDF         []float64      `yaml:"idf"`
	SublinearTF bool           `yaml:"sublinear_tf"`
	Lowercase   *bool          `yaml:"lowercase"`
	StopWords   []string       `yaml:"stop_words"`

	stop map[string]struct{}
}

func (v *TFIDF) validate() error {
	if len(v.Vocabulary) == 0 {
		return errors.New("vocabulary is empty")
	}
	if len(v.IDF) != len(v.Vocabulary) {
		return fmt.Errorf("idf has %d weights for %d terms", len(v.IDF), len(v.Vocabulary))
	}
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(v.IDF) {
			return fmt.Errorf("term %q has index %d outside of [0, %d)", term, idx, len(v.IDF))
		}
	}

	v.stop = make(map[string]struct{}, len(v.StopWords))
	for _, w := range v.StopWords {
		v.stop[w] = struct{}{}
	}
	return nil
}

// Features returns the vector width.
func (v *TFIDF) Features() int {
	return len(v.IDF)
}

// Transform returns the L2-normalized TF-IDF vector of text. Text without any
// vocabulary term is rejected because every prediction on it would be the bias.
func (v *TFIDF) Transform(text string) ([]float64, error) {
	if v.Lowercase == nil || *v.Lowercase {
		text = strings.ToLower(text)
	}

	counts := make(map[int]float64)
	for _, token := range tokenPattern.FindAllString(text, -1) {
		if _, skip := v.stop[token]; skip {
			continue
		}
		if idx, ok := v.Vocabulary[token]; ok {
			counts[idx]++
		}
	}

	if len(counts) == 0 {
		return nil, errors.New("text has no known terms")
	}

	vec := make([]float64, len(v.IDF))
	var norm float64
	for idx, tf := range counts {
		if v.SublinearTF {
			tf = 1 + math.Log(tf)
		}
		w := tf * v.IDF[idx]
		vec[idx] = w
		norm += w * w
	}

	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range counts {
			vec[idx] /= norm
		}
	}

	return vec, nil
}
