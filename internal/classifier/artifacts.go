package classifier

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Paths points to the three exported model artifacts. Files may be YAML or JSON.
type Paths struct {
	Vectorizer string `mapstructure:"vectorizer"`
	Classifier string `mapstructure:"classifier"`
	Encoder    string `mapstructure:"encoder"`
}

type validator interface {
	validate() error
}

// LoadModel reads and cross-checks the artifacts. Every failure wraps
// ErrModelUnavailable.
func LoadModel(paths Paths) (Model, error) {
	vectorizer := &TFIDF{}
	if err := loadArtifact("vectorizer", paths.Vectorizer, vectorizer); err != nil {
		return Model{}, err
	}

	linear := &Linear{}
	if err := loadArtifact("classifier", paths.Classifier, linear); err != nil {
		return Model{}, err
	}

	encoder := &Encoder{}
	if err := loadArtifact("label encoder", paths.Encoder, encoder); err != nil {
		return Model{}, err
	}

	for _, code := range linear.Classes {
		if code < 0 || code >= len(encoder.Labels) {
			return Model{}, fmt.Errorf("%w: classifier class %d is not known to the label encoder (%d classes)",
				ErrModelUnavailable, code, len(encoder.Labels))
		}
	}

	return Model{
		Vectorizer: vectorizer,
		Classifier: linear,
		Encoder:    encoder,
	}, nil
}

func loadArtifact(name, path string, target validator) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: %s path is not configured", ErrModelUnavailable, name)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", ErrModelUnavailable, name, err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("%w: decoding %s %q: %w", ErrModelUnavailable, name, path, err)
	}

	if err := target.validate(); err != nil {
		return fmt.Errorf("%w: invalid %s %q: %w", ErrModelUnavailable, name, path, err)
	}

	return nil
}
