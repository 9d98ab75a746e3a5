package classifier

import (
	"errors"
	"fmt"
	"strings"
)

// Encoder maps class codes to labels by position.
type Encoder struct {
	Labels []string `yaml:"classes"`
}

func (e *Encoder) validate() error {
	if len(e.Labels) == 0 {
		return errors.New("encoder has no classes")
	}
	for i, label := range e.Labels {
		if strings.TrimSpace(label) == "" {
			return fmt.Errorf("class %d has an empty label", i)
		}
	}
	return nil
}

// InverseTransform returns the label for code.
func (e *Encoder) InverseTransform(code int) (string, error) {
	if code < 0 || code >= len(e.Labels) {
		return "", fmt.Errorf("unknown class code %d", code)
	}
	return e.Labels[code], nil
}

// Classes returns a copy of the label vocabulary.
func (e *Encoder) Classes() []string {
	return append([]string(nil), e.Labels...)
}
