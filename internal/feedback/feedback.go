// Package feedback appends user feedback about predictions to a CSV log.
package feedback

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
)

// DefaultFile is the log used when no path is configured.
const DefaultFile = "feedback.csv"

// Columns is the fixed header of the feedback log.
var Columns = []string{"name", "filename", "predicted_category", "feedback", "comments"}

// Record is one feedback event.
type Record struct {
	Name              string `json:"name"`
	Filename          string `json:"filename"`
	PredictedCategory string `json:"predicted_category"`
	Feedback          string `json:"feedback"`
	Comments          string `json:"comments"`
}

func (r Record) row() []string {
	return []string{r.Name, r.Filename, r.PredictedCategory, r.Feedback, r.Comments}
}

// Sink is an append-only CSV log.
type Sink struct {
	path string
	mu   sync.Mutex
}

// NewSink returns a sink writing to path, or DefaultFile when path is blank.
func NewSink(path string) *Sink {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultFile
	}
	return &Sink{path: path}
}

// Path returns the log location.
func (s *Sink) Path() string {
	return s.path
}

// Append writes rec, writing the header first if the log does not exist yet.
func (s *Sink) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat feedback log %q: %w", s.path, err)
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening feedback log %q: %w", s.path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if !exists {
		if err := w.Write(Columns); err != nil {
			return fmt.Errorf("writing feedback header: %w", err)
		}
	}
	if err := w.Write(rec.row()); err != nil {
		return fmt.Errorf("writing feedback record: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing feedback log: %w", err)
	}
	return nil
}
