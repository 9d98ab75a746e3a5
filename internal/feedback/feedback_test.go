package feedback

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening log: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	return rows
}

func TestSinkAppendWritesHeaderOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feedback.csv")
	sink := NewSink(path)

	first := Record{Name: "Ann", Filename: "cv.pdf", PredictedCategory: "Data Science", Feedback: "Yes"}
	second := Record{Name: "Bob", Filename: "cv.txt", PredictedCategory: "HR", Feedback: "No", Comments: "I am a recruiter, not HR"}

	if err := sink.Append(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sink.Append(second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := readRows(t, path)
	expect := [][]string{
		Columns,
		{"Ann", "cv.pdf", "Data Science", "Yes", ""},
		{"Bob", "cv.txt", "HR", "No", "I am a recruiter, not HR"},
	}
	if !reflect.DeepEqual(rows, expect) {
		t.Fatalf("expected %v, got %v", expect, rows)
	}
}

func TestSinkAppendToExistingLog(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feedback.csv")
	if err := os.WriteFile(path, []byte("name,filename,predicted_category,feedback,comments\n"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := NewSink(path).Append(Record{Name: "Ann"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := readRows(t, path)
	if len(rows) != 2 {
		t.Fatalf("expected header and one record, got %v", rows)
	}
}

func TestSinkConcurrentAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feedback.csv")
	sink := NewSink(path)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sink.Append(Record{Name: "user", Feedback: "Yes"}); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if rows := readRows(t, path); len(rows) != 21 {
		t.Fatalf("expected 21 rows, got %d", len(rows))
	}
}

func TestNewSinkDefaultPath(t *testing.T) {
	t.Parallel()

	if got := NewSink("  ").Path(); got != DefaultFile {
		t.Fatalf("expected default path, got %q", got)
	}
}
