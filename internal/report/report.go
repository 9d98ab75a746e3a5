// Package report renders analysis results for the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spigell/resume-sorter/internal/pipeline"
)

const NoSectionsMessage = "No sections were found. Please ensure your resume contains recognizable headings."

// Options controls what Render prints.
type Options struct {
	ShowText    bool
	ShowContent bool
}

// Render prints the predicted category and a table of scored sections.
func Render(w io.Writer, a *pipeline.Analysis, opts Options) error {
	if _, err := fmt.Fprintf(w, "File: %s\n", a.Filename); err != nil {
		return err
	}

	switch {
	case a.Prediction == nil:
		fmt.Fprintln(w, "Predicted category: (classification skipped)")
	case a.Prediction.Confidence > 0:
		fmt.Fprintf(w, "Predicted category: %s (%s, confidence %.2f)\n", a.Prediction.Category, a.Prediction.Provider, a.Prediction.Confidence)
	default:
		fmt.Fprintf(w, "Predicted category: %s\n", a.Prediction.Category)
	}
	if a.Prediction != nil && a.Prediction.Reason != "" {
		fmt.Fprintf(w, "Reason: %s\n", a.Prediction.Reason)
	}

	if opts.ShowText {
		fmt.Fprintf(w, "\nExtracted text:\n%s\n", strings.TrimSpace(a.Text))
	}

	fmt.Fprintln(w)

	if len(a.Results) == 0 {
		_, err := fmt.Fprintln(w, NoSectionsMessage)
		return err
	}

	header := []string{"Section", "Score", "Summary"}
	if opts.ShowContent {
		header = append(header, "Content")
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(true)
	table.SetRowLine(true)

	for _, r := range a.Results {
		row := []string{r.Heading, strconv.Itoa(r.Score), r.Summary}
		if opts.ShowContent {
			content, _ := a.Sections.Get(r.Heading)
			row = append(row, content)
		}
		table.Append(row)
	}
	table.Render()

	return nil
}

// JSON writes the analysis as indented JSON.
func JSON(w io.Writer, a *pipeline.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

// DumpToTmpFile writes the analysis as JSON to a new temporary file and returns its name.
func DumpToTmpFile(a *pipeline.Analysis) (string, error) {
	file, err := os.CreateTemp("", "resume_analysis_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := JSON(file, a); err != nil {
		return "", err
	}
	return file.Name(), nil
}
