package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a single labeled email as read from the source table.
// Immutable once loaded; rows whose text cell is empty never become records.
type Record struct {
	Text  string
	Label string
}

// Loader reads labeled email records from a two-column CSV table.
// Surrounding columns are ignored; the named text and label columns are
// required and their absence is a ParseError.
type Loader struct {
	TextColumn  string
	LabelColumn string
}

// NewLoader creates a loader for the given column names
func NewLoader(textColumn, labelColumn string) *Loader {
	return &Loader{
		TextColumn:  textColumn,
		LabelColumn: labelColumn,
	}
}

// Load reads records from the CSV file at path. A missing file surfaces as
// the wrapped os error so callers can report the failing path and halt.
func (l *Loader) Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	return l.Read(f)
}

// Read reads records from an open CSV stream
func (l *Loader) Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("unable to read header: %v", err)}
	}

	textIdx, labelIdx := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case strings.ToLower(l.TextColumn):
			textIdx = i
		case strings.ToLower(l.LabelColumn):
			labelIdx = i
		}
	}
	if textIdx == -1 {
		return nil, &ParseError{Column: l.TextColumn, Reason: "required column not found"}
	}
	if labelIdx == -1 {
		return nil, &ParseError{Column: l.LabelColumn, Reason: "required column not found"}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("malformed row: %v", err)}
		}
		if len(row) <= textIdx || len(row) <= labelIdx {
			continue
		}

		text := row[textIdx]
		// Retained iff the text cell is non-empty; no other validation here.
		if strings.TrimSpace(text) == "" {
			continue
		}

		records = append(records, Record{
			Text:  text,
			Label: strings.TrimSpace(row[labelIdx]),
		})
	}

	return records, nil
}

// Texts returns the text column of a record slice
func Texts(records []Record) []string {
	texts := make([]string, len(records))
	for i, r := range records {
		texts[i] = r.Text
	}
	return texts
}

// Labels returns the label column of a record slice
func Labels(records []Record) []string {
	labels := make([]string, len(records))
	for i, r := range records {
		labels[i] = r.Label
	}
	return labels
}
