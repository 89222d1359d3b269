// ABOUTME: CSV parsing and timestamp coercion for dataset files.
// ABOUTME: Validates the timestamp column and the numeric columns each dataset needs.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/galaxydash/internal/models"
)

var (
	// ErrEmptyFile means the file had no header row.
	ErrEmptyFile = errors.New("empty file")
	// ErrMissingColumn means a required column is not in the header.
	ErrMissingColumn = errors.New("missing column")
	// ErrBadTimestamp means a timestamp cell could not be coerced.
	ErrBadTimestamp = errors.New("invalid timestamp")
	// ErrNotNumeric means a required numeric column held a non-numeric or
	// non-finite cell.
	ErrNotNumeric = errors.New("non-numeric value")
)

// timestampFormats are tried in order; zone-less forms are read as UTC.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
}

// ParseTimestamp coerces a timestamp cell.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, f := range timestampFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadTimestamp, s)
}

// Parse reads a whole CSV document into a Dataset sorted by timestamp.
// Either every row parses or an error is returned; there is no partial result.
func Parse(name models.DatasetName, r io.Reader) (*models.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	ds := &models.Dataset{Name: name, Columns: header}

	required := append([]string{models.ColTimestamp}, models.RequiredColumns[name]...)
	for _, col := range required {
		if !ds.HasColumn(col) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	numeric := models.RequiredColumns[name]

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	ds.Rows = make([]models.Row, 0, len(records))
	for i, rec := range records {
		line := i + 2
		fields := make(map[string]string, len(header))
		for j, col := range header {
			fields[col] = rec[j]
		}

		ts, err := ParseTimestamp(fields[models.ColTimestamp])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		for _, col := range numeric {
			cell := strings.TrimSpace(fields[col])
			if cell == "" {
				continue
			}
			if v, err := strconv.ParseFloat(cell, 64); err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("line %d: %w in %s: %q", line, ErrNotNumeric, col, cell)
			}
		}
		ds.Rows = append(ds.Rows, models.Row{Timestamp: ts, Fields: fields})
	}

	sort.SliceStable(ds.Rows, func(i, j int) bool {
		return ds.Rows[i].Timestamp.Before(ds.Rows[j].Timestamp)
	})
	return ds, nil
}
