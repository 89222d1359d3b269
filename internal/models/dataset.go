// ABOUTME: Dataset and Row models for one metric family's time series.
// ABOUTME: Rows hold raw cells keyed by column; derived copies never mutate the source.
package models

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Row is one timestamped record of a dataset.
type Row struct {
	Timestamp time.Time
	Fields    map[string]string
}

// Get returns the raw cell for col, or "" when the column is absent.
func (r Row) Get(col string) string {
	return r.Fields[col]
}

// Float parses the cell for col. Blank, missing, NaN and infinite cells are not ok.
func (r Row) Float(col string) (float64, bool) {
	raw := strings.TrimSpace(r.Fields[col])
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (r Row) clone() Row {
	fields := make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	return Row{Timestamp: r.Timestamp, Fields: fields}
}

// Dataset is one metric family's table, ordered by timestamp ascending.
type Dataset struct {
	Name    DatasetName
	Columns []string
	Rows    []Row
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// HasColumn reports whether col is part of the header.
func (d *Dataset) HasColumn(col string) bool {
	return slices.Contains(d.Columns, col)
}

// Clone returns a deep copy that can be extended without touching d.
func (d *Dataset) Clone() *Dataset {
	rows := make([]Row, len(d.Rows))
	for i, r := range d.Rows {
		rows[i] = r.clone()
	}
	return &Dataset{
		Name:    d.Name,
		Columns: slices.Clone(d.Columns),
		Rows:    rows,
	}
}

// WithColumn returns a copy of d with col set on every row to fn(row).
// An existing column of the same name is overwritten in the copy.
func (d *Dataset) WithColumn(col string, fn func(Row) string) *Dataset {
	out := d.Clone()
	if !out.HasColumn(col) {
		out.Columns = append(out.Columns, col)
	}
	for i := range out.Rows {
		out.Rows[i].Fields[col] = fn(d.Rows[i])
	}
	return out
}

// Filter returns a copy holding only the rows for which keep is true.
func (d *Dataset) Filter(keep func(Row) bool) *Dataset {
	out := &Dataset{Name: d.Name, Columns: slices.Clone(d.Columns)}
	for _, r := range d.Rows {
		if keep(r) {
			out.Rows = append(out.Rows, r.clone())
		}
	}
	return out
}

// Timestamps returns the timestamp of every row in order.
func (d *Dataset) Timestamps() []time.Time {
	ts := make([]time.Time, len(d.Rows))
	for i, r := range d.Rows {
		ts[i] = r.Timestamp
	}
	return ts
}

// Floats returns the numeric values of col with a parallel validity mask.
func (d *Dataset) Floats(col string) ([]float64, []bool) {
	values := make([]float64, len(d.Rows))
	valid := make([]bool, len(d.Rows))
	for i, r := range d.Rows {
		values[i], valid[i] = r.Float(col)
	}
	return values, valid
}

// FormatFloat renders a derived numeric cell the way CSV input would carry it.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
