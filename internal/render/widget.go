// ABOUTME: Display primitives: metric card, line/area/bar charts, and tables.
// ABOUTME: Each primitive turns a dataset or tally into one Widget on a Page.
package render

import (
	"math"
	"strconv"

	"github.com/harperreed/galaxydash/internal/models"
)

// Kind is the widget type.
type Kind string

const (
	KindMetric Kind = "metric"
	KindLine   Kind = "line"
	KindArea   Kind = "area"
	KindBar    Kind = "bar"
	KindTable  Kind = "table"
)

// IsChart reports whether the widget draws a chart.
func (k Kind) IsChart() bool {
	return k == KindLine || k == KindArea || k == KindBar
}

// Widget is one visual element. Exactly one of Metric, Chart, or Table is set.
type Widget struct {
	Kind    Kind    `json:"kind" yaml:"kind"`
	Title   string  `json:"title" yaml:"title"`
	Dataset string  `json:"dataset,omitempty" yaml:"dataset,omitempty"`
	Metric  *Metric `json:"metric,omitempty" yaml:"metric,omitempty"`
	Chart   *Chart  `json:"chart,omitempty" yaml:"chart,omitempty"`
	Table   *Table  `json:"table,omitempty" yaml:"table,omitempty"`
}

// Metric is a single labeled number.
type Metric struct {
	Value     float64 `json:"value" yaml:"value"`
	Precision int     `json:"precision" yaml:"precision"`
	Display   string  `json:"display" yaml:"display"`
}

// Chart is a category x-axis with one or more named series.
// A nil value marks a missing point.
type Chart struct {
	X       []string `json:"x" yaml:"x"`
	Series  []Series `json:"series" yaml:"series"`
	Stacked bool     `json:"stacked,omitempty" yaml:"stacked,omitempty"`
}

// Series is one named line, area band, or bar set.
type Series struct {
	Name   string     `json:"name" yaml:"name"`
	Values []*float64 `json:"values" yaml:"values"`
}

// Table is a plain row grid with a header.
type Table struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// FormatValue renders v with a fixed number of decimals.
func FormatValue(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Metric adds a metric card. Precision 0 truncates toward zero, so 1999.9
// displays as 1999; a positive precision rounds half to even at that many
// decimals, so 0.125 at precision 2 displays as 0.12.
func (p *Page) Metric(label string, value float64, precision int) {
	if precision <= 0 {
		value = math.Trunc(value)
		precision = 0
	} else {
		scale := math.Pow(10, float64(precision))
		value = math.RoundToEven(value*scale) / scale
	}
	p.Add(Widget{
		Kind:  KindMetric,
		Title: label,
		Metric: &Metric{
			Value:     value,
			Precision: precision,
			Display:   FormatValue(value, precision),
		},
	})
}

// Line adds a single-series line chart of col over time.
func (p *Page) Line(ds *models.Dataset, col, title string) {
	p.Lines(ds, []string{col}, title)
}

// Lines adds a line chart with one series per column over a shared time axis.
func (p *Page) Lines(ds *models.Dataset, cols []string, title string) {
	p.Add(Widget{
		Kind:    KindLine,
		Title:   title,
		Dataset: string(ds.Name),
		Chart:   timeChart(ds, cols),
	})
}

// Area adds a stacked area chart with one band per column.
func (p *Page) Area(ds *models.Dataset, cols []string, title string) {
	c := timeChart(ds, cols)
	c.Stacked = true
	p.Add(Widget{
		Kind:    KindArea,
		Title:   title,
		Dataset: string(ds.Name),
		Chart:   c,
	})
}

// Bar adds a categorical bar chart from a pre-aggregated tally.
func (p *Page) Bar(title string, tally models.Tally) {
	values := make([]*float64, len(tally))
	for i, e := range tally {
		v := float64(e.Count)
		values[i] = &v
	}
	p.Add(Widget{
		Kind:  KindBar,
		Title: title,
		Chart: &Chart{
			X:      tally.Labels(),
			Series: []Series{{Name: "count", Values: values}},
		},
	})
}

// Table adds a table holding every column and row of ds.
// An empty dataset still renders its header.
func (p *Page) Table(title string, ds *models.Dataset) {
	t := &Table{
		Columns: append([]string(nil), ds.Columns...),
		Rows:    make([][]string, 0, ds.Len()),
	}
	for _, r := range ds.Rows {
		row := make([]string, len(ds.Columns))
		for i, col := range ds.Columns {
			if col == models.ColTimestamp {
				row[i] = r.Timestamp.Format(TimeLayout)
				continue
			}
			row[i] = r.Get(col)
		}
		t.Rows = append(t.Rows, row)
	}
	p.Add(Widget{
		Kind:    KindTable,
		Title:   title,
		Dataset: string(ds.Name),
		Table:   t,
	})
}

func timeChart(ds *models.Dataset, cols []string) *Chart {
	c := &Chart{X: make([]string, ds.Len())}
	for i, ts := range ds.Timestamps() {
		c.X[i] = ts.Format(TimeLayout)
	}
	for _, col := range cols {
		values, valid := ds.Floats(col)
		s := Series{Name: col, Values: make([]*float64, len(values))}
		for i := range values {
			if valid[i] {
				v := values[i]
				s.Values[i] = &v
			}
		}
		c.Series = append(c.Series, s)
	}
	return c
}
