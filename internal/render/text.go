// ABOUTME: Terminal writer for pages: colored cards, sparklines, bars, and tables.
// ABOUTME: Used by the view command and the TUI main panel.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

const barWidth = 30

// WriteText renders p for a terminal.
func WriteText(w io.Writer, p *Page) error {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	var sb strings.Builder

	sb.WriteString(bold.Sprint(p.Title))
	sb.WriteString("\n\n")
	for _, msg := range p.Warnings {
		sb.WriteString(yellow.Sprintf("⚠ %s", msg))
		sb.WriteString("\n")
	}
	if len(p.Warnings) > 0 {
		sb.WriteString("\n")
	}

	for _, wg := range p.Widgets {
		switch wg.Kind {
		case KindMetric:
			fmt.Fprintf(&sb, "%s %s\n", padRight(wg.Title, 22), cyan.Sprint(wg.Metric.Display))
		case KindLine, KindArea:
			sb.WriteString("\n" + bold.Sprint(wg.Title))
			if wg.Kind == KindArea {
				sb.WriteString(faint.Sprint(" (stacked)"))
			}
			sb.WriteString("\n")
			if len(wg.Chart.X) > 0 {
				sb.WriteString(faint.Sprintf("  %s → %s\n", wg.Chart.X[0], wg.Chart.X[len(wg.Chart.X)-1]))
			}
			for _, s := range wg.Chart.Series {
				last := "-"
				if v, ok := lastValue(s.Values); ok {
					last = FormatValue(v, 2)
				}
				fmt.Fprintf(&sb, "  %s %s %s\n", padRight(s.Name, 16), Sparkline(s.Values), cyan.Sprint(last))
			}
		case KindBar:
			sb.WriteString("\n" + bold.Sprint(wg.Title) + "\n")
			writeBars(&sb, wg.Chart)
		case KindTable:
			sb.WriteString("\n" + bold.Sprint(wg.Title) + "\n")
			writeTable(&sb, wg.Table, faint)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(faint.Sprint(p.Footer))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// Sparkline draws values as block characters scaled between min and max.
// Missing and non-finite points are blank.
func Sparkline(values []*float64) string {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !finite(v) {
			continue
		}
		lo = math.Min(lo, *v)
		hi = math.Max(hi, *v)
	}

	// halved so the span of values near ±MaxFloat64 stays finite
	span := hi/2 - lo/2
	top := len(sparkBlocks) - 1

	out := make([]rune, len(values))
	for i, v := range values {
		switch {
		case !finite(v):
			out[i] = ' '
		case span == 0:
			out[i] = sparkBlocks[len(sparkBlocks)/2]
		default:
			idx := int((*v/2 - lo/2) / span * float64(top))
			out[i] = sparkBlocks[min(max(idx, 0), top)]
		}
	}
	return string(out)
}

func finite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

func lastValue(values []*float64) (float64, bool) {
	for i := len(values) - 1; i >= 0; i-- {
		if finite(values[i]) {
			return *values[i], true
		}
	}
	return 0, false
}

func writeBars(sb *strings.Builder, c *Chart) {
	if len(c.Series) == 0 {
		return
	}
	values := c.Series[0].Values
	peak := 0.0
	for _, v := range values {
		if finite(v) && *v > peak {
			peak = *v
		}
	}
	for i, label := range c.X {
		v := 0.0
		if i < len(values) && finite(values[i]) {
			v = *values[i]
		}
		n := 0
		if peak > 0 {
			n = min(max(int(math.Round(v/peak*barWidth)), 0), barWidth)
		}
		fmt.Fprintf(sb, "  %s %s %s\n", padRight(label, 6), padRight(strings.Repeat("█", n), barWidth), FormatValue(v, 0))
	}
}

func writeTable(sb *strings.Builder, t *Table, faint *color.Color) {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = len(col)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	cells := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		cells[i] = padRight(col, widths[i])
	}
	sb.WriteString("  " + faint.Sprint(strings.Join(cells, "  ")) + "\n")

	if len(t.Rows) == 0 {
		sb.WriteString(faint.Sprint("  (no rows)") + "\n")
		return
	}
	for _, row := range t.Rows {
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = padRight(truncate(cell, 40), widths[i])
		}
		sb.WriteString("  " + strings.Join(cells, "  ") + "\n")
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
