// ABOUTME: Page export in JSON, YAML, Markdown, HTML, and text formats.
// ABOUTME: Format parsing and a single Write entry point for every writer.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an output encoding for a Page.
type Format string

const (
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// AllFormats lists the supported formats.
var AllFormats = []Format{FormatHTML, FormatJSON, FormatYAML, FormatMarkdown, FormatText}

// ParseFormat accepts a format name or common alias.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "htm":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown format: %s (use html, json, yaml, markdown, or text)", s)
}

// Write renders p in format f. nav is only used by HTML.
func Write(w io.Writer, p *Page, f Format, nav []NavItem) error {
	switch f {
	case FormatHTML:
		return WriteHTML(w, p, nav)
	case FormatJSON:
		return WriteJSON(w, p)
	case FormatYAML:
		return WriteYAML(w, p)
	case FormatMarkdown:
		return WriteMarkdown(w, p)
	case FormatText:
		return WriteText(w, p)
	}
	return fmt.Errorf("unknown format: %s", f)
}

// WriteJSON writes p as indented JSON.
func WriteJSON(w io.Writer, p *Page) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteYAML writes p as YAML.
func WriteYAML(w io.Writer, p *Page) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("marshal YAML: %w", err)
	}
	return enc.Close()
}

// WriteMarkdown writes p as Markdown: metric list, chart data tables, and row tables.
func WriteMarkdown(w io.Writer, p *Page) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", p.Title))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", p.GeneratedAt.Format(TimeLayout)))

	for _, msg := range p.Warnings {
		sb.WriteString(fmt.Sprintf("> **Warning:** %s\n", msg))
	}
	if len(p.Warnings) > 0 {
		sb.WriteString("\n")
	}

	metrics := widgetsOf(p, KindMetric)
	if len(metrics) > 0 {
		sb.WriteString("| Metric | Value |\n")
		sb.WriteString("|--------|-------|\n")
		for _, m := range metrics {
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", m.Title, m.Metric.Display))
		}
		sb.WriteString("\n")
	}

	for _, wg := range p.Widgets {
		switch wg.Kind {
		case KindLine, KindArea, KindBar:
			sb.WriteString(fmt.Sprintf("## %s\n\n", wg.Title))
			header := []string{"x"}
			for _, s := range wg.Chart.Series {
				header = append(header, s.Name)
			}
			writeMarkdownHeader(&sb, header)
			for i, x := range wg.Chart.X {
				row := []string{x}
				for _, s := range wg.Chart.Series {
					cell := ""
					if i < len(s.Values) && s.Values[i] != nil {
						cell = FormatValue(*s.Values[i], 2)
					}
					row = append(row, cell)
				}
				writeMarkdownRow(&sb, row)
			}
			sb.WriteString("\n")
		case KindTable:
			sb.WriteString(fmt.Sprintf("## %s\n\n", wg.Title))
			writeMarkdownHeader(&sb, wg.Table.Columns)
			for _, row := range wg.Table.Rows {
				writeMarkdownRow(&sb, row)
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(fmt.Sprintf("---\n\n%s\n", p.Footer))

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeMarkdownHeader(sb *strings.Builder, cols []string) {
	writeMarkdownRow(sb, cols)
	sep := make([]string, len(cols))
	for i, c := range cols {
		sep[i] = strings.Repeat("-", max(3, len(c)))
	}
	writeMarkdownRow(sb, sep)
}

// markdownCell keeps a cell on one line and inside its column.
var markdownCell = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

func writeMarkdownRow(sb *strings.Builder, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = markdownCell.Replace(c)
	}
	sb.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
}
