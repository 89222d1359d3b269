// ABOUTME: HTML page writer built on go-echarts.
// ABOUTME: Charts come from an echarts page; nav, cards, and tables are injected around them.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteHTML renders p as a standalone HTML document with nav as the side panel.
func WriteHTML(w io.Writer, p *Page, nav []NavItem) error {
	page := components.NewPage()
	page.PageTitle = DocumentTitle
	for _, wg := range p.Charts() {
		page.AddCharts(chartFor(wg))
	}

	var buf strings.Builder
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}

	top, err := execute(topTmpl, struct {
		Page    *Page
		Nav     []NavItem
		Metrics []Widget
	}{p, nav, widgetsOf(p, KindMetric)})
	if err != nil {
		return err
	}
	bottom, err := execute(bottomTmpl, struct {
		Page   *Page
		Tables []Widget
	}{p, widgetsOf(p, KindTable)})
	if err != nil {
		return err
	}

	html := buf.String()
	html = strings.Replace(html, "</head>", pageCSS+"</head>", 1)
	html = strings.Replace(html, "<body>", "<body>\n"+top, 1)
	html = strings.Replace(html, "</body>", bottom+"</body>", 1)

	_, err = io.WriteString(w, html)
	return err
}

func widgetsOf(p *Page, kind Kind) []Widget {
	var out []Widget
	for _, w := range p.Widgets {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func chartFor(w Widget) components.Charter {
	global := []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: w.Title}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(len(w.Chart.Series) > 1),
			Top:  "30",
		}),
		charts.WithGridOpts(opts.Grid{
			Left:   "8%",
			Right:  "4%",
			Bottom: "15%",
			Top:    "80",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: "380px",
		}),
	}

	if w.Kind == KindBar {
		bar := charts.NewBar()
		bar.SetGlobalOptions(global...)
		bar.SetXAxis(w.Chart.X)
		for _, s := range w.Chart.Series {
			data := make([]opts.BarData, len(s.Values))
			for i, v := range s.Values {
				if v != nil {
					data[i] = opts.BarData{Value: *v}
				}
			}
			bar.AddSeries(s.Name, data)
		}
		return bar
	}

	line := charts.NewLine()
	line.SetGlobalOptions(append(global,
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			AxisLabel: &opts.AxisLabel{Rotate: 30},
		}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
	)...)
	line.SetXAxis(w.Chart.X)

	for _, s := range w.Chart.Series {
		data := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			if v == nil {
				// echarts draws "-" as a gap
				data[i] = opts.LineData{Value: "-"}
				continue
			}
			data[i] = opts.LineData{Value: *v}
		}

		seriesOpts := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(false),
				ShowSymbol: opts.Bool(len(s.Values) < 60),
			}),
		}
		if w.Chart.Stacked {
			seriesOpts = append(seriesOpts,
				charts.WithLineChartOpts(opts.LineChart{Stack: "total"}),
				charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.6}),
			)
		}
		line.AddSeries(s.Name, data, seriesOpts...)
	}
	return line
}

const pageCSS = `<style>
  body { margin: 0; padding: 0 24px 24px 240px; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; background: #f7f8fa; }
  .gd-nav { position: fixed; left: 0; top: 0; bottom: 0; width: 200px; padding: 24px 16px; background: #1f2a44; color: #fff; }
  .gd-nav h2 { font-size: 15px; margin: 0 0 16px; color: #9fb3d9; }
  .gd-nav a { display: block; padding: 8px 10px; border-radius: 6px; color: #dce4f2; text-decoration: none; }
  .gd-nav a.active { background: #3b5bdb; color: #fff; }
  .gd-title { margin: 24px 0 12px; }
  .gd-warning { background: #fff4e5; border-left: 4px solid #f59f00; padding: 8px 12px; margin: 6px 0; }
  .gd-cards { display: flex; flex-wrap: wrap; gap: 12px; margin: 16px 0; }
  .gd-card { background: #fff; border-radius: 8px; padding: 14px 20px; min-width: 160px; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
  .gd-card .label { font-size: 13px; color: #667; }
  .gd-card .value { font-size: 28px; font-weight: 600; }
  .gd-table { border-collapse: collapse; background: #fff; margin: 8px 0 24px; }
  .gd-table th, .gd-table td { border: 1px solid #dde; padding: 6px 10px; text-align: left; }
  .gd-footer { color: #889; font-size: 12px; margin-top: 32px; }
  .container { display: block !important; }
  .item { margin: 12px 0 !important; background: #fff; border-radius: 8px; }
</style>
`

var topTmpl = template.Must(template.New("top").Parse(`<nav class="gd-nav">
  <h2>Select Role</h2>
  {{- range .Nav }}
  <a href="{{ .Href }}"{{ if .Active }} class="active"{{ end }}>{{ .Label }}</a>
  {{- end }}
</nav>
<h1 class="gd-title">{{ .Page.Title }}</h1>
{{- range .Page.Warnings }}
<div class="gd-warning">{{ . }}</div>
{{- end }}
{{- if .Metrics }}
<div class="gd-cards">
  {{- range .Metrics }}
  <div class="gd-card"><div class="label">{{ .Title }}</div><div class="value">{{ .Metric.Display }}</div></div>
  {{- end }}
</div>
{{- end }}
`))

var bottomTmpl = template.Must(template.New("bottom").Parse(`
{{- range .Tables }}
<h3>{{ .Title }}</h3>
<table class="gd-table">
  <tr>{{ range .Table.Columns }}<th>{{ . }}</th>{{ end }}</tr>
  {{- range .Table.Rows }}
  <tr>{{ range . }}<td>{{ . }}</td>{{ end }}</tr>
  {{- end }}
</table>
{{- end }}
<footer class="gd-footer">{{ .Page.Footer }}</footer>
`))
