// ABOUTME: Tests for page primitives and every output writer.
// ABOUTME: Checks widget shapes, missing-point handling, and rendered content.
package render

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/harperreed/galaxydash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var t0 = time.Date(2025, 5, 1, 7, 0, 0, 0, time.UTC)

func heartRate(values ...string) *models.Dataset {
	ds := &models.Dataset{Name: models.DatasetHeartRate, Columns: []string{"timestamp", "bpm"}}
	for i, v := range values {
		ds.Rows = append(ds.Rows, models.Row{
			Timestamp: t0.Add(time.Duration(i) * time.Minute),
			Fields:    map[string]string{"bpm": v},
		})
	}
	return ds
}

func samplePage() *Page {
	p := NewPage("Team Doctor", "Medical Monitoring")
	p.Warn("Could not load spo2.csv")
	p.Metric("ECG Abnormal Events", 3, 0)
	p.Line(heartRate("72", "", "80"), "bpm", "Heart Rate")
	p.Bar("Heart Rate Zones", models.Tally{{Label: "Z1", Count: 2}, {Label: "Z2", Count: 0}})
	falls := &models.Dataset{
		Name:    models.DatasetFalls,
		Columns: []string{"timestamp", "fall_detected"},
		Rows:    []models.Row{{Timestamp: t0, Fields: map[string]string{"fall_detected": "1"}}},
	}
	p.Table("Fall Events", falls)
	return p
}

func TestMetricPrecision(t *testing.T) {
	p := NewPage("Athlete", "Athlete Overview")
	p.Metric("Calories Burned", 1999.9, 0)
	p.Metric("Energy Score", -4.7, 0)
	p.Metric("Antioxidant Index", 0.456, 2)

	require.Len(t, p.Widgets, 3)
	assert.Equal(t, "1999", p.Widgets[0].Metric.Display)
	assert.Equal(t, 1999.0, p.Widgets[0].Metric.Value)
	assert.Equal(t, "-4", p.Widgets[1].Metric.Display, "truncates toward zero")
	assert.Equal(t, "0.46", p.Widgets[2].Metric.Display)
	assert.Equal(t, 0.46, p.Widgets[2].Metric.Value)
}

func TestMetricRoundsHalfToEven(t *testing.T) {
	p := NewPage("Athlete", "Athlete Overview")
	p.Metric("Antioxidant Index", 0.125, 2)
	p.Metric("Antioxidant Index", 0.375, 2)

	assert.Equal(t, "0.12", p.Widgets[0].Metric.Display)
	assert.Equal(t, "0.38", p.Widgets[1].Metric.Display)
}

func TestLineMissingPoints(t *testing.T) {
	p := NewPage("Coach", "Coach")
	p.Line(heartRate("72", "", "80"), "bpm", "Heart Rate")

	w := p.Widgets[0]
	assert.Equal(t, KindLine, w.Kind)
	assert.Equal(t, "heart_rate", w.Dataset)
	require.Len(t, w.Chart.Series, 1)
	s := w.Chart.Series[0]
	assert.Equal(t, "bpm", s.Name)
	require.Len(t, s.Values, 3)
	assert.Equal(t, 72.0, *s.Values[0])
	assert.Nil(t, s.Values[1])
	assert.Equal(t, []string{"2025-05-01 07:00:00", "2025-05-01 07:01:00", "2025-05-01 07:02:00"}, w.Chart.X)
}

func TestLinesAndArea(t *testing.T) {
	bp := &models.Dataset{
		Name:    models.DatasetBloodPressure,
		Columns: []string{"timestamp", "systolic", "diastolic"},
		Rows:    []models.Row{{Timestamp: t0, Fields: map[string]string{"systolic": "120", "diastolic": "80"}}},
	}
	p := NewPage("Team Doctor", "Medical Monitoring")
	p.Lines(bp, []string{"systolic", "diastolic"}, "Blood Pressure")
	p.Area(bp, []string{"systolic", "diastolic"}, "Stacked")

	assert.Len(t, p.Widgets[0].Chart.Series, 2)
	assert.False(t, p.Widgets[0].Chart.Stacked)
	assert.Equal(t, KindArea, p.Widgets[1].Kind)
	assert.True(t, p.Widgets[1].Chart.Stacked)
	assert.Equal(t, 2, p.Count(KindLine)+p.Count(KindArea))
}

func TestBarKeepsTallyOrder(t *testing.T) {
	p := NewPage("Trainer", "Trainer")
	p.Bar("Heart Rate Zones", models.Tally{{Label: "Z1", Count: 4}, {Label: "Z2", Count: 0}, {Label: "Z3", Count: 1}})

	c := p.Widgets[0].Chart
	assert.Equal(t, []string{"Z1", "Z2", "Z3"}, c.X)
	assert.Equal(t, 0.0, *c.Series[0].Values[1])
}

func TestTableEmptyKeepsHeader(t *testing.T) {
	p := NewPage("Team Doctor", "Medical Monitoring")
	p.Table("Fall Events", &models.Dataset{Name: models.DatasetFalls, Columns: []string{"timestamp", "fall_detected"}})

	tbl := p.Widgets[0].Table
	assert.Equal(t, []string{"timestamp", "fall_detected"}, tbl.Columns)
	assert.Empty(t, tbl.Rows)
}

func TestPageHelpers(t *testing.T) {
	p := samplePage()
	assert.Equal(t, []string{"ECG Abnormal Events", "Heart Rate", "Heart Rate Zones", "Fall Events"}, p.Titles())
	assert.Len(t, p.Charts(), 2)

	w, ok := p.Find("Fall Events")
	assert.True(t, ok)
	assert.Equal(t, KindTable, w.Kind)
	_, ok = p.Find("Nope")
	assert.False(t, ok)
	assert.Equal(t, Footer, p.Footer)
}

func TestWriteHTML(t *testing.T) {
	nav := []NavItem{
		{Label: "Athlete", Href: "/?role=athlete"},
		{Label: "Team Doctor", Href: "/?role=team-doctor", Active: true},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, samplePage(), nav))
	html := buf.String()

	assert.Contains(t, html, "<h1 class=\"gd-title\">Medical Monitoring</h1>")
	assert.Contains(t, html, `<a href="/?role=team-doctor" class="active">Team Doctor</a>`)
	assert.Contains(t, html, "Could not load spo2.csv")
	assert.Contains(t, html, "ECG Abnormal Events")
	assert.Contains(t, html, "<th>fall_detected</th>")
	assert.Contains(t, html, "<td>2025-05-01 07:00:00</td>")
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "gd-footer")

	assert.Less(t, strings.Index(html, `class="gd-cards"`), strings.Index(html, `class="gd-table"`), "cards above tables")
}

func TestWriteHTMLEscapes(t *testing.T) {
	p := NewPage("Athlete", "Athlete Overview")
	p.Warn("<script>alert(1)</script>")

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, p, nil))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, samplePage()))
	out := buf.String()

	assert.Contains(t, out, "Medical Monitoring")
	assert.Contains(t, out, "Could not load spo2.csv")
	assert.Contains(t, out, "ECG Abnormal Events")
	assert.Contains(t, out, "Heart Rate Zones")
	assert.Contains(t, out, "fall_detected")
	assert.Contains(t, out, Footer)
}

func TestSparkline(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name   string
		values []*float64
		want   string
	}{
		{"gap", []*float64{f(1), nil, f(9)}, "▁ █"},
		{"flat", []*float64{f(3), f(3)}, "▅▅"},
		{"empty", nil, ""},
		{"single", []*float64{f(5)}, "▅"},
		{"all missing", []*float64{nil, nil}, "  "},
		{"extreme span", []*float64{f(-math.MaxFloat64), f(math.MaxFloat64)}, "▁█"},
		{"near max", []*float64{f(-1.7e308), f(0), f(1.7e308)}, "▁▄█"},
		{"infinite points blank", []*float64{f(1), f(math.Inf(1)), f(9), f(math.Inf(-1))}, "▁ █ "},
		{"nan point blank", []*float64{f(math.NaN()), f(2), f(4)}, " ▁█"},
		{"only infinite", []*float64{f(math.Inf(1))}, " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sparkline(tt.values))
		})
	}
}

func TestWriteTextExtremeSeries(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	series := [][]*float64{
		{f(-1.7e308), f(1.7e308)},
		{f(100), f(math.Inf(1))},
		{f(math.NaN()), nil},
		{nil, nil},
	}
	for _, values := range series {
		p := NewPage("Coach", "Coach Performance Dashboard")
		p.Add(Widget{
			Kind:  KindLine,
			Title: "Calories Burned",
			Chart: &Chart{X: []string{"a", "b"}, Series: []Series{{Name: "calories", Values: values}}},
		})
		p.Bar("Heart Rate Zones", models.Tally{{Label: "Z1", Count: 0}, {Label: "Z2", Count: 0}})

		var buf bytes.Buffer
		assert.NotPanics(t, func() {
			require.NoError(t, WriteText(&buf, p))
		})
		assert.Contains(t, buf.String(), "Calories Burned")
	}
}

func TestWriteTextFromExtremeDataset(t *testing.T) {
	p := NewPage("Coach", "Coach Performance Dashboard")
	p.Line(heartRate("-1.7e308", "1.7e308"), "bpm", "Heart Rate")

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, p))
	assert.Contains(t, buf.String(), "▁█")
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, samplePage()))
	md := buf.String()

	assert.True(t, strings.HasPrefix(md, "# Medical Monitoring\n"))
	assert.Contains(t, md, "> **Warning:** Could not load spo2.csv")
	assert.Contains(t, md, "| ECG Abnormal Events | 3 |")
	assert.Contains(t, md, "## Heart Rate")
	assert.Contains(t, md, "| 2025-05-01 07:01:00 |  |", "missing point renders as an empty cell")
	assert.Contains(t, md, "| Z1 | 2.00 |")
	assert.Contains(t, md, "## Fall Events")
}

func TestWriteMarkdownEscapesCells(t *testing.T) {
	falls := &models.Dataset{
		Name:    models.DatasetFalls,
		Columns: []string{"timestamp", "fall_detected", "note"},
		Rows: []models.Row{{Timestamp: t0, Fields: map[string]string{
			"fall_detected": "1",
			"note":          "stairs | left\nknee",
		}}},
	}
	p := NewPage("Team Doctor", "Medical Monitoring")
	p.Table("Fall Events", falls)

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, p))
	assert.Contains(t, buf.String(), `| 2025-05-01 07:00:00 | 1 | stairs \| left knee |`)
}

func TestWriteHTMLStackedArea(t *testing.T) {
	sleep := &models.Dataset{
		Name:    models.DatasetSleep,
		Columns: []string{"timestamp", "deep", "light", "rem"},
		Rows: []models.Row{
			{Timestamp: t0, Fields: map[string]string{"deep": "1.0", "light": "2.0", "rem": "0.5"}},
			{Timestamp: t0.Add(24 * time.Hour), Fields: map[string]string{"deep": "1.5", "light": "", "rem": "1.0"}},
		},
	}
	p := NewPage("Trainer", "Trainer Conditioning & Recovery")
	p.Area(sleep, []string{"deep", "light", "rem"}, "Sleep Stages")

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, p, nil))
	assert.Contains(t, buf.String(), "Sleep Stages")
	assert.Contains(t, buf.String(), "opacity")
}

func TestWriteHTMLDocumentTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, samplePage(), nil))
	assert.Contains(t, buf.String(), "<title>"+DocumentTitle+"</title>")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, samplePage()))

	var decoded struct {
		Title    string   `json:"title"`
		Warnings []string `json:"warnings"`
		Widgets  []struct {
			Kind  string `json:"kind"`
			Chart *struct {
				Series []struct {
					Values []*float64 `json:"values"`
				} `json:"series"`
			} `json:"chart"`
		} `json:"widgets"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "Medical Monitoring", decoded.Title)
	assert.Equal(t, []string{"Could not load spo2.csv"}, decoded.Warnings)
	require.Len(t, decoded.Widgets, 4)
	assert.Equal(t, "line", decoded.Widgets[1].Kind)
	assert.Nil(t, decoded.Widgets[1].Chart.Series[0].Values[1])
	assert.Contains(t, buf.String(), "null")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, samplePage()))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Medical Monitoring", decoded["title"])
	assert.Equal(t, "Team Doctor", decoded["role"])
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"html": FormatHTML, "JSON": FormatJSON, "yml": FormatYAML,
		"md": FormatMarkdown, "markdown": FormatMarkdown, " text ": FormatText,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}

func TestWriteDispatch(t *testing.T) {
	for _, f := range AllFormats {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, samplePage(), f, nil), f)
		assert.Contains(t, buf.String(), "Medical Monitoring", f)
	}
	assert.Error(t, Write(&bytes.Buffer{}, samplePage(), Format("pdf"), nil))
}
