// ABOUTME: Page model produced by one render cycle.
// ABOUTME: Holds the title, load warnings, ordered widgets, and footer.
package render

import (
	"time"
)

// TimeLayout formats x-axis labels and table timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// DocumentTitle is the browser title of every HTML page.
const DocumentTitle = "Galaxy Watch Performance Dashboard"

// Footer is appended to every page.
const Footer = "Galaxy Watch Performance System • Demo Data"

// Page is the output of one render cycle for one role.
type Page struct {
	CycleID     string    `json:"cycle_id" yaml:"cycle_id"`
	Role        string    `json:"role" yaml:"role"`
	Title       string    `json:"title" yaml:"title"`
	Warnings    []string  `json:"warnings" yaml:"warnings"`
	Widgets     []Widget  `json:"widgets" yaml:"widgets"`
	Footer      string    `json:"footer" yaml:"footer"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// NewPage creates an empty page with the standard footer.
func NewPage(role, title string) *Page {
	return &Page{
		Role:        role,
		Title:       title,
		Warnings:    []string{},
		Widgets:     []Widget{},
		Footer:      Footer,
		GeneratedAt: time.Now().UTC(),
	}
}

// Warn adds a user-facing warning shown above the widgets.
func (p *Page) Warn(msg string) {
	p.Warnings = append(p.Warnings, msg)
}

// Add appends a widget in display order.
func (p *Page) Add(w Widget) {
	p.Widgets = append(p.Widgets, w)
}

// Count returns how many widgets of kind the page holds.
func (p *Page) Count(kind Kind) int {
	n := 0
	for _, w := range p.Widgets {
		if w.Kind == kind {
			n++
		}
	}
	return n
}

// Titles returns widget titles in display order.
func (p *Page) Titles() []string {
	out := make([]string, len(p.Widgets))
	for i, w := range p.Widgets {
		out[i] = w.Title
	}
	return out
}

// Find returns the first widget with title.
func (p *Page) Find(title string) (Widget, bool) {
	for _, w := range p.Widgets {
		if w.Title == title {
			return w, true
		}
	}
	return Widget{}, false
}

// Charts returns the line, area, and bar widgets in order.
func (p *Page) Charts() []Widget {
	var out []Widget
	for _, w := range p.Widgets {
		if w.Kind.IsChart() {
			out = append(out, w)
		}
	}
	return out
}

// NavItem is one entry of the role side panel.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}
