// ABOUTME: Render engine: one cycle loads every dataset, dispatches a role routine, returns a Page.
// ABOUTME: Cycles share nothing; each gets a fresh Bundle, Page, and ID.
package dashboard

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harperreed/galaxydash/internal/derive"
	"github.com/harperreed/galaxydash/internal/models"
	"github.com/harperreed/galaxydash/internal/render"
	"github.com/harperreed/galaxydash/internal/telemetry"
)

// Source produces the dataset bundle for a cycle.
type Source interface {
	LoadAll() *models.Bundle
}

// Cycle is the state of one render pass. It is built by Engine.Render,
// handed to exactly one routine, and dropped afterwards.
type Cycle struct {
	ID        uuid.UUID
	Role      models.Role
	Datasets  *models.Bundle
	StartedAt time.Time
	Logger    *log.Logger
}

// Routine places the widgets of one role on p.
type Routine func(c *Cycle, p *render.Page)

// routines is the dispatch table; every role has exactly one entry.
var routines = map[models.Role]Routine{
	models.RoleAthlete:    athlete,
	models.RoleCoach:      coach,
	models.RoleTrainer:    trainer,
	models.RoleTeamDoctor: doctor,
}

// titles are the page headings per role.
var titles = map[models.Role]string{
	models.RoleAthlete:    "Athlete Overview",
	models.RoleCoach:      "Coach Performance Dashboard",
	models.RoleTrainer:    "Trainer Conditioning & Recovery",
	models.RoleTeamDoctor: "Medical Monitoring",
}

// Title returns the page heading for role.
func Title(role models.Role) string {
	return titles[role]
}

// Engine runs render cycles against a dataset source.
type Engine struct {
	source    Source
	logger    *log.Logger
	telemetry telemetry.Recorder
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTelemetry sets the recorder that observes every cycle.
func WithTelemetry(r telemetry.Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.telemetry = r
		}
	}
}

// NewEngine creates an engine reading from source.
func NewEngine(source Source, opts ...Option) *Engine {
	e := &Engine{
		source:    source,
		logger:    log.New(io.Discard),
		telemetry: telemetry.Nop{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render runs one full cycle for role. A context that is already done stops
// the cycle before any file is read; a started cycle always completes.
func (e *Engine) Render(ctx context.Context, role models.Role) (*render.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render %s: %w", role, err)
	}
	routine, ok := routines[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownRole, string(role))
	}

	c := &Cycle{
		ID:        uuid.New(),
		Role:      role,
		StartedAt: time.Now(),
	}
	c.Logger = e.logger.With("cycle", c.ID.String()[:8], "role", role.Slug())
	c.Datasets = e.source.LoadAll()

	page := render.NewPage(string(role), titles[role])
	page.CycleID = c.ID.String()
	for _, f := range c.Datasets.Failures() {
		page.Warn(f.Warning())
		e.telemetry.ObserveLoadFailure(string(f.Dataset))
	}

	routine(c, page)

	for _, w := range page.Widgets {
		e.telemetry.ObserveWidget(role.Slug(), string(w.Kind))
	}
	elapsed := time.Since(c.StartedAt)
	e.telemetry.ObserveCycle(role.Slug(), elapsed)
	c.Logger.Debug("cycle rendered",
		"widgets", page.Titles(),
		"metrics", page.Count(render.KindMetric),
		"charts", len(page.Charts()),
		"warnings", len(page.Warnings),
		"elapsed", elapsed)

	return page, nil
}

// RenderSlug parses a role name or slug and renders it.
func (e *Engine) RenderSlug(ctx context.Context, s string) (*render.Page, error) {
	role, err := models.ParseRole(s)
	if err != nil {
		return nil, err
	}
	return e.Render(ctx, role)
}

// Status loads every dataset once and reports each outcome in catalog order.
func (e *Engine) Status() []DatasetStatus {
	b := e.source.LoadAll()
	errs := make(map[models.DatasetName]error, len(b.Failures()))
	for _, f := range b.Failures() {
		errs[f.Dataset] = f.Err
	}

	out := make([]DatasetStatus, 0, len(models.AllDatasets))
	for _, name := range models.AllDatasets {
		st := DatasetStatus{Name: name, File: name.FileName()}
		if ds, ok := b.Get(name); ok {
			st.Present = true
			st.Rows = ds.Len()
		} else if err := errs[name]; err != nil {
			st.Error = err.Error()
		}
		out = append(out, st)
	}
	return out
}

// DatasetStatus is the load outcome of one dataset.
type DatasetStatus struct {
	Name    models.DatasetName `json:"name"`
	File    string             `json:"file"`
	Present bool               `json:"present"`
	Rows    int                `json:"rows"`
	Error   string             `json:"error,omitempty"`
}

// metric places a last-value metric card, or logs and skips it when the
// dataset has no usable last value.
func (c *Cycle) metric(p *render.Page, ds *models.Dataset, col, label string, precision int) {
	v, ok := derive.Last(ds, col)
	if !ok {
		c.Logger.Warn("metric skipped, no last value", "metric", label, "dataset", ds.Name)
		return
	}
	p.Metric(label, v, precision)
}
