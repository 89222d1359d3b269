// ABOUTME: Dataset loader reading per-metric CSV files from a base directory.
// ABOUTME: Failures become LoadFailure warnings and an Absent dataset, never a crash.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harperreed/galaxydash/internal/models"
)

// LoadFailure is the only error kind the loader produces. It names the file
// and wraps the cause, so errors.Is(err, fs.ErrNotExist) works for missing files.
type LoadFailure struct {
	File string
	Err  error
}

func (e *LoadFailure) Error() string {
	return fmt.Sprintf("could not load %s: %v", e.File, e.Err)
}

func (e *LoadFailure) Unwrap() error {
	return e.Err
}

// Loader reads datasets from a fixed directory.
type Loader struct {
	fsys   fs.FS
	logger *log.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for load warnings.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Loader over fsys. File names are resolved at the fsys root.
func New(fsys fs.FS, opts ...Option) *Loader {
	l := &Loader{
		fsys:   fsys,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewDir creates a Loader rooted at a directory on disk.
func NewDir(dir string, opts ...Option) *Loader {
	return New(os.DirFS(dir), opts...)
}

// Load reads one dataset. On failure it logs a warning and returns Absent
// together with a *LoadFailure; callers treat the error as non-fatal.
func (l *Loader) Load(name models.DatasetName) (models.Optional, error) {
	ds, err := l.read(name)
	if err != nil {
		failure := &LoadFailure{File: name.FileName(), Err: err}
		l.logger.Warn("dataset unavailable", "file", failure.File, "err", err)
		return models.Absent(), failure
	}
	l.logger.Debug("dataset loaded", "file", name.FileName(), "rows", ds.Len())
	return models.Present(ds), nil
}

// LoadAll loads every dataset once, in catalog order, into a fresh Bundle.
func (l *Loader) LoadAll() *models.Bundle {
	b := models.NewBundle()
	for _, name := range models.AllDatasets {
		opt, err := l.Load(name)
		if err != nil {
			b.Fail(name, err)
			continue
		}
		b.Set(name, opt)
	}
	return b
}

func (l *Loader) read(name models.DatasetName) (*models.Dataset, error) {
	f, err := l.fsys.Open(name.FileName())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := Parse(name, f)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("truncated file: %w", err)
		}
		return nil, err
	}
	return ds, nil
}
