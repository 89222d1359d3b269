// ABOUTME: Optional (present/absent) dataset variant and the per-cycle Bundle.
// ABOUTME: A Bundle holds every dataset for one render cycle plus its load failures.
package models

import "fmt"

// Optional is either a present Dataset or an explicit absence.
// The zero value is Absent.
type Optional struct {
	ds *Dataset
}

// Present wraps a successfully loaded dataset.
func Present(ds *Dataset) Optional {
	return Optional{ds: ds}
}

// Absent marks a dataset that failed to load.
func Absent() Optional {
	return Optional{}
}

// Get returns the dataset and true when present.
func (o Optional) Get() (*Dataset, bool) {
	return o.ds, o.ds != nil
}

// IsPresent reports whether the dataset loaded.
func (o Optional) IsPresent() bool {
	return o.ds != nil
}

// Failure records why a dataset is absent for the current cycle.
type Failure struct {
	Dataset DatasetName
	Err     error
}

// Warning is the user-facing message for a failed load.
func (f Failure) Warning() string {
	return fmt.Sprintf("Could not load %s", f.Dataset.FileName())
}

// Bundle is the set of datasets for a single render cycle.
type Bundle struct {
	datasets map[DatasetName]Optional
	failures []Failure
}

// NewBundle creates an empty bundle; every dataset starts absent.
func NewBundle() *Bundle {
	return &Bundle{datasets: make(map[DatasetName]Optional, len(AllDatasets))}
}

// Set stores the load outcome for a dataset.
func (b *Bundle) Set(name DatasetName, opt Optional) {
	b.datasets[name] = opt
}

// Fail records a load failure and marks the dataset absent.
func (b *Bundle) Fail(name DatasetName, err error) {
	b.datasets[name] = Absent()
	b.failures = append(b.failures, Failure{Dataset: name, Err: err})
}

// Lookup returns the Optional for name (Absent if never set).
func (b *Bundle) Lookup(name DatasetName) Optional {
	return b.datasets[name]
}

// Get is shorthand for Lookup(name).Get().
func (b *Bundle) Get(name DatasetName) (*Dataset, bool) {
	return b.Lookup(name).Get()
}

// Failures returns load failures in the order they happened.
func (b *Bundle) Failures() []Failure {
	return b.failures
}

// Warnings returns the user-facing messages for every failure.
func (b *Bundle) Warnings() []string {
	out := make([]string, 0, len(b.failures))
	for _, f := range b.failures {
		out = append(out, f.Warning())
	}
	return out
}

// PresentCount returns how many datasets loaded.
func (b *Bundle) PresentCount() int {
	n := 0
	for _, opt := range b.datasets {
		if opt.IsPresent() {
			n++
		}
	}
	return n
}
