// ABOUTME: Tally model for pre-aggregated categorical counts.
// ABOUTME: Feeds the categorical bar chart primitive.
package models

// TallyEntry is one category and how many rows fell into it.
type TallyEntry struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Tally is an ordered count table.
type Tally []TallyEntry

// Total sums every count.
func (t Tally) Total() int {
	total := 0
	for _, e := range t {
		total += e.Count
	}
	return total
}

// Labels returns category labels in order.
func (t Tally) Labels() []string {
	out := make([]string, len(t))
	for i, e := range t {
		out[i] = e.Label
	}
	return out
}
