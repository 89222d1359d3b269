// ABOUTME: Single-pass derivations over a loaded Dataset.
// ABOUTME: Composite sleep score, last values, flag counts, and row filters.
package derive

import (
	"github.com/harperreed/galaxydash/internal/models"
)

// SleepScore returns a copy of ds with sleep_score = deep + light + rem.
// Missing stage values count as zero.
func SleepScore(ds *models.Dataset) *models.Dataset {
	return Sum(ds, models.ColSleepScore, models.ColDeep, models.ColLight, models.ColREM)
}

// Sum returns a copy of ds with col set to the row-wise sum of parts.
func Sum(ds *models.Dataset, col string, parts ...string) *models.Dataset {
	return ds.WithColumn(col, func(r models.Row) string {
		total := 0.0
		for _, p := range parts {
			if v, ok := r.Float(p); ok {
				total += v
			}
		}
		return models.FormatFloat(total)
	})
}

// Last returns col from the last row by timestamp order.
func Last(ds *models.Dataset, col string) (float64, bool) {
	if ds.Len() == 0 {
		return 0, false
	}
	return ds.Rows[ds.Len()-1].Float(col)
}

// CountWhere counts rows whose col equals want.
func CountWhere(ds *models.Dataset, col string, want float64) int {
	n := 0
	for _, r := range ds.Rows {
		if v, ok := r.Float(col); ok && v == want {
			n++
		}
	}
	return n
}

// FilterEquals returns a copy of ds holding only rows whose col equals want.
func FilterEquals(ds *models.Dataset, col string, want float64) *models.Dataset {
	return ds.Filter(func(r models.Row) bool {
		v, ok := r.Float(col)
		return ok && v == want
	})
}
