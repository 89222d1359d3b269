// ABOUTME: Heart-rate zone binning and zone tallies.
// ABOUTME: Five fixed half-open bins over bpm; out-of-range values are excluded.
package derive

import (
	"github.com/harperreed/galaxydash/internal/models"
)

// Zone is one of the five heart-rate intensity buckets.
type Zone string

const (
	Z1 Zone = "Z1"
	Z2 Zone = "Z2"
	Z3 Zone = "Z3"
	Z4 Zone = "Z4"
	Z5 Zone = "Z5"
)

// AllZones lists zones in label order.
var AllZones = []Zone{Z1, Z2, Z3, Z4, Z5}

// zoneEdges are the bin boundaries; zone i covers (zoneEdges[i], zoneEdges[i+1]].
var zoneEdges = []float64{0, 100, 120, 140, 160, 220}

// ZoneFor bins a bpm value. Values <= 0 or > 220 have no zone.
func ZoneFor(bpm float64) (Zone, bool) {
	for i, z := range AllZones {
		if bpm > zoneEdges[i] && bpm <= zoneEdges[i+1] {
			return z, true
		}
	}
	return "", false
}

// HeartZones returns a copy of ds with a zone column derived from bpm.
// Rows outside every bin get an empty zone.
func HeartZones(ds *models.Dataset) *models.Dataset {
	return ds.WithColumn(models.ColZone, func(r models.Row) string {
		bpm, ok := r.Float(models.ColBPM)
		if !ok {
			return ""
		}
		z, ok := ZoneFor(bpm)
		if !ok {
			return ""
		}
		return string(z)
	})
}

// ZoneCounts tallies the zone column, Z1 through Z5, zero counts included.
// The column is derived first when ds has not been zoned yet.
func ZoneCounts(ds *models.Dataset) models.Tally {
	if !ds.HasColumn(models.ColZone) {
		ds = HeartZones(ds)
	}

	counts := make(map[Zone]int, len(AllZones))
	for _, r := range ds.Rows {
		if z := Zone(r.Get(models.ColZone)); z != "" {
			counts[z]++
		}
	}

	tally := make(models.Tally, 0, len(AllZones))
	for _, z := range AllZones {
		tally = append(tally, models.TallyEntry{Label: string(z), Count: counts[z]})
	}
	return tally
}
