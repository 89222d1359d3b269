// ABOUTME: The four role routines: athlete, coach, trainer, and team doctor.
// ABOUTME: Each routine places widgets only for datasets present in the cycle.
package dashboard

import (
	"github.com/harperreed/galaxydash/internal/derive"
	"github.com/harperreed/galaxydash/internal/models"
	"github.com/harperreed/galaxydash/internal/render"
)

func athlete(c *Cycle, p *render.Page) {
	if ds, ok := c.Datasets.Get(models.DatasetEnergy); ok {
		c.metric(p, ds, models.ColEnergyScore, "Energy Score", 0)
	}
	if ds, ok := c.Datasets.Get(models.DatasetCalories); ok {
		c.metric(p, ds, models.ColCalories, "Calories Burned", 0)
	}
	if ds, ok := c.Datasets.Get(models.DatasetActivity); ok {
		c.metric(p, ds, models.ColActiveMinutes, "Active Minutes", 0)
	}
	if ds, ok := c.Datasets.Get(models.DatasetSleep); ok {
		p.Line(derive.SleepScore(ds), models.ColSleepScore, "Sleep Quality")
	}
	if ds, ok := c.Datasets.Get(models.DatasetStress); ok {
		p.Line(ds, models.ColStressScore, "Stress Trend")
	}
	if ds, ok := c.Datasets.Get(models.DatasetAntioxidants); ok {
		c.metric(p, ds, models.ColCarotenoidIndex, "Antioxidant Index", 2)
	}
}

func coach(c *Cycle, p *render.Page) {
	if ds, ok := c.Datasets.Get(models.DatasetCalories); ok {
		p.Line(ds, models.ColCalories, "Calories Burned")
	}
	if ds, ok := c.Datasets.Get(models.DatasetActivity); ok {
		p.Line(ds, models.ColActiveMinutes, "Active Minutes")
	}
	if ds, ok := c.Datasets.Get(models.DatasetHeartRate); ok {
		p.Line(ds, models.ColBPM, "Heart Rate")
	}
	if ds, ok := c.Datasets.Get(models.DatasetEnergy); ok {
		p.Line(ds, models.ColEnergyScore, "Readiness Score")
	}
}

func trainer(c *Cycle, p *render.Page) {
	if ds, ok := c.Datasets.Get(models.DatasetHeartRate); ok {
		p.Bar("Heart Rate Zones", derive.ZoneCounts(derive.HeartZones(ds)))
	}
	if ds, ok := c.Datasets.Get(models.DatasetBodyComp); ok {
		p.Line(ds, models.ColBodyFat, "Body Fat %")
		p.Line(ds, models.ColMuscleMass, "Muscle Mass")
	}
	if ds, ok := c.Datasets.Get(models.DatasetSleep); ok {
		p.Area(ds, []string{models.ColDeep, models.ColLight, models.ColREM}, "Sleep Stages")
	}
}

func doctor(c *Cycle, p *render.Page) {
	if ds, ok := c.Datasets.Get(models.DatasetHeartRate); ok {
		p.Line(ds, models.ColBPM, "Heart Rate")
	}
	if ds, ok := c.Datasets.Get(models.DatasetECG); ok {
		p.Metric("ECG Abnormal Events", float64(derive.CountWhere(ds, models.ColAbnormalFlag, 1)), 0)
	}
	if ds, ok := c.Datasets.Get(models.DatasetSpO2); ok {
		p.Line(ds, models.ColOxygenPercent, "Blood Oxygen (SpO₂)")
	}
	if ds, ok := c.Datasets.Get(models.DatasetBloodPressure); ok {
		p.Lines(ds, []string{models.ColSystolic, models.ColDiastolic}, "Blood Pressure")
	}
	if ds, ok := c.Datasets.Get(models.DatasetFalls); ok {
		p.Table("Fall Events", derive.FilterEquals(ds, models.ColFallDetected, 1))
	}
}
