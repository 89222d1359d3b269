// ABOUTME: DatasetName enum and the catalog of per-metric CSV files.
// ABOUTME: Defines 12 dataset families, their file names, and required columns.
package models

// DatasetName identifies one metric family loaded from one flat file.
type DatasetName string

const (
	// Training load
	DatasetCalories DatasetName = "calories"
	DatasetActivity DatasetName = "activity"
	DatasetEnergy   DatasetName = "energy"

	// Cardio and recovery
	DatasetHeartRate DatasetName = "heart_rate"
	DatasetSleep     DatasetName = "sleep"
	DatasetStress    DatasetName = "stress"

	// Medical
	DatasetSpO2          DatasetName = "spo2"
	DatasetBloodPressure DatasetName = "bp"
	DatasetECG           DatasetName = "ecg"
	DatasetFalls         DatasetName = "falls"

	// Body
	DatasetBodyComp     DatasetName = "body_comp"
	DatasetAntioxidants DatasetName = "antioxidants"
)

// Column names read by the role views.
const (
	ColTimestamp       = "timestamp"
	ColCalories        = "calories"
	ColActiveMinutes   = "active_minutes"
	ColEnergyScore     = "energy_score"
	ColBPM             = "bpm"
	ColDeep            = "deep"
	ColLight           = "light"
	ColREM             = "rem"
	ColStressScore     = "stress_score"
	ColOxygenPercent   = "oxygen_percent"
	ColSystolic        = "systolic"
	ColDiastolic       = "diastolic"
	ColAbnormalFlag    = "abnormal_flag"
	ColFallDetected    = "fall_detected"
	ColBodyFat         = "body_fat"
	ColMuscleMass      = "muscle_mass"
	ColCarotenoidIndex = "carotenoid_index"

	// Derived within a render cycle.
	ColSleepScore = "sleep_score"
	ColZone       = "zone"
)

// RequiredColumns maps each dataset to the numeric columns the views read.
// The timestamp column is required for every dataset and is not listed.
var RequiredColumns = map[DatasetName][]string{
	DatasetCalories:      {ColCalories},
	DatasetActivity:      {ColActiveMinutes},
	DatasetHeartRate:     {ColBPM},
	DatasetSleep:         {ColDeep, ColLight, ColREM},
	DatasetStress:        {ColStressScore},
	DatasetEnergy:        {ColEnergyScore},
	DatasetSpO2:          {ColOxygenPercent},
	DatasetBloodPressure: {ColSystolic, ColDiastolic},
	DatasetECG:           {ColAbnormalFlag},
	DatasetFalls:         {ColFallDetected},
	DatasetBodyComp:      {ColBodyFat, ColMuscleMass},
	DatasetAntioxidants:  {ColCarotenoidIndex},
}

// AllDatasets lists every dataset in load order.
var AllDatasets = []DatasetName{
	DatasetCalories, DatasetActivity, DatasetHeartRate, DatasetSleep,
	DatasetStress, DatasetEnergy, DatasetSpO2, DatasetBloodPressure,
	DatasetECG, DatasetFalls, DatasetBodyComp, DatasetAntioxidants,
}

// FileName returns the CSV file the dataset is read from.
func (n DatasetName) FileName() string {
	return string(n) + ".csv"
}

// IsValidDataset checks if a string names a known dataset.
func IsValidDataset(s string) bool {
	for _, n := range AllDatasets {
		if string(n) == s {
			return true
		}
	}
	return false
}
