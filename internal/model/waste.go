package model

import "errors"

// WasteStreamEntry is one processed material category.
// KgPerDay is daily throughput; WattHoursPerKg is the processing energy intensity.
type WasteStreamEntry struct {
	Category       string
	KgPerDay       float64
	WattHoursPerKg float64
}

// DailyWattHours returns the entry's daily processing energy in Wh.
func (e WasteStreamEntry) DailyWattHours() float64 {
	return e.KgPerDay * e.WattHoursPerKg
}

func (e WasteStreamEntry) Validate() error {
	if e.KgPerDay < 0 {
		return errors.New("kg_per_day must be >= 0")
	}
	if e.WattHoursPerKg < 0 {
		return errors.New("watt_hours_per_kg must be >= 0")
	}
	return nil
}
