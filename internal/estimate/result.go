package estimate

import (
	"fmt"

	"sun-to-sort/internal/model"
)

// Result is everything derived from one FacilityParameters snapshot.
// It has no identity of its own; recomputing from the same input yields an
// identical value.
type Result struct {
	Mode            model.DemandMode    `json:"mode"`
	Rounding        model.PanelRounding `json:"rounding"`
	InstalledPanels *int                `json:"installed_panels,omitempty"`

	EnergyUsedPerDayKWh   float64 `json:"energy_used_per_day_kwh"`
	EnergyUsedPerMonthKWh float64 `json:"energy_used_per_month_kwh"`

	EnergyPerPanelPerDayKWh float64 `json:"energy_per_panel_per_day_kwh"`
	// PanelsNeeded follows the rounding policy; PanelsNeededExact is always
	// the plain division and is for display only.
	PanelsNeeded      float64 `json:"panels_needed"`
	PanelsNeededExact float64 `json:"panels_needed_exact"`

	ActualProductionPerDayKWh   float64 `json:"actual_production_per_day_kwh"`
	ActualProductionPerMonthKWh float64 `json:"actual_production_per_month_kwh"`

	// Positive = surplus, negative = deficit.
	SurplusPerDayKWh   float64      `json:"surplus_or_deficit_per_day_kwh"`
	SurplusPerMonthKWh float64      `json:"surplus_or_deficit_per_month_kwh"`
	Status             model.Status `json:"status"`

	CostSavingsPerMonth float64 `json:"cost_savings_per_month"`
	CostSavingsPerYear  float64 `json:"cost_savings_per_year"`
	// PaybackPeriodYears is nil when annual savings are zero (not computable).
	PaybackPeriodYears *float64 `json:"payback_period_years"`

	CO2SavedPerMonthKg float64 `json:"co2_saved_per_month_kg"`
	CO2SavedPerYearKg  float64 `json:"co2_saved_per_year_kg"`

	Battery *BatteryResult `json:"battery,omitempty"`

	ProjectionYears int               `json:"projection_years"`
	Projection      []ProjectionPoint `json:"projection"`
	PaybackMarker   *PaybackMarker    `json:"payback_marker,omitempty"`
}

// ProjectionPoint is cumulative (undiscounted) savings at the end of Year.
type ProjectionPoint struct {
	Year              int     `json:"year"`
	CumulativeSavings float64 `json:"cumulative_savings"`
}

// PaybackMarker locates break-even on the projection chart. Value always
// equals the installation cost.
type PaybackMarker struct {
	Year  float64 `json:"year"`
	Value float64 `json:"value"`
}

// BatteryResult is the optional backup sizing.
type BatteryResult struct {
	BackupHours     float64 `json:"backup_hours"`
	BackupEnergyKWh float64 `json:"backup_energy_kwh"`
	BackupEnergyWh  float64 `json:"backup_energy_wh"`
	CapacityAh      float64 `json:"capacity_ah"`
}

// Sufficient reports whether production covers demand.
func (r Result) Sufficient() bool {
	return r.Status == model.StatusSufficient
}

// PaybackLabel renders the payback period for display, "N/A" when undefined.
func (r Result) PaybackLabel() string {
	if r.PaybackPeriodYears == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *r.PaybackPeriodYears)
}

// BatteryCapacityAh is 0 when backup sizing did not run.
func (r Result) BatteryCapacityAh() float64 {
	if r.Battery == nil {
		return 0
	}
	return r.Battery.CapacityAh
}
