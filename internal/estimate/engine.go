// Package estimate turns a FacilityParameters snapshot into energy-balance,
// financial and environmental figures.
package estimate

import (
	"math"

	"sun-to-sort/internal/demand"
	"sun-to-sort/internal/model"
)

type Estimator struct{}

func New() *Estimator { return &Estimator{} }

// Compute runs one estimation. It does not validate p (callers do that via
// p.Validate) and never fails: degenerate divisions resolve to 0, or to a nil
// payback period. Compute has no side effects and is safe for concurrent use.
// Production equals demand (zero surplus) only under RoundExact without an
// installed count; RoundCeil sizes up to whole panels and usually leaves a
// small surplus.
func (e *Estimator) Compute(p model.FacilityParameters) Result {
	days := float64(p.DaysInMonth)

	res := Result{
		Mode:            p.ActiveMode(),
		Rounding:        p.ActiveRounding(),
		InstalledPanels: copyInt(p.InstalledPanels),
		ProjectionYears: p.Horizon(),
	}

	res.EnergyUsedPerDayKWh = demand.For(p).DailyKWh()
	res.EnergyUsedPerMonthKWh = res.EnergyUsedPerDayKWh * days

	res.EnergyPerPanelPerDayKWh = PanelOutputKWh(p.PanelPowerWatts, p.SunHoursPerDay, p.DeratingFactor)
	if res.EnergyPerPanelPerDayKWh > 0 {
		res.PanelsNeededExact = res.EnergyUsedPerDayKWh / res.EnergyPerPanelPerDayKWh
		res.PanelsNeeded = res.PanelsNeededExact
		if res.Rounding == model.RoundCeil {
			res.PanelsNeeded = math.Ceil(res.PanelsNeededExact)
		}

		switch {
		case p.InstalledPanels != nil:
			res.ActualProductionPerDayKWh = res.EnergyPerPanelPerDayKWh * float64(*p.InstalledPanels)
		case res.Rounding == model.RoundExact:
			// perPanel × (demand / perPanel) is demand; skip the round trip so
			// float noise cannot flip the status.
			res.ActualProductionPerDayKWh = res.EnergyUsedPerDayKWh
		default:
			res.ActualProductionPerDayKWh = res.EnergyPerPanelPerDayKWh * res.PanelsNeeded
		}
	}
	res.ActualProductionPerMonthKWh = res.ActualProductionPerDayKWh * days

	res.SurplusPerDayKWh = res.ActualProductionPerDayKWh - res.EnergyUsedPerDayKWh
	res.SurplusPerMonthKWh = res.SurplusPerDayKWh * days
	res.Status = model.StatusFromSurplus(res.SurplusPerDayKWh)

	// Savings and CO2 are bounded by displaced consumption, not production.
	res.CostSavingsPerMonth = res.EnergyUsedPerMonthKWh * p.ElectricityPricePerKWh
	res.CostSavingsPerYear = res.CostSavingsPerMonth * MonthsPerYear
	res.CO2SavedPerMonthKg = res.EnergyUsedPerMonthKWh * p.CO2KgPerKWh
	res.CO2SavedPerYearKg = res.CO2SavedPerMonthKg * MonthsPerYear

	res.PaybackPeriodYears = PaybackYears(p.InstallationCost, res.CostSavingsPerYear)
	res.Projection = Project(res.CostSavingsPerYear, res.ProjectionYears)
	res.PaybackMarker = Marker(res.PaybackPeriodYears, p.InstallationCost, res.ProjectionYears)

	if p.BackupRequested() {
		b := SizeBattery(res.EnergyUsedPerDayKWh, p.WorkHoursPerDay, p.BackupHours,
			p.SystemVoltage, p.DepthOfDischarge, p.InverterEfficiency)
		res.Battery = &b
	}

	return res
}

// PanelOutputKWh is the daily yield of one panel in kWh.
func PanelOutputKWh(panelWatts, sunHours, derating float64) float64 {
	return (panelWatts * sunHours * derating) / 1000
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
