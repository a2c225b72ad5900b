// Package demand turns facility parameters into a daily energy requirement.
package demand

import "sun-to-sort/internal/model"

// Model computes daily energy demand for one demand mode.
type Model interface {
	Mode() model.DemandMode
	DailyKWh() float64
}

// For returns the single model selected by p's mode. The two models are
// never combined.
func For(p model.FacilityParameters) Model {
	if p.ActiveMode() == model.DemandWaste {
		return Waste{Streams: p.WasteStreams}
	}
	return Machine{
		Count:       p.MachineCount,
		PowerWatts:  p.PowerPerMachineWatts,
		HoursPerDay: p.WorkHoursPerDay,
	}
}
