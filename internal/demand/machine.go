package demand

import "sun-to-sort/internal/model"

// Machine is the legacy demand model: every machine draws the same average
// power for the whole working day.
type Machine struct {
	Count       int
	PowerWatts  float64 // average draw per machine
	HoursPerDay float64
}

func (m Machine) Mode() model.DemandMode { return model.DemandMachine }

func (m Machine) DailyKWh() float64 {
	return (float64(m.Count) * m.PowerWatts * m.HoursPerDay) / 1000
}
