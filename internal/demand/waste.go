package demand

import "sun-to-sort/internal/model"

// Waste sums processing energy over the selected waste categories.
type Waste struct {
	Streams []model.WasteStreamEntry
}

func (w Waste) Mode() model.DemandMode { return model.DemandWaste }

// DailyKWh is Σ kg/day × Wh/kg / 1000. An empty stream set yields 0.
func (w Waste) DailyKWh() float64 {
	wh := 0.0
	for _, s := range w.Streams {
		wh += s.DailyWattHours()
	}
	return wh / 1000
}

// Breakdown returns daily kWh per category, in stream order. Repeated
// categories are reported separately.
func (w Waste) Breakdown() []CategoryDemand {
	out := make([]CategoryDemand, 0, len(w.Streams))
	for _, s := range w.Streams {
		out = append(out, CategoryDemand{
			Category: s.Category,
			KgPerDay: s.KgPerDay,
			KWhDay:   s.DailyWattHours() / 1000,
		})
	}
	return out
}

// CategoryDemand is one line of a waste-mode demand breakdown.
type CategoryDemand struct {
	Category string
	KgPerDay float64
	KWhDay   float64
}
