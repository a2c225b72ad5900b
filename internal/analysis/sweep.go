package analysis

import (
	"fmt"

	"sun-to-sort/internal/estimate"
	"sun-to-sort/internal/model"
)

// SweepPoint is the energy balance for one installed-panel count.
type SweepPoint struct {
	Panels                    int
	ActualProductionPerDayKWh float64
	SurplusPerDayKWh          float64
	Status                    model.Status
}

// SweepPanels evaluates installed panel counts from..to (inclusive) in steps
// of step, holding everything else in base fixed.
func SweepPanels(e *estimate.Estimator, base model.FacilityParameters, from, to, step int) ([]SweepPoint, error) {
	if from < 1 {
		return nil, fmt.Errorf("from must be >= 1, got %d", from)
	}
	if to < from {
		return nil, fmt.Errorf("to (%d) must be >= from (%d)", to, from)
	}
	if step < 1 {
		return nil, fmt.Errorf("step must be >= 1, got %d", step)
	}

	out := make([]SweepPoint, 0, (to-from)/step+1)
	for n := from; n <= to; n += step {
		p := base
		panels := n
		p.InstalledPanels = &panels
		r := e.Compute(p)
		out = append(out, SweepPoint{
			Panels:                    n,
			ActualProductionPerDayKWh: r.ActualProductionPerDayKWh,
			SurplusPerDayKWh:          r.SurplusPerDayKWh,
			Status:                    r.Status,
		})
	}
	return out, nil
}

// FirstSufficient returns the smallest swept panel count that covers demand.
func FirstSufficient(points []SweepPoint) (SweepPoint, bool) {
	for _, p := range points {
		if p.Status == model.StatusSufficient {
			return p, true
		}
	}
	return SweepPoint{}, false
}
