package estimate

// MonthsPerYear converts monthly figures to annual ones.
const MonthsPerYear = 12

// PaybackYears is installationCost / annualSavings. It returns nil when
// annualSavings is not positive: the period is not computable, which callers
// should treat as +Inf and render as "N/A".
func PaybackYears(installationCost, annualSavings float64) *float64 {
	if annualSavings <= 0 {
		return nil
	}
	years := installationCost / annualSavings
	return &years
}

// Project returns the linear cumulative-savings curve for years 1..horizon.
// Point i is i × annualSavings (no discounting, no inflation).
func Project(annualSavings float64, horizon int) []ProjectionPoint {
	if horizon <= 0 {
		return []ProjectionPoint{}
	}
	out := make([]ProjectionPoint, 0, horizon)
	for year := 1; year <= horizon; year++ {
		out = append(out, ProjectionPoint{
			Year:              year,
			CumulativeSavings: float64(year) * annualSavings,
		})
	}
	return out
}

// Marker returns the break-even annotation when payback falls within
// [0, horizon], otherwise nil.
func Marker(payback *float64, installationCost float64, horizon int) *PaybackMarker {
	if payback == nil {
		return nil
	}
	if *payback < 0 || *payback > float64(horizon) {
		return nil
	}
	return &PaybackMarker{Year: *payback, Value: installationCost}
}
