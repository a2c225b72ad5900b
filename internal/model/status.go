package model

// Status classifies the daily energy balance.
// Keep these values stable; they are intended for CSV output.
type Status string

const (
	StatusSufficient   Status = "SUFFICIENT"
	StatusInsufficient Status = "INSUFFICIENT"
)

// StatusFromSurplus is inclusive at zero: an exact match counts as sufficient.
func StatusFromSurplus(surplusKWh float64) Status {
	if surplusKWh >= 0 {
		return StatusSufficient
	}
	return StatusInsufficient
}
