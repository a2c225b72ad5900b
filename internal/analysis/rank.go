package analysis

import "sort"

type RankedComparison struct {
	Rank int
	Comparison
}

// RankByPayback sorts comparisons by ascending payback period. Variations
// whose payback is not computable sort last; ties keep input order.
func RankByPayback(comparisons []Comparison) []RankedComparison {
	out := make([]RankedComparison, 0, len(comparisons))
	for _, c := range comparisons {
		out = append(out, RankedComparison{Comparison: c})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Result.PaybackPeriodYears, out[j].Result.PaybackPeriodYears
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
