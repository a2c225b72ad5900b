// Package analysis runs what-if studies over the estimator: side-by-side
// variations, panel-count sweeps and payback ranking.
package analysis

import (
	"sync"

	"sun-to-sort/internal/estimate"
	"sun-to-sort/internal/model"
)

// Variation is one named what-if input.
type Variation struct {
	Name   string
	Params model.FacilityParameters
}

// Comparison pairs a variation name with its result.
type Comparison struct {
	Name   string
	Result estimate.Result
}

// Compare estimates every variation concurrently. The estimator is stateless,
// so each goroutine only writes its own slot; output order matches input.
func Compare(e *estimate.Estimator, variations []Variation) []Comparison {
	out := make([]Comparison, len(variations))

	var wg sync.WaitGroup
	for i, v := range variations {
		wg.Add(1)
		go func(i int, v Variation) {
			defer wg.Done()
			out[i] = Comparison{Name: v.Name, Result: e.Compute(v.Params)}
		}(i, v)
	}
	wg.Wait()

	return out
}
