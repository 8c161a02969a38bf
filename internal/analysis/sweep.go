package analysis

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/mandel/internal/compute"
	"github.com/san-kum/mandel/internal/grid"
)

// ErrNotMonotonic indicates a point escaped at a small budget but not at a larger one.
var ErrNotMonotonic = errors.New("analysis: results are not budget-monotonic")

// SweepPoint is the outcome of one budget in a sweep.
type SweepPoint struct {
	Budget          int     `json:"budget"`
	Bounded         int     `json:"bounded"`
	BoundedFraction float64 `json:"bounded_fraction"`
	AreaEstimate    float64 `json:"area_estimate"`
}

// BudgetSweep evaluates g once per budget, in increasing order, and checks
// that no escaped point changes its result as the budget grows.
func BudgetSweep(ctx context.Context, backend compute.Backend, g grid.Grid, budgets []int) ([]SweepPoint, error) {
	if len(budgets) == 0 {
		return nil, nil
	}

	sorted := append([]int(nil), budgets...)
	sort.Ints(sorted)

	results := make([]SweepPoint, 0, len(sorted))
	var prev *compute.Field

	for _, budget := range sorted {
		f, err := backend.Evaluate(ctx, g, budget, nil)
		if err != nil {
			return nil, fmt.Errorf("budget %d: %w", budget, err)
		}

		if prev != nil {
			if err := checkMonotonic(prev, f); err != nil {
				return nil, err
			}
		}

		s := Summarize(f)
		results = append(results, SweepPoint{
			Budget:          budget,
			Bounded:         s.Bounded,
			BoundedFraction: s.BoundedFraction,
			AreaEstimate:    s.AreaEstimate,
		})
		prev = f
	}

	return results, nil
}

func checkMonotonic(small, large *compute.Field) error {
	for i, r := range small.Values {
		if _, ok := r.Escaped(); ok && large.Values[i] != r {
			return fmt.Errorf("%w: point %d escaped at %v with budget %d but %v with budget %d",
				ErrNotMonotonic, i, r, small.Budget, large.Values[i], large.Budget)
		}
	}
	return nil
}
