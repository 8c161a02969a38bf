// Package analysis summarizes escape-time fields.
//
// The package includes:
//
//   - [Members]: points that stayed bounded
//   - [Histogram]: number of points escaping at each iteration
//   - [Summarize]: counts, escape statistics and an area estimate of the set
//   - [BudgetSweep]: bounded fraction of one grid over increasing budgets
//   - [HistogramChart]: ASCII chart of a histogram
//
// # Area
//
// The bounded fraction of a grid times the area of its region estimates the
// area of the set inside that region. Over the full view it converges slowly towards
// roughly 1.506 as resolution and budget grow:
//
//	f, _ := backend.Evaluate(ctx, g, 1000, nil)
//	s := analysis.Summarize(f)
//	fmt.Println(s.AreaEstimate)
package analysis
