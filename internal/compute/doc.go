// Package compute evaluates escape times over a whole grid.
//
// Two backends are available:
//
//   - serial: one goroutine, row by row
//   - cpu: rows fanned out over a worker pool
//
// Both produce identical fields; the choice only affects wall time.
//
//	backend, _ := compute.NewBackend("cpu", 0)
//	field, err := backend.Evaluate(ctx, g, 100, nil)
package compute
