package compute

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/san-kum/mandel/internal/escape"
	"github.com/san-kum/mandel/internal/grid"
)

// ProgressFunc receives the number of finished rows and the total.
type ProgressFunc func(done, total int)

type Backend interface {
	Name() string
	Evaluate(ctx context.Context, g grid.Grid, budget int, progress ProgressFunc) (*Field, error)
}

var backends = map[string]func(workers int) Backend{
	"serial": func(int) Backend { return NewSerialBackend() },
	"cpu":    func(workers int) Backend { return NewCPUBackend(workers) },
}

// DefaultBackend is used when no backend is configured.
const DefaultBackend = "cpu"

// NewBackend returns the named backend. workers <= 0 means one per CPU.
func NewBackend(name string, workers int) (Backend, error) {
	fn, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend: %s (available: %v)", name, BackendNames())
	}
	return fn(workers), nil
}

func BackendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validate checks the budget and every sample once, so rows can run the
// unchecked iteration.
func validate(g grid.Grid, budget int) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("compute: %w", err)
	}
	if err := escape.Validate(0, budget); err != nil {
		return err
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if err := escape.Validate(g.Point(row, col), budget); err != nil {
				return fmt.Errorf("point (%d, %d): %w", row, col, err)
			}
		}
	}
	return nil
}

func evaluateRow(f *Field, row int) {
	out := f.Row(row)
	for col := range out {
		out[col] = escape.Iterate(f.Grid.Point(row, col), f.Budget)
	}
}

func defaultWorkers(workers int) int {
	if workers <= 0 {
		return runtime.NumCPU()
	}
	return workers
}
