package compute

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/mandel/internal/grid"
)

type CPUBackend struct {
	workers int
}

func NewCPUBackend(workers int) *CPUBackend {
	return &CPUBackend{workers: defaultWorkers(workers)}
}

func (c *CPUBackend) Name() string { return "cpu" }

func (c *CPUBackend) Workers() int { return c.workers }

// Evaluate fans rows out over the worker pool. Each worker writes only the
// rows it receives, so the field needs no locking.
func (c *CPUBackend) Evaluate(ctx context.Context, g grid.Grid, budget int, progress ProgressFunc) (*Field, error) {
	if err := validate(g, budget); err != nil {
		return nil, err
	}

	f := NewField(g, budget)
	workers := min(c.workers, g.Rows)
	rows := make(chan int)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(rows)
		for row := 0; row < g.Rows; row++ {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("compute: canceled at row %d: %w", row, err)
			}
			select {
			case rows <- row:
			case <-ctx.Done():
				return fmt.Errorf("compute: canceled at row %d: %w", row, ctx.Err())
			}
		}
		return nil
	})

	var mu sync.Mutex
	done := 0

	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			n := 0
			for row := range rows {
				evaluateRow(f, row)
				n++
				if progress != nil {
					mu.Lock()
					done++
					progress(done, g.Rows)
					mu.Unlock()
				}
			}
			logrus.WithFields(logrus.Fields{"worker": w, "rows": n}).Debug("worker finished")
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return f, nil
}
