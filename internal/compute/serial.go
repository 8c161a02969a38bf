package compute

import (
	"context"
	"fmt"

	"github.com/san-kum/mandel/internal/grid"
)

type SerialBackend struct{}

func NewSerialBackend() *SerialBackend {
	return &SerialBackend{}
}

func (s *SerialBackend) Name() string { return "serial" }

func (s *SerialBackend) Evaluate(ctx context.Context, g grid.Grid, budget int, progress ProgressFunc) (*Field, error) {
	if err := validate(g, budget); err != nil {
		return nil, err
	}

	f := NewField(g, budget)
	for row := 0; row < g.Rows; row++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("compute: canceled at row %d: %w", row, err)
		}
		evaluateRow(f, row)
		if progress != nil {
			progress(row+1, g.Rows)
		}
	}
	return f, nil
}
