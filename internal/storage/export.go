package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/mandel/internal/analysis"
	"github.com/san-kum/mandel/internal/compute"
)

type ExportData struct {
	ID        string           `json:"id"`
	Budget    int              `json:"budget"`
	Cols      int              `json:"cols"`
	Rows      int              `json:"rows"`
	Reals     []float64        `json:"reals"`
	Imags     []float64        `json:"imags"`
	Escapes   [][]int          `json:"escapes"`
	Histogram []int            `json:"histogram"`
	Summary   analysis.Summary `json:"summary"`
}

func NewExportData(id string, f *compute.Field) ExportData {
	escapes := make([][]int, f.Grid.Rows)
	for row := range escapes {
		escapes[row] = make([]int, f.Grid.Cols)
		for col, r := range f.Row(row) {
			escapes[row][col] = int(r)
		}
	}

	return ExportData{
		ID:        id,
		Budget:    f.Budget,
		Cols:      f.Grid.Cols,
		Rows:      f.Grid.Rows,
		Reals:     f.Grid.Reals(),
		Imags:     f.Grid.Imags(),
		Escapes:   escapes,
		Histogram: analysis.Histogram(f),
		Summary:   analysis.Summarize(f),
	}
}

func ExportJSON(w io.Writer, id string, f *compute.Field) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(id, f))
}

func ExportJSONStdout(id string, f *compute.Field) error {
	return ExportJSON(os.Stdout, id, f)
}

func ExportJSONFile(path, id string, f *compute.Field) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return ExportJSON(file, id, f)
}
