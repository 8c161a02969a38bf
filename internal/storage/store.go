package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/mandel/internal/analysis"
	"github.com/san-kum/mandel/internal/compute"
	"github.com/san-kum/mandel/internal/escape"
	"github.com/san-kum/mandel/internal/grid"
)

var (
	ErrRunNotFound = errors.New("storage: run not found")
	ErrCorruptRun  = errors.New("storage: run data is corrupt")
)

const (
	metadataFile = "metadata.json"
	escapesFile  = "escapes.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string           `json:"id"`
	Label     string           `json:"label"`
	Timestamp time.Time        `json:"timestamp"`
	Region    grid.Region      `json:"region"`
	Cols      int              `json:"cols"`
	Rows      int              `json:"rows"`
	Budget    int              `json:"budget"`
	Backend   string           `json:"backend"`
	Elapsed   float64          `json:"elapsed_seconds"`
	Summary   analysis.Summary `json:"summary"`
}

// RunInfo describes how a field was produced.
type RunInfo struct {
	Label   string
	Backend string
	Elapsed time.Duration
}

// Save writes the field and its metadata into a new run directory and
// returns the run id.
func (s *Store) Save(info RunInfo, f *compute.Field) (string, error) {
	label := info.Label
	if label == "" {
		label = "run"
	}

	runID, runDir, err := s.newRunDir(label)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Label:     label,
		Timestamp: time.Now(),
		Region:    f.Grid.Region(),
		Cols:      f.Grid.Cols,
		Rows:      f.Grid.Rows,
		Budget:    f.Budget,
		Backend:   info.Backend,
		Elapsed:   info.Elapsed.Seconds(),
		Summary:   analysis.Summarize(f),
	}

	if err := writeMetadata(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeEscapes(filepath.Join(runDir, escapesFile), f); err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{"run": runID, "points": len(f.Values)}).Info("run saved")
	return runID, nil
}

// newRunDir creates a fresh directory, adding a suffix when runs share a timestamp.
func (s *Store) newRunDir(label string) (string, string, error) {
	if err := s.Init(); err != nil {
		return "", "", err
	}

	base := fmt.Sprintf("%s_%d", label, time.Now().Unix())
	for i := 0; ; i++ {
		runID := base
		if i > 0 {
			runID = fmt.Sprintf("%s_%d", base, i)
		}
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
	}
}

func writeMetadata(path string, meta RunMetadata) error {
	metaFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeEscapes(path string, f *compute.Field) error {
	csvFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := WriteFieldCSV(w, f); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// WriteFieldCSV writes one row per grid point: row, col, re, im, escape.
// Bounded points have escape -1.
func WriteFieldCSV(w *csv.Writer, f *compute.Field) error {
	if err := w.Write([]string{"row", "col", "re", "im", "escape"}); err != nil {
		return err
	}

	for row := 0; row < f.Grid.Rows; row++ {
		for col, r := range f.Row(row) {
			c := f.Grid.Point(row, col)
			record := []string{
				strconv.Itoa(row),
				strconv.Itoa(col),
				strconv.FormatFloat(real(c), 'g', -1, 64),
				strconv.FormatFloat(imag(c), 'g', -1, 64),
				strconv.Itoa(int(r)),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}
	return nil
}

// List returns all runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			logrus.WithError(err).WithField("dir", entry.Name()).Debug("skipping directory")
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, metadataFile)
	data, err := os.ReadFile(metaPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRun, runID, err)
	}

	return &meta, nil
}

// LoadField rebuilds the stored field of a run.
func (s *Store) LoadField(runID string) (*compute.Field, error) {
	_, f, err := s.LoadRun(runID)
	return f, err
}

// LoadRun reads the metadata and the field of a run.
func (s *Store) LoadRun(runID string) (*RunMetadata, *compute.Field, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	g, err := grid.FromRegion(meta.Region, meta.Cols, meta.Rows)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrCorruptRun, runID, err)
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, escapesFile))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	f := compute.NewField(g, meta.Budget)
	if err := readEscapes(csv.NewReader(file), f); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrCorruptRun, runID, err)
	}
	return meta, f, nil
}

func readEscapes(r *csv.Reader, f *compute.Field) error {
	r.FieldsPerRecord = 5

	if _, err := r.Read(); err != nil {
		return fmt.Errorf("header: %w", err)
	}

	filled := make([]bool, len(f.Values))
	seen := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		row, err := strconv.Atoi(record[0])
		if err != nil {
			return err
		}
		col, err := strconv.Atoi(record[1])
		if err != nil {
			return err
		}
		v, err := strconv.Atoi(record[4])
		if err != nil {
			return err
		}

		if row < 0 || row >= f.Grid.Rows || col < 0 || col >= f.Grid.Cols {
			return fmt.Errorf("point (%d, %d) outside %dx%d grid", row, col, f.Grid.Cols, f.Grid.Rows)
		}
		if v < int(escape.Bounded) || v >= f.Budget {
			return fmt.Errorf("escape %d outside budget %d", v, f.Budget)
		}

		idx := f.Grid.Index(row, col)
		if filled[idx] {
			return fmt.Errorf("point (%d, %d) appears twice", row, col)
		}
		filled[idx] = true
		f.Values[idx] = escape.Result(v)
		seen++
	}

	if seen != len(f.Values) {
		return fmt.Errorf("expected %d points, found %d", len(f.Values), seen)
	}
	return nil
}
