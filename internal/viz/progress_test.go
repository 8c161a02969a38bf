package viz

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/mandel/internal/analysis"
	"github.com/san-kum/mandel/internal/compute"
	"github.com/san-kum/mandel/internal/grid"
)

func update(t *testing.T, m ProgressModel, msg tea.Msg) (ProgressModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(ProgressModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return pm, cmd
}

func TestProgressModel_Progress(t *testing.T) {
	m := NewProgressModel("test", 10, ThemeOcean)

	m, cmd := update(t, m, ProgressMsg{Done: 4, Total: 10})
	if cmd != nil {
		t.Error("progress should not quit")
	}
	if got := m.Percent(); got != 0.4 {
		t.Errorf("Percent = %v, want 0.4", got)
	}
	if !strings.Contains(m.View(), "4 / 10") {
		t.Errorf("view missing row count:\n%s", m.View())
	}
}

func TestProgressModel_Done(t *testing.T) {
	m := NewProgressModel("test", 3, ThemeOcean)
	sum := analysis.Summary{Points: 9, Bounded: 3, BoundedFraction: 1.0 / 3}

	m, cmd := update(t, m, DoneMsg{Summary: sum, Elapsed: time.Second})
	if cmd == nil {
		t.Fatal("done should quit")
	}
	if m.Percent() != 1 {
		t.Errorf("Percent = %v, want 1", m.Percent())
	}
	view := m.View()
	if !strings.Contains(view, "DONE") || !strings.Contains(view, "33.33%") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestProgressModel_Error(t *testing.T) {
	m := NewProgressModel("test", 3, ThemeRetroGreen)
	boom := errors.New("boom")

	m, cmd := update(t, m, ErrMsg{Err: boom})
	if cmd == nil {
		t.Fatal("error should quit")
	}
	if !errors.Is(m.Err(), boom) {
		t.Errorf("Err = %v", m.Err())
	}
	if !strings.Contains(m.View(), "boom") {
		t.Errorf("view missing error:\n%s", m.View())
	}
}

func TestProgressModel_Cancel(t *testing.T) {
	m := NewProgressModel("test", 3, ThemeCyberpunk)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if !m.Canceled() {
		t.Error("model not canceled")
	}

	m, cmd = update(t, m, tickMsg(time.Now()))
	if cmd != nil {
		t.Error("tick after cancel should not reschedule")
	}
}

func TestProgressBar(t *testing.T) {
	st := NewStyles(ThemeOcean)
	for _, p := range []float64{-1, 0, 0.5, 1, 2} {
		bar := st.ProgressBar(p, 10)
		if n := strings.Count(bar, "█") + strings.Count(bar, "░"); n != 10 {
			t.Errorf("ProgressBar(%v) has %d cells, want 10", p, n)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("retro").Name; got != "retro" {
		t.Errorf("GetTheme(retro) = %s", got)
	}
	if got := GetTheme("nope").Name; got != ThemeCyberpunk.Name {
		t.Errorf("fallback theme = %s", got)
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}

func TestRunWithProgress(t *testing.T) {
	g, err := grid.New(-2, 0.5, -1.5, 1.5, 16, 12)
	if err != nil {
		t.Fatal(err)
	}

	f, err := RunWithProgress(context.Background(), compute.NewCPUBackend(2), g, 20, ThemeOcean,
		tea.WithInput(nil), tea.WithOutput(io.Discard))
	if err != nil {
		t.Fatalf("RunWithProgress: %v", err)
	}

	want, err := compute.NewSerialBackend().Evaluate(context.Background(), g, 20, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Equal(want) {
		t.Error("field differs from serial evaluation")
	}
}

func TestSeparator(t *testing.T) {
	st := NewStyles(ThemeOcean)
	if n := strings.Count(st.Separator(12), "─"); n != 12 {
		t.Errorf("Separator(12) has %d cells, want 12", n)
	}
}

func TestSummaryView(t *testing.T) {
	sum := analysis.Summary{Points: 4, Bounded: 1, BoundedFraction: 0.25, AreaEstimate: 1.875}
	view := SummaryView("run-1", sum, 2*time.Second, ThemeOcean)
	for _, want := range []string{"run-1", "25.00%", "1.87500", strings.Repeat("─", barWidth)} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q:\n%s", want, view)
		}
	}
}
