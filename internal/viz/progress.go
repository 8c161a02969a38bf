package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/mandel/internal/analysis"
	"github.com/san-kum/mandel/internal/compute"
	"github.com/san-kum/mandel/internal/grid"
)

const barWidth = 40

type tickMsg time.Time

// ProgressMsg reports finished rows.
type ProgressMsg struct {
	Done, Total int
}

// DoneMsg ends the view with the summary of the evaluated field.
type DoneMsg struct {
	Summary analysis.Summary
	Elapsed time.Duration
}

// ErrMsg ends the view with a failure.
type ErrMsg struct {
	Err error
}

// ProgressModel shows evaluation progress for one grid.
type ProgressModel struct {
	title    string
	styles   Styles
	total    int
	done     int
	frame    int
	start    time.Time
	now      time.Time
	summary  *analysis.Summary
	elapsed  time.Duration
	err      error
	canceled bool
}

func NewProgressModel(title string, totalRows int, theme Theme) ProgressModel {
	now := time.Now()
	return ProgressModel{
		title:  title,
		styles: NewStyles(theme),
		total:  totalRows,
		start:  now,
		now:    now,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/10, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m ProgressModel) Init() tea.Cmd {
	return tick()
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		}
	case ProgressMsg:
		m.done = msg.Done
		if msg.Total > 0 {
			m.total = msg.Total
		}
	case DoneMsg:
		s := msg.Summary
		m.summary = &s
		m.elapsed = msg.Elapsed
		m.done = m.total
		return m, tea.Quit
	case ErrMsg:
		m.err = msg.Err
		return m, tea.Quit
	case tickMsg:
		m.frame++
		m.now = time.Time(msg)
		if m.finished() {
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m ProgressModel) finished() bool {
	return m.summary != nil || m.err != nil || m.canceled
}

func (m ProgressModel) Canceled() bool { return m.canceled }

func (m ProgressModel) Err() error { return m.err }

func (m ProgressModel) Percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m ProgressModel) View() string {
	st := m.styles
	var s strings.Builder

	s.WriteString(st.Title.Render(m.title) + "\n")
	s.WriteString(st.Separator(barWidth) + "\n\n")

	switch {
	case m.err != nil:
		s.WriteString(st.Failed.Render("FAILED") + "  " + m.err.Error() + "\n")
	case m.canceled:
		s.WriteString(st.Failed.Render("CANCELED") + "\n")
	case m.summary != nil:
		s.WriteString(st.Done.Render("DONE") + "\n\n")
		s.WriteString(st.ProgressBar(1, barWidth) + "\n\n")
		s.WriteString(summaryView(st, *m.summary, m.elapsed))
	default:
		s.WriteString(AnimatedSpinner(m.frame) + " evaluating\n\n")
		s.WriteString(st.ProgressBar(m.Percent(), barWidth))
		s.WriteString(fmt.Sprintf(" %3.0f%%\n\n", m.Percent()*100))
		s.WriteString(st.Row("Rows", fmt.Sprintf("%d / %d", m.done, m.total)) + "\n")
		s.WriteString(st.Row("Elapsed", m.now.Sub(m.start).Round(time.Millisecond).String()) + "\n")
		s.WriteString("\n" + st.KeyHint.Render("q: cancel"))
	}

	return st.Panel.Render(s.String())
}

func summaryView(st Styles, sum analysis.Summary, elapsed time.Duration) string {
	var s strings.Builder
	s.WriteString(st.Row("Points", fmt.Sprintf("%d", sum.Points)) + "\n")
	s.WriteString(st.Row("Bounded", fmt.Sprintf("%d (%.2f%%)", sum.Bounded, sum.BoundedFraction*100)) + "\n")
	s.WriteString(st.Row("Mean escape", fmt.Sprintf("%.2f", sum.MeanEscape)) + "\n")
	s.WriteString(st.Row("Area", fmt.Sprintf("%.5f", sum.AreaEstimate)) + "\n")
	s.WriteString(st.Row("Elapsed", elapsed.Round(time.Millisecond).String()) + "\n")
	return s.String()
}

// SummaryView renders a summary panel outside of a running program.
func SummaryView(title string, sum analysis.Summary, elapsed time.Duration, theme Theme) string {
	st := NewStyles(theme)
	return st.Panel.Render(st.Title.Render(title) + "\n" + st.Separator(barWidth) + "\n\n" + summaryView(st, sum, elapsed))
}

// RunWithProgress evaluates g on backend while a ProgressModel is on screen.
// Quitting the view cancels the evaluation.
func RunWithProgress(ctx context.Context, backend compute.Backend, g grid.Grid, budget int, theme Theme, opts ...tea.ProgramOption) (*compute.Field, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	title := fmt.Sprintf("%s · budget %d · %s", g, budget, backend.Name())
	p := tea.NewProgram(NewProgressModel(title, g.Rows, theme), opts...)

	type result struct {
		field *compute.Field
		err   error
	}
	results := make(chan result, 1)

	go func() {
		start := time.Now()
		f, err := backend.Evaluate(ctx, g, budget, func(done, total int) {
			p.Send(ProgressMsg{Done: done, Total: total})
		})
		if err != nil {
			p.Send(ErrMsg{Err: err})
		} else {
			p.Send(DoneMsg{Summary: analysis.Summarize(f), Elapsed: time.Since(start)})
		}
		results <- result{field: f, err: err}
	}()

	final, err := p.Run()
	if err != nil {
		cancel()
		<-results
		return nil, err
	}
	if m, ok := final.(ProgressModel); ok && m.Canceled() {
		cancel()
	}

	r := <-results
	return r.field, r.err
}
