// internal/tui/progress.go
// Package tui renders a live progress view while a benchmark suite runs.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/gauge/internal/bench"
	"github.com/mwiater/gauge/internal/result"
)

// ResultMsg carries one completed benchmark result into the view.
type ResultMsg struct {
	Result result.BenchmarkResult
}

// DoneMsg signals that the suite has finished.
type DoneMsg struct{}

type progressModel struct {
	spinner  spinner.Model
	total    int
	results  []result.BenchmarkResult
	done     bool
	canceled bool
}

func newProgressModel(total int) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return progressModel{spinner: s, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.canceled = true
			return m, tea.Quit
		}
		return m, nil
	case ResultMsg:
		m.results = append(m.results, msg.Result)
		return m, nil
	case DoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	var b strings.Builder

	header := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	b.WriteString(header.Render("Running benchmarks"))
	b.WriteString("\n\n")

	for _, r := range m.results {
		switch r.Status {
		case result.StatusSuccess:
			fmt.Fprintf(&b, "  ✓ %s (%.2fms)\n", r.TargetID, r.Metrics.DurationMS)
		case result.StatusFailed:
			fmt.Fprintf(&b, "  ✗ %s: %s\n", r.TargetID, r.Error)
		default:
			fmt.Fprintf(&b, "  ⊘ %s\n", r.TargetID)
		}
	}

	if !m.done {
		fmt.Fprintf(&b, "\n%s %d/%d complete\n", m.spinner.View(), len(m.results), m.total)
	} else {
		fmt.Fprintf(&b, "\n%d/%d complete\n", len(m.results), m.total)
	}

	return b.String()
}

// Run executes the targets sequentially behind a live progress view and
// returns the collected results in target order.
func Run(ctx context.Context, targets []bench.Target) ([]result.BenchmarkResult, error) {
	program := tea.NewProgram(newProgressModel(len(targets)))

	go func() {
		for _, target := range targets {
			program.Send(ResultMsg{Result: bench.Execute(ctx, target)})
		}
		program.Send(DoneMsg{})
	}()

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("progress view: %w", err)
	}
	m, ok := final.(progressModel)
	if !ok {
		return nil, fmt.Errorf("progress view returned unexpected model")
	}
	if m.canceled {
		return m.results, fmt.Errorf("run canceled")
	}
	return m.results, nil
}
