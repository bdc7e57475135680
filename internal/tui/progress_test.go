package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/gauge/internal/result"
)

func TestProgressModelCollectsResults(t *testing.T) {
	var m tea.Model = newProgressModel(2)

	m, _ = m.Update(ResultMsg{Result: result.Success("a", result.NewMetrics(12.5))})
	m, _ = m.Update(ResultMsg{Result: result.Failed("b", "boom")})

	view := m.View()
	if !strings.Contains(view, "✓ a (12.50ms)") {
		t.Fatalf("success line missing:\n%s", view)
	}
	if !strings.Contains(view, "✗ b: boom") {
		t.Fatalf("failure line missing:\n%s", view)
	}
	if !strings.Contains(view, "2/2 complete") {
		t.Fatalf("progress count missing:\n%s", view)
	}
}

func TestProgressModelDoneQuits(t *testing.T) {
	var m tea.Model = newProgressModel(1)

	m, cmd := m.Update(DoneMsg{})
	if cmd == nil {
		t.Fatalf("done should quit")
	}
	pm := m.(progressModel)
	if !pm.done {
		t.Fatalf("done flag not set")
	}
}

func TestProgressModelCtrlCCancels(t *testing.T) {
	var m tea.Model = newProgressModel(1)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c should quit")
	}
	pm := m.(progressModel)
	if !pm.canceled {
		t.Fatalf("cancel flag not set")
	}
}
