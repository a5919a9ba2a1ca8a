package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestMenuNavigation(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Kindergarten"}, {Label: "Grade 1"}, {Label: "Grade 2"}})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Fatalf("up at top moved to %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnd})
	if m.Selected != 2 {
		t.Fatalf("end selected %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Fatalf("down at bottom moved to %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if m.Selected != 1 {
		t.Fatalf("k selected %d", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	type chosen struct{ label string }
	items := []MenuItem{
		{Label: "Grade 3", Action: func() tea.Cmd { return func() tea.Msg { return chosen{"Grade 3"} } }},
		{Label: "Grade 4", Action: func() tea.Cmd { return func() tea.Msg { return chosen{"Grade 4"} } }},
	}
	m := NewMenu(items)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if got := cmd().(chosen); got.label != "Grade 4" {
		t.Fatalf("ran action for %q", got.label)
	}
}

func TestMenuViewAlignsDetails(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Grade 1", Detail: "grade_3"},
		{Label: "Algebra 1", Detail: "algebra_1"},
	})
	lines := strings.Split(strings.TrimRight(m.View(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "▸") || strings.Contains(lines[1], "▸") {
		t.Error("expected only the first line to carry the marker")
	}
	for _, l := range lines {
		if !strings.Contains(l, "_") {
			t.Errorf("line %q missing its detail", l)
		}
	}
}
