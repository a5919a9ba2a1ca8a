package grades

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessgen/internal/reference"
	"github.com/abhisek/assessgen/internal/router"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (router.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestSelectGradePushesForm(t *testing.T) {
	var built []reference.GradeLevel
	s := New(func(g reference.GradeLevel) router.Screen {
		built = append(built, g)
		return &stubScreen{title: string(g)}
	})

	for range 4 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.SelectedGrade() != reference.Grade4 {
		t.Fatalf("selected %q, want Grade 4", s.SelectedGrade())
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if push.Screen.Title() != "Grade 4" {
		t.Errorf("pushed %q", push.Screen.Title())
	}
	if len(built) != 1 {
		t.Errorf("form factory called %d times", len(built))
	}
}

func TestMenuStopsAtEnds(t *testing.T) {
	s := New(func(reference.GradeLevel) router.Screen { return &stubScreen{} })

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.SelectedGrade() != reference.Kindergarten {
		t.Errorf("selected %q, want Kindergarten", s.SelectedGrade())
	}
	for range 20 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.SelectedGrade() != reference.Geometry {
		t.Errorf("selected %q, want Geometry", s.SelectedGrade())
	}
}
