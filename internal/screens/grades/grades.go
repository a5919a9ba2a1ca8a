// Package grades is the start screen: pick the grade level to write an
// assessment for.
package grades

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessgen/internal/reference"
	"github.com/abhisek/assessgen/internal/router"
	"github.com/abhisek/assessgen/internal/ui/components"
	"github.com/abhisek/assessgen/internal/ui/layout"
	"github.com/abhisek/assessgen/internal/ui/theme"
)

// FormFactory builds the form screen for a chosen grade.
type FormFactory func(grade reference.GradeLevel) router.Screen

// GradesScreen lists every grade level.
type GradesScreen struct {
	menu components.Menu
}

var _ router.Screen = (*GradesScreen)(nil)

// New creates the grade picker. Choosing a grade pushes the screen built by
// newForm.
func New(newForm FormFactory) *GradesScreen {
	grades := reference.AllGrades()
	items := make([]components.MenuItem, 0, len(grades))
	for _, g := range grades {
		detail := "no reference material"
		if id, ok := reference.Resolve(g); ok {
			detail = "reference: " + string(id)
		}
		items = append(items, components.MenuItem{
			Label:  string(g),
			Detail: detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: newForm(g)}
				}
			},
		})
	}
	return &GradesScreen{menu: components.NewMenu(items)}
}

func (s *GradesScreen) Init() tea.Cmd {
	return nil
}

func (s *GradesScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *GradesScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("Mathematics Assessment Generator")
	subtitle := theme.Subtitle.Width(width).Render("Choose a grade level")
	menu := lipgloss.NewStyle().Width(width).Render(s.menu.View())
	return lipgloss.JoinVertical(lipgloss.Left, "", title, subtitle, "", menu)
}

func (s *GradesScreen) Title() string {
	return "Grade Level"
}

func (s *GradesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// SelectedGrade returns the highlighted grade.
func (s *GradesScreen) SelectedGrade() reference.GradeLevel {
	return reference.AllGrades()[s.menu.Selected]
}
