// Package results shows a generated assessment as question blocks, with a
// raw-text view for copying.
package results

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessgen/internal/assessment"
	"github.com/abhisek/assessgen/internal/reference"
	"github.com/abhisek/assessgen/internal/router"
	"github.com/abhisek/assessgen/internal/ui/components"
	"github.com/abhisek/assessgen/internal/ui/layout"
	"github.com/abhisek/assessgen/internal/ui/theme"
)

// ResultsScreen is a scrollable view of one assessment.
type ResultsScreen struct {
	assessment *assessment.Assessment
	viewport   viewport.Model
	showRaw    bool
	width      int
}

var _ router.Screen = (*ResultsScreen)(nil)

// New creates a results screen for a.
func New(a *assessment.Assessment) *ResultsScreen {
	s := &ResultsScreen{
		assessment: a,
		viewport:   viewport.New(viewport.WithWidth(80), viewport.WithHeight(18)),
		width:      80,
	}
	s.refresh()
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

// ShowingRaw reports whether the raw completion is displayed.
func (s *ResultsScreen) ShowingRaw() bool {
	return s.showRaw
}

func (s *ResultsScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.viewport.SetWidth(msg.Width)
		s.viewport.SetHeight(max(msg.Height-6, 1))
		s.refresh()
		return s, nil
	case tea.KeyMsg:
		if msg.String() == "r" {
			s.showRaw = !s.showRaw
			s.refresh()
			s.viewport.GotoTop()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// refresh re-renders the content for the current mode and width.
func (s *ResultsScreen) refresh() {
	s.viewport.SetContent(s.content())
}

func (s *ResultsScreen) content() string {
	a := s.assessment
	if s.showRaw {
		return a.Raw
	}

	var b strings.Builder
	b.WriteString(theme.SuccessText.Render("Assessment Generated Successfully!"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(summary(a)))
	b.WriteString("\n")
	if a.Reference.Status == reference.StatusNotMapped {
		b.WriteString(theme.WarningText.Render("No reference material mapping found for " + string(a.Request.Grade)))
		b.WriteString("\n")
	}
	if len(a.Blocks) != assessment.ExpectedQuestions {
		b.WriteString(theme.WarningText.Render(fmt.Sprintf("Expected %d questions, found %d.", assessment.ExpectedQuestions, len(a.Blocks))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(components.QuestionBlocks(a.Blocks, s.width-2))
	return b.String()
}

func summary(a *assessment.Assessment) string {
	ref := "reference: " + a.Reference.Status.String()
	if a.Reference.Document != "" {
		ref += " (" + string(a.Reference.Document) + ")"
	}
	s := fmt.Sprintf("%s · %d questions · %s · %d in / %d out tokens",
		a.Request.Grade, len(a.Blocks), ref, a.Usage.InputTokens, a.Usage.OutputTokens)
	if a.Truncated {
		s += " · truncated"
	}
	return s
}

func (s *ResultsScreen) View(width, height int) string {
	return s.viewport.View()
}

func (s *ResultsScreen) Title() string {
	if s.showRaw {
		return "Raw Assessment Text"
	}
	return "Assessment"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	toggle := "Raw text"
	if s.showRaw {
		toggle = "Formatted"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "r", Description: toggle},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
