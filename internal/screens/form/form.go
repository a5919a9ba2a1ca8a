// Package form collects the curriculum inputs for one grade and runs the
// generation.
package form

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessgen/internal/assessment"
	"github.com/abhisek/assessgen/internal/reference"
	"github.com/abhisek/assessgen/internal/router"
	"github.com/abhisek/assessgen/internal/ui/components"
	"github.com/abhisek/assessgen/internal/ui/layout"
	"github.com/abhisek/assessgen/internal/ui/theme"
)

// Generator produces assessments.
type Generator interface {
	Generate(ctx context.Context, req assessment.Request) (*assessment.Assessment, error)
}

// ResultsFactory builds the screen that shows a finished assessment.
type ResultsFactory func(a *assessment.Assessment) router.Screen

const (
	fieldNarrative = iota
	fieldGoals
	fieldStandards
	fieldLessons
	fieldCount
)

// generatedMsg carries the outcome of a generation call.
type generatedMsg struct {
	assessment *assessment.Assessment
	err        error
}

// FormScreen holds the four text fields for one grade.
type FormScreen struct {
	ctx        context.Context
	grade      reference.GradeLevel
	fields     [fieldCount]components.Field
	focus      int
	gen        Generator
	newResults ResultsFactory
	spinner    spinner.Model
	generating bool
	warning    string
	err        string
}

var (
	_ router.Screen     = (*FormScreen)(nil)
	_ router.LeaveGuard = (*FormScreen)(nil)
)

// New creates a form for grade. ctx bounds generation calls.
func New(ctx context.Context, grade reference.GradeLevel, gen Generator, newResults ResultsFactory) *FormScreen {
	s := &FormScreen{
		ctx:        ctx,
		grade:      grade,
		gen:        gen,
		newResults: newResults,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary))),
	}
	s.fields[fieldNarrative] = components.NewField("Section Narrative", "Provide an overview of the content being covered in this section.")
	s.fields[fieldGoals] = components.NewField("Section Learning Goals", "List the key learning goals for this section.")
	s.fields[fieldStandards] = components.NewField("Standards", "List the relevant content standards being addressed.")
	s.fields[fieldLessons] = components.NewField("Lesson Learning Goals", "List the specific learning goals for each lesson in this section.")
	return s
}

func (s *FormScreen) Init() tea.Cmd {
	return s.fields[s.focus].Focus()
}

// Request returns the current inputs.
func (s *FormScreen) Request() assessment.Request {
	return assessment.Request{
		Grade:     s.grade,
		Narrative: s.fields[fieldNarrative].Value(),
		Goals:     s.fields[fieldGoals].Value(),
		Standards: s.fields[fieldStandards].Value(),
		Lessons:   s.fields[fieldLessons].Value(),
	}
}

func (s *FormScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)
		return s, nil

	case generatedMsg:
		s.generating = false
		if msg.err != nil {
			s.err = "An error occurred: " + msg.err.Error()
			return s, nil
		}
		results := s.newResults(msg.assessment)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: results} }

	case spinner.TickMsg:
		if !s.generating {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if s.generating {
			return s, nil
		}
		switch msg.String() {
		case "tab":
			return s, s.moveFocus(1)
		case "shift+tab":
			return s, s.moveFocus(-1)
		case "ctrl+g", "ctrl+s":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s *FormScreen) moveFocus(delta int) tea.Cmd {
	s.fields[s.focus].Blur()
	s.focus = (s.focus + delta + fieldCount) % fieldCount
	return s.fields[s.focus].Focus()
}

func (s *FormScreen) submit() tea.Cmd {
	req := s.Request()
	s.err = ""
	if err := req.Validate(); err != nil {
		s.warning = err.Error()
		return nil
	}
	s.warning = ""
	s.generating = true

	ctx, gen := s.ctx, s.gen
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		a, err := gen.Generate(ctx, req)
		return generatedMsg{assessment: a, err: err}
	})
}

// resize fits the fields to a terminal of the given size.
func (s *FormScreen) resize(width, height int) {
	// Header and footer take three lines each; the title, status and
	// spacing take eight more.
	lines := (height - 6 - 8) / fieldCount
	for i := range s.fields {
		s.fields[i].SetSize(width-4, lines-1)
	}
}

func (s *FormScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Grade Level: " + string(s.grade)))
	b.WriteString("\n\n")
	for i := range s.fields {
		b.WriteString(s.fields[i].View())
		b.WriteString("\n\n")
	}

	switch {
	case s.generating:
		b.WriteString(s.spinner.View() + " " + theme.Body.Render("Generating assessment questions and rationales..."))
	case s.err != "":
		b.WriteString(theme.ErrorText.Render(s.err))
	case s.warning != "":
		b.WriteString(theme.WarningText.Render(s.warning))
	}

	return lipgloss.NewStyle().Width(width).Padding(0, 2).Render(b.String())
}

func (s *FormScreen) Title() string {
	return "New Assessment"
}

// CanLeave keeps the form on screen while a generation call is running.
func (s *FormScreen) CanLeave() bool {
	return !s.generating
}

func (s *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+G", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
