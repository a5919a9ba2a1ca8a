package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessgen/internal/assessment"
	"github.com/abhisek/assessgen/internal/reference"
	"github.com/abhisek/assessgen/internal/router"
	"github.com/abhisek/assessgen/internal/screens/form"
	"github.com/abhisek/assessgen/internal/screens/grades"
	"github.com/abhisek/assessgen/internal/screens/results"
	"github.com/abhisek/assessgen/internal/ui/layout"
)

// Options holds the dependencies of the interactive app.
type Options struct {
	Generator form.Generator

	// Model is shown in the header.
	Model string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	model  string
	width  int
	height int
}

// newAppModel creates a new AppModel with the grade picker as home screen.
func newAppModel(ctx context.Context, opts Options) AppModel {
	newResults := func(a *assessment.Assessment) router.Screen {
		return results.New(a)
	}
	newForm := func(g reference.GradeLevel) router.Screen {
		return form.New(ctx, g, opts.Generator, newResults)
	}
	return AppModel{
		router: router.New(grades.New(newForm)),
		model:  opts.Model,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PushScreenMsg, router.ReplaceScreenMsg:
		// New screens learn the terminal size right away.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.resizeCmd())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) resizeCmd() tea.Cmd {
	if m.width == 0 || m.height == 0 {
		return nil
	}
	w, h := m.width, m.height
	return func() tea.Msg { return tea.WindowSizeMsg{Width: w, Height: h} }
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(layout.Header{Title: title, Model: m.model}, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(router.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)
	contentHeight := layout.ContentHeight(header, footer, m.height)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
