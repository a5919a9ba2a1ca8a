package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessgen/internal/ui/layout"
)

// Screen is one page of the TUI. The router owns the stack; the app owns
// the header and footer around View.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider is implemented by screens that show their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// LeaveGuard is implemented by screens that must not be popped while work
// they started is in flight.
type LeaveGuard interface {
	CanLeave() bool
}

func canLeave(s Screen) bool {
	g, ok := s.(LeaveGuard)
	return !ok || g.CanLeave()
}
