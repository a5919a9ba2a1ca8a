// Package theme holds the terminal palette and styles. The accent colour
// matches the border of the question cards in the web view.
package theme

import "charm.land/lipgloss/v2"

// Palette
var (
	Primary = lipgloss.Color("#1F77B4")
	Success = lipgloss.Color("#22C55E")
	Warning = lipgloss.Color("#EAB308")
	Error   = lipgloss.Color("#F43F5E")
	Text    = lipgloss.Color("#F8FAFC")
	TextDim = lipgloss.Color("#94A3B8")
	BgCard  = lipgloss.Color("#1E293B")
	Border  = lipgloss.Color("#334155")
)

// Typography
var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Label    = lipgloss.NewStyle().Foreground(Text).Bold(true)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
)

// States
var (
	Selected    = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected  = lipgloss.NewStyle().Foreground(Text)
	SuccessText = lipgloss.NewStyle().Foreground(Success).Bold(true)
	WarningText = lipgloss.NewStyle().Foreground(Warning)
	ErrorText   = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// QuestionBlock is the terminal rendering of one question: a left accent
// bar with padding, like the cards on the web page.
var QuestionBlock = lipgloss.NewStyle().
	Border(lipgloss.ThickBorder(), false, false, false, true).
	BorderForeground(Primary).
	Padding(1, 2).
	MarginBottom(1)
