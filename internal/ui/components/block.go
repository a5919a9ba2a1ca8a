package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessgen/internal/assessment"
	"github.com/abhisek/assessgen/internal/ui/theme"
)

// QuestionBlock renders one question block for the terminal.
func QuestionBlock(b assessment.Block, width int) string {
	style := theme.QuestionBlock
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(theme.Body.Render(b.Text))
}

// QuestionBlocks renders blocks one after another.
func QuestionBlocks(blocks []assessment.Block, width int) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, QuestionBlock(b, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Notice renders a one-line status message.
func Notice(style lipgloss.Style, msg string) string {
	return style.Render(strings.TrimSpace(msg))
}
