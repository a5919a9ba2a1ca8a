package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessgen/internal/ui/theme"
)

// Field is a labeled multi-line text input.
type Field struct {
	Label string
	Help  string
	Model textarea.Model
}

// NewField creates a blurred field.
func NewField(label, help string) Field {
	ta := textarea.New()
	ta.Placeholder = help
	ta.ShowLineNumbers = false
	ta.Prompt = "│ "
	ta.CharLimit = 0
	ta.SetHeight(3)
	return Field{Label: label, Help: help, Model: ta}
}

// Focus focuses the input and returns the cursor command.
func (f *Field) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes focus.
func (f *Field) Blur() {
	f.Model.Blur()
}

// SetSize sets the input width and visible line count.
func (f *Field) SetSize(width, lines int) {
	if lines < 1 {
		lines = 1
	}
	f.Model.SetWidth(width)
	f.Model.SetHeight(lines)
}

// Update forwards messages to the textarea.
func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// Value returns the current text.
func (f Field) Value() string {
	return f.Model.Value()
}

// SetValue replaces the text.
func (f *Field) SetValue(s string) {
	f.Model.SetValue(s)
}

// View renders the label above the input.
func (f Field) View() string {
	label := theme.Label.Render(f.Label)
	if f.Model.Focused() {
		label = theme.Selected.Render(f.Label)
	}
	return label + "\n" + f.Model.View()
}
