// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/modmenu/internal/adapters/driving/tui/styles"
)

// ValueInput wraps a bubbles textinput for entering a single set member.
type ValueInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
}

// NewValueInput creates an unfocused value input.
func NewValueInput(s *styles.Styles) *ValueInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "mod id"
	ti.CharLimit = 128
	ti.Width = 40

	return &ValueInput{
		textinput: ti,
		styles:    s,
		label:     "Add: ",
	}
}

// Init initialises the input.
func (v *ValueInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (v *ValueInput) Update(msg tea.Msg) (*ValueInput, tea.Cmd) {
	var cmd tea.Cmd
	v.textinput, cmd = v.textinput.Update(msg)
	return v, cmd
}

// View renders the input with its label.
func (v *ValueInput) View() string {
	label := v.styles.Title.Render(v.label)
	field := v.styles.InputField.Render(v.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Start focuses the input under the given prompt.
func (v *ValueInput) Start(prompt string) tea.Cmd {
	v.label = prompt + ": "
	v.textinput.Reset()
	return v.textinput.Focus()
}

// Stop blurs and clears the input.
func (v *ValueInput) Stop() {
	v.textinput.Blur()
	v.textinput.Reset()
}

// Value returns the current input value.
func (v *ValueInput) Value() string {
	return v.textinput.Value()
}

// SetValue sets the input value.
func (v *ValueInput) SetValue(value string) {
	v.textinput.SetValue(value)
}

// Focused returns whether the input is focused.
func (v *ValueInput) Focused() bool {
	return v.textinput.Focused()
}

// SetWidth sets the width of the input.
func (v *ValueInput) SetWidth(width int) {
	// Account for label and padding
	w := width - len(v.label) - 6
	if w < 20 {
		w = 20
	}
	v.textinput.Width = w
}
