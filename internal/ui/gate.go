package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/notequarry/notequarry/internal/logging/events"
)

const emptyPasswordError = "Password cannot be empty"

// Gate is the blocking unlock form presented at startup. It validates
// non-empty input locally and forwards everything else to the backend;
// verification failures come back through the password-error setters.
type Gate struct {
	input    textinput.Model
	localErr string
}

// NewGate constructs the gate with a focused, masked password field.
func NewGate() *Gate {
	ti := textinput.New()
	ti.Placeholder = "password"
	ti.CharLimit = 128
	ti.Width = 32
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Focus()
	return &Gate{input: ti}
}

// gateResult reports what a gate update decided.
type gateResult struct {
	Submitted bool
	Password  string
	Quit      bool
}

// Update handles one message. Enter submits: a whitespace-only field is
// rejected locally with the error region made visible and nothing emitted;
// otherwise the raw field text is handed back for emission and the gate
// closes. Esc abandons the session, not just the dialog.
func (g *Gate) Update(msg tea.Msg) (tea.Cmd, gateResult) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			events.Gate.Reject("escape")
			return nil, gateResult{Quit: true}
		case tea.KeyEnter:
			raw := g.input.Value()
			if strings.TrimSpace(raw) == "" {
				g.localErr = emptyPasswordError
				events.Gate.Reject("empty")
				return nil, gateResult{}
			}
			g.localErr = ""
			events.Gate.Submit()
			return nil, gateResult{Submitted: true, Password: raw}
		}
	}
	updated, cmd := g.input.Update(msg)
	g.input = updated
	return cmd, gateResult{}
}

// Reset clears the field for a re-presented gate. Backend-owned error text
// is untouched; only an explicit setter call changes it.
func (g *Gate) Reset() tea.Cmd {
	g.input.SetValue("")
	g.localErr = ""
	return g.input.Focus()
}

// LocalError returns the local validation message, empty when none.
func (g *Gate) LocalError() string {
	return g.localErr
}

// InputView renders the password field.
func (g *Gate) InputView() string {
	return g.input.View()
}
