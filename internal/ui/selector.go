package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/notequarry/notequarry/internal/bridge"
	"github.com/notequarry/notequarry/internal/logging/events"
)

const emptyTitleWarning = "Title cannot be empty"

// ModeSelector is the new-entry dialog: a title field plus the mutually
// exclusive book/note choice. It mirrors the gate's local-validation
// pattern: an empty trimmed title keeps the dialog open and emits nothing.
type ModeSelector struct {
	input textinput.Model
	mode  bridge.Mode
	warn  string
}

// NewModeSelector constructs the dialog with the book mode highlighted.
func NewModeSelector() *ModeSelector {
	ti := textinput.New()
	ti.Placeholder = "entry title"
	ti.CharLimit = 128
	ti.Width = 32
	ti.Focus()
	return &ModeSelector{input: ti, mode: bridge.ModeBook}
}

// selectorResult reports what a selector update decided.
type selectorResult struct {
	Done      bool
	Cancelled bool
	Mode      bridge.Mode
	Title     string
}

// Update handles one message. Tab and the arrow keys toggle the highlighted
// mode; enter completes with the highlighted mode and the raw title text
// when the trimmed title is non-empty. Esc is a pure dismissal.
func (s *ModeSelector) Update(msg tea.Msg) (tea.Cmd, selectorResult) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return nil, selectorResult{Cancelled: true}
		case tea.KeyTab, tea.KeyLeft, tea.KeyRight:
			s.toggle()
			return nil, selectorResult{}
		case tea.KeyEnter:
			title := s.input.Value()
			if strings.TrimSpace(title) == "" {
				s.warn = emptyTitleWarning
				return nil, selectorResult{}
			}
			s.warn = ""
			events.UI.ModeSelect(string(s.mode), title)
			return nil, selectorResult{Done: true, Mode: s.mode, Title: title}
		}
	}
	updated, cmd := s.input.Update(msg)
	s.input = updated
	return cmd, selectorResult{}
}

func (s *ModeSelector) toggle() {
	if s.mode == bridge.ModeBook {
		s.mode = bridge.ModeNote
	} else {
		s.mode = bridge.ModeBook
	}
}

// Reset clears the dialog for its next presentation.
func (s *ModeSelector) Reset() tea.Cmd {
	s.input.SetValue("")
	s.warn = ""
	s.mode = bridge.ModeBook
	return s.input.Focus()
}

// Mode returns the currently highlighted mode.
func (s *ModeSelector) Mode() bridge.Mode {
	return s.mode
}

// Warning returns the local validation message, empty when none.
func (s *ModeSelector) Warning() string {
	return s.warn
}

// InputView renders the title field.
func (s *ModeSelector) InputView() string {
	return s.input.View()
}
