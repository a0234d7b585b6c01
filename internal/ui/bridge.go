package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/notequarry/notequarry/internal/bridge"
	"github.com/notequarry/notequarry/internal/logging/events"
	"github.com/notequarry/notequarry/internal/ui/state"
)

// waitForCommand blocks on the inward stream and resurfaces the next backend
// command as a Bubble Tea message. Draining the stream from inside the update
// loop is what serializes backend pushes onto the UI goroutine.
func waitForCommand(br *bridge.Bridge) tea.Cmd {
	return func() tea.Msg {
		select {
		case cmd, ok := <-br.Commands():
			if !ok {
				return commandsClosedMsg{}
			}
			return commandMsg{command: cmd}
		case <-br.Done():
			return commandsClosedMsg{}
		}
	}
}

type commandMsg struct {
	command bridge.Command
}

type commandsClosedMsg struct{}

func (m *Model) handleCommandMsg(msg tea.Msg) tea.Cmd {
	cm, ok := msg.(commandMsg)
	if !ok {
		return nil
	}
	cmd := m.applyCommand(cm.command)
	if m.br != nil {
		wait := waitForCommand(m.br)
		if cmd != nil {
			return tea.Batch(cmd, wait)
		}
		return wait
	}
	return cmd
}

func (m *Model) handleCommandsClosedMsg(tea.Msg) tea.Cmd {
	m.br = nil
	return nil
}

// applyCommand mutates the view state for one inward command. Commands are
// fire-and-forget: unknown ones are dropped, and screen directives never
// dismiss the gate; only a local submission closes it.
func (m *Model) applyCommand(cmd bridge.Command) tea.Cmd {
	switch c := cmd.(type) {
	case bridge.SetEntryList:
		m.view.Entries = append([]string(nil), c.Entries...)
		m.cursor.Clamp(len(m.view.Entries))
	case bridge.SetCurrentEntryTitle:
		m.view.CurrentTitle = c.Title
		m.applyEntryTitle(c.Title)
	case bridge.SetCurrentContent:
		m.view.CurrentContent = c.Content
		m.applyContent(c.Content)
	case bridge.SetCurrentPage:
		m.view.CurrentPage = c.Page
		m.book.SetCurrentPage(c.Page)
	case bridge.SetTotalPages:
		m.view.TotalPages = c.Total
		m.book.SetTotalPages(c.Total)
	case bridge.SetWordCount:
		m.view.WordCount = c.Count
		m.book.SetWordCount(c.Count)
	case bridge.SetPasswordError:
		m.view.PasswordError = c.Message
	case bridge.ShowPasswordError:
		m.view.PasswordErrorVisible = c.Visible
		events.Gate.ErrorShown(c.Visible)
	case bridge.ShowPasswordGate:
		m.mode = ModeGate
		return m.gate.Reset()
	case bridge.ShowListView:
		return m.setScreen(state.ScreenList)
	case bridge.ShowBookEditor:
		return m.setScreen(state.ScreenBook)
	case bridge.ShowNoteEditor:
		return m.setScreen(state.ScreenNote)
	}
	return nil
}

// applyEntryTitle mirrors the title into both editors.
func (m *Model) applyEntryTitle(title string) {
	m.book.SetTitle(title)
	m.note.SetTitle(title)
}

// applyContent mirrors content into both editors without producing edit
// signals; only one surface is visible but both stay current.
func (m *Model) applyContent(content string) {
	m.book.SetContent(content)
	m.note.SetContent(content)
}
