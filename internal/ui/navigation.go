package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/notequarry/notequarry/internal/bridge"
	"github.com/notequarry/notequarry/internal/logging/events"
	"github.com/notequarry/notequarry/internal/ui/state"
	"github.com/notequarry/notequarry/internal/words"
)

const cancelledEntryInfo = "A title and a mode are required to create an entry."

func (m *Model) updateGate(msg tea.Msg) tea.Cmd {
	cmd, res := m.gate.Update(msg)
	if res.Quit {
		return tea.Quit
	}
	if res.Submitted {
		m.emit(bridge.PasswordSubmitted{Password: res.Password})
		m.mode = ModeBrowse
		return cmd
	}
	return cmd
}

func (m *Model) updateSelector(msg tea.Msg) tea.Cmd {
	cmd, res := m.selector.Update(msg)
	if res.Cancelled {
		m.mode = ModeBrowse
		m.setInfo(cancelledEntryInfo)
		return cmd
	}
	if res.Done {
		m.mode = ModeBrowse
		m.emit(bridge.ModeSelected{Mode: res.Mode, Title: res.Title})
		m.view.CurrentTitle = res.Title
		m.view.CurrentContent = ""
		m.view.CurrentPage = 1
		m.view.TotalPages = 1
		m.view.WordCount = 0
		m.applyEntryTitle(res.Title)
		m.applyContent("")
		m.book.SetCurrentPage(1)
		m.book.SetTotalPages(1)
		m.book.SetWordCount(0)
		next := state.ScreenNote
		if res.Mode == bridge.ModeBook {
			next = state.ScreenBook
		}
		return tea.Batch(cmd, m.setScreen(next))
	}
	return cmd
}

func (m *Model) updateConfirm(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "y", "Y", "enter":
		events.UI.DeleteConfirm(m.confirmIndex, true)
		m.emit(bridge.DeleteEntryClicked{Index: m.confirmIndex})
		m.mode = ModeBrowse
	case "n", "N", "esc":
		events.UI.DeleteConfirm(m.confirmIndex, false)
		m.mode = ModeBrowse
	}
	return nil
}

// handleKeyMsg dispatches browse-mode keystrokes to the active screen.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.view.Active {
	case state.ScreenBook:
		return m.handleBookKey(key)
	case state.ScreenNote:
		return m.handleNoteKey(key)
	default:
		return m.handleListKey(key)
	}
}

func (m *Model) handleListKey(key tea.KeyMsg) tea.Cmd {
	if m.searchFocused {
		return m.handleSearchKey(key)
	}
	n := len(m.view.Entries)
	switch key.String() {
	case "up", "k":
		m.cursor.Move(-1, n)
	case "down", "j":
		m.cursor.Move(1, n)
	case "home":
		m.cursor.Home(n)
	case "end":
		m.cursor.End(n)
	case "enter":
		if n == 0 {
			return nil
		}
		events.UI.EntrySelect(m.cursor.Pos, m.view.Entries[m.cursor.Pos])
		m.emit(bridge.EntrySelected{Index: m.cursor.Pos})
	case "n":
		m.clearInfo()
		m.emit(bridge.NewEntryClicked{})
		m.mode = ModeSelect
		return m.selector.Reset()
	case "d", "delete":
		if n == 0 {
			return nil
		}
		m.confirmIndex = m.cursor.Pos
		m.confirmLabel = m.view.Entries[m.cursor.Pos]
		events.UI.DeletePrompt(m.confirmIndex, m.confirmLabel)
		m.mode = ModeConfirmDelete
	case "/":
		m.searchFocused = true
		return m.search.Focus()
	}
	return nil
}

// handleSearchKey drives the search box. The shell relays raw query text on
// every change; filtering lives entirely behind the bridge.
func (m *Model) handleSearchKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEsc:
		m.searchFocused = false
		m.search.Blur()
		if m.search.Value() != "" {
			m.search.SetValue("")
			events.Search.Cleared()
			m.emit(bridge.ClearSearch{})
		}
		return nil
	case tea.KeyEnter:
		m.searchFocused = false
		m.search.Blur()
		return nil
	}
	before := m.search.Value()
	updated, cmd := m.search.Update(key)
	m.search = updated
	if value := m.search.Value(); value != before {
		events.Search.Query(value)
		m.emit(bridge.SearchEntries{Query: value})
	}
	return cmd
}

func (m *Model) handleBookKey(key tea.KeyMsg) tea.Cmd {
	if m.pageFocused {
		return m.handlePageKey(key)
	}
	switch key.String() {
	case "esc":
		return m.leaveEditor()
	case "ctrl+s":
		content := m.book.Content()
		events.Editor.Save(m.view.Active.String(), len(content))
		m.emit(bridge.SaveContent{Content: content})
		return nil
	case "alt+p":
		if m.book.CanPrev() {
			events.Editor.Page(m.book.CurrentPage(), m.book.CurrentPage()-1)
			m.emit(bridge.PageChanged{Page: m.book.CurrentPage() - 1})
		}
		return nil
	case "alt+n":
		if m.book.CanNext() {
			events.Editor.Page(m.book.CurrentPage(), m.book.CurrentPage()+1)
			m.emit(bridge.PageChanged{Page: m.book.CurrentPage() + 1})
		}
		return nil
	case "alt+a":
		events.Editor.AddPage(m.book.TotalPages())
		m.emit(bridge.AddNewPage{})
		return nil
	case "alt+i":
		events.Editor.Image(m.view.Active.String())
		m.emit(bridge.InsertImage{})
		return nil
	case "ctrl+g":
		m.pageFocused = true
		m.page.SetValue(strconv.Itoa(m.book.CurrentPage()))
		m.book.Blur()
		return m.page.Focus()
	}
	cmd, changed := m.book.Update(key)
	if changed {
		m.view.CurrentContent = m.book.Content()
		m.view.WordCount = words.Count(m.view.CurrentContent)
		m.book.SetWordCount(m.view.WordCount)
	}
	return cmd
}

// handlePageKey drives the go-to-page field. A committed value only becomes
// an outward event when it differs from the last-known current page.
func (m *Model) handlePageKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEsc:
		m.pageFocused = false
		m.page.Blur()
		return m.book.Focus()
	case tea.KeyEnter:
		m.pageFocused = false
		m.page.Blur()
		raw := strings.TrimSpace(m.page.Value())
		if value, err := strconv.Atoi(raw); err == nil && value != m.book.CurrentPage() {
			events.Editor.Page(m.book.CurrentPage(), value)
			m.emit(bridge.PageChanged{Page: value})
		}
		return m.book.Focus()
	}
	updated, cmd := m.page.Update(key)
	m.page = updated
	return cmd
}

func (m *Model) handleNoteKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		return m.leaveEditor()
	case "ctrl+s":
		content := m.note.Content()
		events.Editor.Save(m.view.Active.String(), len(content))
		m.emit(bridge.SaveContent{Content: content})
		return nil
	case "alt+c":
		m.note.InsertCheckbox()
		m.view.CurrentContent = m.note.Content()
		events.Editor.Checkbox()
		m.emit(bridge.AddCheckbox{})
		return nil
	case "alt+i":
		events.Editor.Image(m.view.Active.String())
		m.emit(bridge.InsertImage{})
		return nil
	}
	cmd, changed := m.note.Update(key)
	if changed {
		m.view.CurrentContent = m.note.Content()
	}
	return cmd
}

// leaveEditor returns to the list. Nothing is saved on the way out; the
// backend decides whether to prompt before honoring the event.
func (m *Model) leaveEditor() tea.Cmd {
	m.emit(bridge.BackToList{})
	return m.setScreen(state.ScreenList)
}
