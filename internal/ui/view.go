package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/notequarry/notequarry/internal/bridge"
	"github.com/notequarry/notequarry/internal/ui/state"
	"github.com/notequarry/notequarry/internal/words"
)

const emptyListMessage = "(no entries yet)"

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case ModeGate:
		return m.viewGate()
	case ModeSelect:
		return m.viewSelector()
	case ModeConfirmDelete:
		return m.viewConfirm()
	}
	switch m.view.Active {
	case state.ScreenBook:
		return m.viewBook()
	case state.ScreenNote:
		return m.viewNote()
	default:
		return m.viewList()
	}
}

func (m *Model) viewGate() string {
	lines := []string{
		styles.Header.Render("NoteQuarry (locked)"),
		"",
		m.gate.InputView(),
	}
	if err := m.gate.LocalError(); err != "" {
		lines = append(lines, "", styles.Error.Render(err))
	} else if m.view.PasswordErrorVisible && m.view.PasswordError != "" {
		lines = append(lines, "", styles.Error.Render(m.view.PasswordError))
	}
	lines = append(lines, "", styles.Footer.Render("enter unlock  esc quit"))
	return strings.Join(lines, "\n")
}

func (m *Model) viewSelector() string {
	book := " Book "
	note := " Note "
	if m.selector.Mode() == bridge.ModeBook {
		book = styles.SelectedItem.Render(book)
		note = styles.Item.Render(note)
	} else {
		book = styles.Item.Render(book)
		note = styles.SelectedItem.Render(note)
	}
	lines := []string{
		styles.Header.Render("New Entry"),
		"",
		m.selector.InputView(),
		"",
		book + "  " + note,
	}
	if warn := m.selector.Warning(); warn != "" {
		lines = append(lines, "", styles.Error.Render(warn))
	}
	lines = append(lines, "", styles.Footer.Render("tab switch mode  enter create  esc cancel"))
	return strings.Join(lines, "\n")
}

func (m *Model) viewConfirm() string {
	prompt := fmt.Sprintf("Delete %q? (y/n)", m.confirmLabel)
	return strings.Join([]string{
		styles.Header.Render("Delete Entry"),
		"",
		styles.Error.Render(prompt),
	}, "\n")
}

func (m *Model) viewList() string {
	lines := make([]string, 0, 16)
	lines = append(lines, styles.Header.Render("Entries"))
	lines = append(lines, styles.SearchPrompt.Render("» ")+m.search.View())
	lines = append(lines, "")
	if len(m.view.Entries) == 0 {
		lines = append(lines, styles.EmptyState.Render(emptyListMessage))
	} else {
		maxVisible := m.maxVisibleRows()
		m.cursor.EnsureVisible(len(m.view.Entries), maxVisible)
		start := 0
		rows := m.view.Entries
		if maxVisible > 0 && len(rows) > maxVisible {
			start = m.cursor.ViewportOffset
			rows = rows[start : start+maxVisible]
		}
		for i, entry := range rows {
			lines = append(lines, m.renderRow(start+i, entry))
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, "", styles.Info.Render(info))
	}
	if m.verbose {
		lines = append(lines, "", styles.Info.Render(fmt.Sprintf("%d entries", len(m.view.Entries))))
	}
	if m.showFooter {
		lines = append(lines, "", styles.Footer.Render("↑/↓ move  enter open  n new  d delete  / search  ctrl+c quit"))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(idx int, entry string) string {
	label := entry
	if m.width > 4 {
		label = truncate.StringWithTail(label, uint(m.width-4), "…")
	}
	if idx == m.cursor.Pos {
		return styles.SelectedItem.Render("> " + label)
	}
	return styles.Item.Render("  " + label)
}

func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return 0
	}
	rows := m.height - 7
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) viewBook() string {
	pageInfo := fmt.Sprintf("Page %d / %d", m.book.CurrentPage(), m.book.TotalPages())
	nav := navHint("◀ alt+p", m.book.CanPrev()) + "  " + navHint("alt+n ▶", m.book.CanNext())
	status := words.Status(m.book.WordCount(), state.SoftWordLimit)
	countStyle := styles.WordCount
	if m.book.WordCount() > state.SoftWordLimit {
		countStyle = styles.WordCountOver
	}
	lines := []string{
		styles.EntryTitle.Render(m.book.Title()),
		styles.PageInfo.Render(pageInfo) + "  " + nav,
	}
	if m.pageFocused {
		lines = append(lines, styles.SearchPrompt.Render("go to page: ")+m.page.View())
	}
	lines = append(lines, "", m.book.View(), "", countStyle.Render(status))
	if m.showFooter {
		lines = append(lines, "", styles.Footer.Render("ctrl+s save  alt+p/alt+n pages  alt+a add page  ctrl+g go to  alt+i image  esc back"))
	}
	return strings.Join(lines, "\n")
}

func navHint(label string, actionable bool) string {
	if actionable {
		return styles.Item.Render(label)
	}
	return styles.Placeholder.Render(label)
}

func (m *Model) viewNote() string {
	lines := []string{
		styles.EntryTitle.Render(m.note.Title()),
		"",
		m.note.View(),
	}
	if m.showFooter {
		lines = append(lines, "", styles.Footer.Render("ctrl+s save  alt+c checkbox  alt+i image  esc back"))
	}
	return strings.Join(lines, "\n")
}
