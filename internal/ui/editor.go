package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// checkboxGlyph is the literal text the note editor inserts at the cursor.
const checkboxGlyph = "☐ "

// editor is the shared core of both content surfaces: a textarea plus the
// bookkeeping needed to tell user edits apart from programmatic SetContent
// calls. Programmatic replacement must never look like a keystroke.
type editor struct {
	title     string
	input     textarea.Model
	lastValue string
}

func newEditor(placeholder string) editor {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	return editor{input: ta}
}

// SetTitle updates the heading shown above the content.
func (e *editor) SetTitle(title string) {
	e.title = title
}

// Title returns the current heading.
func (e *editor) Title() string {
	return e.title
}

// SetContent replaces the editable text without producing an edit signal.
func (e *editor) SetContent(content string) {
	e.input.SetValue(content)
	e.lastValue = e.input.Value()
}

// Content returns the full editable text.
func (e *editor) Content() string {
	return e.input.Value()
}

// Focus gives the textarea keyboard focus.
func (e *editor) Focus() tea.Cmd {
	return e.input.Focus()
}

// Blur removes keyboard focus.
func (e *editor) Blur() {
	e.input.Blur()
}

// SetSize resizes the editable region.
func (e *editor) SetSize(width, height int) {
	if width > 0 {
		e.input.SetWidth(width)
	}
	if height > 0 {
		e.input.SetHeight(height)
	}
}

// Update forwards a message to the textarea and reports whether the user
// changed the content. Only messages routed here count as user activity;
// SetContent bypasses this path entirely.
func (e *editor) Update(msg tea.Msg) (tea.Cmd, bool) {
	updated, cmd := e.input.Update(msg)
	e.input = updated
	value := e.input.Value()
	changed := value != e.lastValue
	e.lastValue = value
	return cmd, changed
}

// View renders the textarea.
func (e *editor) View() string {
	return e.input.View()
}

// BookEditor is the paginated surface. It mirrors the page counters pushed
// by the backend and derives nav-control actionability from them on every
// change, tolerating inconsistent counters by disabling controls.
type BookEditor struct {
	editor

	currentPage int
	totalPages  int
	wordCount   int
}

// NewBookEditor constructs a book editor on page 1 of 1.
func NewBookEditor() *BookEditor {
	return &BookEditor{
		editor:      newEditor("Write your page..."),
		currentPage: 1,
		totalPages:  1,
	}
}

// SetCurrentPage records the backend-pushed page number.
func (b *BookEditor) SetCurrentPage(page int) {
	b.currentPage = page
}

// SetTotalPages records the backend-pushed page count.
func (b *BookEditor) SetTotalPages(total int) {
	b.totalPages = total
}

// SetWordCount records the displayed word count.
func (b *BookEditor) SetWordCount(count int) {
	b.wordCount = count
}

// CurrentPage returns the last-known page number.
func (b *BookEditor) CurrentPage() int {
	return b.currentPage
}

// TotalPages returns the last-known page count.
func (b *BookEditor) TotalPages() int {
	return b.totalPages
}

// WordCount returns the displayed word count.
func (b *BookEditor) WordCount() int {
	return b.wordCount
}

// CanPrev reports whether the previous-page control is actionable.
func (b *BookEditor) CanPrev() bool {
	return b.currentPage > 1
}

// CanNext reports whether the next-page control is actionable.
func (b *BookEditor) CanNext() bool {
	return b.currentPage < b.totalPages
}

// NoteEditor is the freeform surface with checkbox insertion.
type NoteEditor struct {
	editor
}

// NewNoteEditor constructs a note editor.
func NewNoteEditor() *NoteEditor {
	return &NoteEditor{editor: newEditor("Write your note...")}
}

// InsertCheckbox places the checkbox glyph at the cursor. This is a user
// action with a local side effect; the caller emits the outward event.
func (n *NoteEditor) InsertCheckbox() {
	n.input.InsertString(checkboxGlyph)
	n.lastValue = n.input.Value()
}
