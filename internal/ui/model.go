// Package ui implements the NoteQuarry shell: one Bubble Tea model owning
// the screen state machine, the modal gate and dialogs, the two editors, and
// the relay of user activity across the bridge. The shell is a pure state
// reflector; the only logic it owns is the two local validation gates and
// the derived word count.
package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/notequarry/notequarry/internal/bridge"
	"github.com/notequarry/notequarry/internal/logging/events"
	"github.com/notequarry/notequarry/internal/theme"
	"github.com/notequarry/notequarry/internal/ui/state"
)

// Mode distinguishes the modal overlay in front of the active screen.
type Mode int

const (
	// ModeGate blocks everything behind the unlock form.
	ModeGate Mode = iota
	// ModeBrowse shows whichever screen state.View.Active selects.
	ModeBrowse
	// ModeSelect overlays the new-entry dialog on the list.
	ModeSelect
	// ModeConfirmDelete overlays the deletion prompt on the list.
	ModeConfirmDelete
)

var styles = theme.Default()

const infoTTL = 4 * time.Second

type msgHandler func(tea.Msg) tea.Cmd

// Model is the shell. It owns the only writable ViewState and every child
// surface; nothing outside the update loop touches either.
type Model struct {
	br *bridge.Bridge

	view   *state.View
	cursor state.Cursor

	mode     Mode
	gate     *Gate
	selector *ModeSelector
	book     *BookEditor
	note     *NoteEditor

	search        textinput.Model
	searchFocused bool

	page        textinput.Model
	pageFocused bool

	confirmIndex int
	confirmLabel string

	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the shell with the gate presented and the list screen
// behind it, per the construction defaults.
func NewModel(br *bridge.Bridge, width, height int, showFooter, verbose bool) *Model {
	search := textinput.New()
	search.Placeholder = "search entries"
	search.CharLimit = 128
	search.Width = 32

	page := textinput.New()
	page.Placeholder = "page"
	page.CharLimit = 6
	page.Width = 6

	m := &Model{
		br:         br,
		view:       state.NewView(),
		mode:       ModeGate,
		gate:       NewGate(),
		selector:   NewModeSelector(),
		book:       NewBookEditor(),
		note:       NewNoteEditor(),
		search:     search,
		page:       page,
		showFooter: showFooter,
		verbose:    verbose,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.br != nil {
		cmds = append(cmds, waitForCommand(m.br))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages. Keystrokes route to the active
// modal first; everything else goes through the handler table.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if handled, cmd := m.handleModalKey(key); handled {
			return m, cmd
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(commandMsg{}):        m.handleCommandMsg,
		reflect.TypeOf(commandsClosedMsg{}): m.handleCommandsClosedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// handleModalKey routes keystrokes to the blocking overlay, if any.
func (m *Model) handleModalKey(key tea.KeyMsg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeGate:
		return true, m.updateGate(key)
	case ModeSelect:
		return true, m.updateSelector(key)
	case ModeConfirmDelete:
		return true, m.updateConfirm(key)
	default:
		return false, nil
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.resizeEditors()
	return nil
}

func (m *Model) resizeEditors() {
	w := m.width - 4
	h := m.height - 8
	m.book.SetSize(w, h)
	m.note.SetSize(w, h)
}

// emit relays one outward event across the bridge.
func (m *Model) emit(ev bridge.Event) {
	if m.br == nil {
		return
	}
	m.br.Emit(ev)
}

func (m *Model) setInfo(msg string) {
	m.infoMsg = msg
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) clearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg == "" {
		return ""
	}
	if !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		return ""
	}
	return m.infoMsg
}

// setScreen switches the active surface and moves focus accordingly.
func (m *Model) setScreen(next state.Screen) tea.Cmd {
	if m.view.Active == next {
		return nil
	}
	events.UI.Screen(m.view.Active.String(), next.String())
	m.view.Active = next
	m.pageFocused = false
	switch next {
	case state.ScreenBook:
		m.note.Blur()
		return m.book.Focus()
	case state.ScreenNote:
		m.book.Blur()
		return m.note.Focus()
	default:
		m.book.Blur()
		m.note.Blur()
		return nil
	}
}

// View state accessors used by tests.

// ViewState exposes the shell's view state for inspection.
func (m *Model) ViewState() *state.View {
	return m.view
}

// ActiveMode exposes the modal overlay state.
func (m *Model) ActiveMode() Mode {
	return m.mode
}
