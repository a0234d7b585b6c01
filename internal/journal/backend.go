package journal

import (
	"fmt"
	"sync"
	"time"

	"github.com/notequarry/notequarry/internal/bridge"
	"github.com/notequarry/notequarry/internal/format/table"
	"github.com/notequarry/notequarry/internal/logging"
	"github.com/notequarry/notequarry/internal/words"
)

const (
	incorrectPasswordError = "Incorrect password"
	titleColumnWidth       = 32
)

// Backend drains UI events and pushes state back across the bridge. All of
// its state is confined to the single goroutine started by Start, so event
// handling needs no locking.
type Backend struct {
	br       *bridge.Bridge
	store    *Store
	password string
	now      func() time.Time

	unlocked    bool
	query       string
	visible     []int
	currentIdx  int
	currentPage int

	wg sync.WaitGroup
}

// New creates a backend over the given store. An empty password accepts any
// non-empty unlock attempt; anything else must match exactly.
func New(br *bridge.Bridge, store *Store, password string) *Backend {
	return &Backend{
		br:         br,
		store:      store,
		password:   password,
		now:        time.Now,
		currentIdx: -1,
	}
}

// Start launches the event loop. It exits when the bridge closes.
func (b *Backend) Start() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			select {
			case ev, ok := <-b.br.Events():
				if !ok {
					return
				}
				b.handle(ev)
			case <-b.br.Done():
				return
			}
		}
	}()
}

// Wait blocks until the event loop has exited.
func (b *Backend) Wait() {
	b.wg.Wait()
}

func (b *Backend) handle(ev bridge.Event) {
	switch e := ev.(type) {
	case bridge.PasswordSubmitted:
		b.handleUnlock(e.Password)
	case bridge.ModeSelected:
		b.handleCreate(e.Mode, e.Title)
	case bridge.EntrySelected:
		b.handleOpen(e.Index)
	case bridge.DeleteEntryClicked:
		b.handleDelete(e.Index)
	case bridge.SaveContent:
		b.handleSave(e.Content)
	case bridge.BackToList:
		b.br.Push(bridge.ShowListView{})
	case bridge.SearchEntries:
		b.query = e.Query
		b.pushEntries()
	case bridge.ClearSearch:
		b.query = ""
		b.pushEntries()
	case bridge.PageChanged:
		b.handlePageChange(e.Page)
	case bridge.AddNewPage:
		b.handleAddPage()
	case bridge.InsertImage:
		logging.Error(fmt.Errorf("image insertion requested but not implemented"))
	case bridge.NewEntryClicked, bridge.AddCheckbox:
		// Handled entirely inside the UI.
	}
}

func (b *Backend) handleUnlock(password string) {
	if b.password != "" && password != b.password {
		b.br.Push(bridge.SetPasswordError{Message: incorrectPasswordError})
		b.br.Push(bridge.ShowPasswordError{Visible: true})
		b.br.Push(bridge.ShowPasswordGate{})
		return
	}
	b.unlocked = true
	b.br.Push(bridge.ShowPasswordError{Visible: false})
	b.pushEntries()
	b.br.Push(bridge.ShowListView{})
}

func (b *Backend) handleCreate(mode bridge.Mode, title string) {
	if !b.unlocked {
		return
	}
	idx := b.store.Add(NewEntry(title, mode, b.now()))
	b.currentIdx = idx
	b.currentPage = 1
	b.query = ""
	b.pushEntries()
	b.pushCurrent()
	b.pushEditorFor(mode)
}

func (b *Backend) handleOpen(index int) {
	entry, idx := b.resolve(index)
	if entry == nil {
		return
	}
	b.currentIdx = idx
	b.currentPage = 1
	b.pushCurrent()
	b.pushEditorFor(entry.Kind)
}

func (b *Backend) handleDelete(index int) {
	_, idx := b.resolve(index)
	if idx < 0 || !b.store.Delete(idx) {
		return
	}
	if b.currentIdx == idx {
		b.currentIdx = -1
		b.currentPage = 0
	} else if b.currentIdx > idx {
		b.currentIdx--
	}
	b.pushEntries()
}

func (b *Backend) handleSave(content string) {
	entry := b.store.At(b.currentIdx)
	if entry == nil {
		return
	}
	page := b.currentPage
	if entry.Kind == bridge.ModeNote {
		page = 1
	}
	entry.SetPage(page, content, b.now())
	b.br.Push(bridge.SetWordCount{Count: words.Count(content)})
	b.pushEntries()
}

func (b *Backend) handlePageChange(page int) {
	entry := b.store.At(b.currentIdx)
	if entry == nil || entry.Kind != bridge.ModeBook {
		return
	}
	if page < 1 || page > len(entry.Pages) {
		return
	}
	b.currentPage = page
	b.br.Push(bridge.SetCurrentPage{Page: page})
	b.br.Push(bridge.SetCurrentContent{Content: entry.Page(page)})
	b.br.Push(bridge.SetWordCount{Count: words.Count(entry.Page(page))})
}

func (b *Backend) handleAddPage() {
	entry := b.store.At(b.currentIdx)
	if entry == nil || entry.Kind != bridge.ModeBook {
		return
	}
	total := entry.AddPage()
	b.currentPage = total
	b.br.Push(bridge.SetTotalPages{Total: total})
	b.br.Push(bridge.SetCurrentPage{Page: total})
	b.br.Push(bridge.SetCurrentContent{Content: ""})
	b.br.Push(bridge.SetWordCount{Count: 0})
}

// resolve maps a UI row index through the current filtered view to a store
// index.
func (b *Backend) resolve(index int) (*Entry, int) {
	if index < 0 || index >= len(b.visible) {
		return nil, -1
	}
	idx := b.visible[index]
	return b.store.At(idx), idx
}

// pushCurrent pushes every field of the open entry, pages first so the
// content lands against the right counters.
func (b *Backend) pushCurrent() {
	entry := b.store.At(b.currentIdx)
	if entry == nil {
		return
	}
	b.br.Push(bridge.SetCurrentEntryTitle{Title: entry.Title})
	b.br.Push(bridge.SetTotalPages{Total: len(entry.Pages)})
	b.br.Push(bridge.SetCurrentPage{Page: b.currentPage})
	content := entry.Page(b.currentPage)
	b.br.Push(bridge.SetCurrentContent{Content: content})
	b.br.Push(bridge.SetWordCount{Count: words.Count(content)})
}

func (b *Backend) pushEditorFor(mode bridge.Mode) {
	if mode == bridge.ModeBook {
		b.br.Push(bridge.ShowBookEditor{})
		return
	}
	b.br.Push(bridge.ShowNoteEditor{})
}

// pushEntries recomputes the filtered view and pushes the row labels.
func (b *Backend) pushEntries() {
	b.visible = Filter(b.query, b.store.Titles())
	rows := make([][]string, 0, len(b.visible))
	now := b.now()
	for _, idx := range b.visible {
		entry := b.store.At(idx)
		rows = append(rows, []string{
			words.Ellipsis(entry.Title, titleColumnWidth),
			relativeTime(entry.Updated, now),
			fmt.Sprintf("%d words", entry.WordTotal()),
		})
	}
	labels := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight})
	b.br.Push(bridge.SetEntryList{Entries: labels})
}

// Seed fills a store with a small set of starter entries.
func Seed(store *Store, now time.Time) {
	welcome := NewEntry("Welcome to NoteQuarry", bridge.ModeNote, now.Add(-2*time.Hour))
	welcome.Pages[0] = "☐ Press n to create your first entry\n☐ Press / to search"
	store.Add(welcome)

	travel := NewEntry("Travel journal", bridge.ModeBook, now.Add(-3*24*time.Hour))
	travel.Pages = []string{
		"Day one. The train left at dawn.",
		"Day two. Rain, coffee, and a very long bridge.",
	}
	store.Add(travel)
}
