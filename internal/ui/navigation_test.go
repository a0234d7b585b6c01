package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/notequarry/notequarry/internal/bridge"
	"github.com/notequarry/notequarry/internal/ui/state"
)

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func enterBook(t *testing.T, h *Harness, br *bridge.Bridge) {
	t.Helper()
	unlock(t, h, br)
	h.Apply(bridge.ShowBookEditor{})
	if h.Model().ViewState().Active != state.ScreenBook {
		t.Fatalf("book editor not active")
	}
}

func TestBookSaveEmitsCurrentContent(t *testing.T) {
	h, br := newTestShell(t)
	enterBook(t, h, br)
	h.Apply(bridge.SetCurrentContent{Content: "alpha beta"})

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	want := []bridge.Event{bridge.SaveContent{Content: "alpha beta"}}
	if diff := cmp.Diff(want, drainEvents(br)); diff != "" {
		t.Errorf("save mismatch (-want +got):\n%s", diff)
	}
}

func TestBookTypingRecomputesWordCount(t *testing.T) {
	h, br := newTestShell(t)
	enterBook(t, h, br)

	h.Type("one two")
	if got := h.Model().ViewState().WordCount; got != 2 {
		t.Errorf("word count = %d, want 2", got)
	}
	if got := h.Model().ViewState().CurrentContent; got != "one two" {
		t.Errorf("mirrored content = %q", got)
	}
	drainEvents(br)
}

func TestContentPushLeavesWordCountDisplayAlone(t *testing.T) {
	h, br := newTestShell(t)
	enterBook(t, h, br)

	h.Apply(bridge.SetCurrentContent{Content: "a b c"})
	if got := h.Model().ViewState().WordCount; got != 0 {
		t.Fatalf("programmatic content changed the word count display to %d", got)
	}
	h.Apply(bridge.SetWordCount{Count: 3})
	if got := h.Model().ViewState().WordCount; got != 3 {
		t.Fatalf("pushed word count not mirrored, got %d", got)
	}

	// The first keystroke after a push recounts the full buffer.
	h.Type("x")
	if got := h.Model().ViewState().WordCount; got != 3 {
		t.Errorf("word count = %d after edit, want 3", got)
	}
	drainEvents(br)
}

func TestBookPaginationClampsAtEdges(t *testing.T) {
	h, br := newTestShell(t)
	enterBook(t, h, br)
	h.Apply(bridge.SetTotalPages{Total: 3})

	h.Send(altKey('p'))
	if evs := drainEvents(br); len(evs) != 0 {
		t.Fatalf("previous on page 1 emitted %v", evs)
	}

	h.Send(altKey('n'))
	want := []bridge.Event{bridge.PageChanged{Page: 2}}
	if diff := cmp.Diff(want, drainEvents(br)); diff != "" {
		t.Fatalf("next mismatch (-want +got):\n%s", diff)
	}

	h.Apply(bridge.SetCurrentPage{Page: 3})
	h.Send(altKey('n'))
	if evs := drainEvents(br); len(evs) != 0 {
		t.Fatalf("next on the last page emitted %v", evs)
	}
	h.Send(altKey('p'))
	want = []bridge.Event{bridge.PageChanged{Page: 2}}
	if diff := cmp.Diff(want, drainEvents(br)); diff != "" {
		t.Errorf("previous mismatch (-want +got):\n%s", diff)
	}
}

func TestBookToleratesInconsistentCounters(t *testing.T) {
	h, br := newTestShell(t)
	enterBook(t, h, br)
	h.Apply(bridge.SetTotalPages{Total: 3})
	h.Apply(bridge.SetCurrentPage{Page: 9})

	h.Send(altKey('n'))
	if evs := drainEvents(br); len(evs) != 0 {
		t.Errorf("next past the declared total emitted %v", evs)
	}
	// Rendering with the bogus counters must not panic.
	_ = h.View()
}

func TestAddPageAlwaysActionable(t *testing.T) {
	h, br := newTestShell(t)
	enterBook(t, h, br)

	h.Send(altKey('a'))
	want := []bridge.Event{bridge.AddNewPage{}}
	if diff := cmp.Diff(want, drainEvents(br)); diff != "" {
		t.Errorf("add-page mismatch (-want +got):\n%s", diff)
	}
}

func TestGotoPageEmitsOnlyOnDifference(t *testing.T) {
	h, br := newTestShell(t)
	enterBook(t, h, br)
	h.Apply(bridge.SetTotalPages{Total: 5})

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlG})
	h.Key(tea.KeyBackspace)
	h.Type("3")
	h.Key(tea.KeyEnter)
	want := []bridge.Event{bridge.PageChanged{Page: 3}}
	if diff := cmp.Diff(want, drainEvents(br)); diff != "" {
		t.Fatalf("goto mismatch (-want +got):\n%s", diff)
	}

	// Committing the unchanged preset is a no-op.
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlG})
	h.Key(tea.KeyEnter)
	if evs := drainEvents(br); len(evs) != 0 {
		t.Errorf("unchanged goto emitted %v", evs)
	}
}

func TestInsertImageEmits(t *testing.T) {
	h, br := newTestShell(t)
	enterBook(t, h, br)

	h.Send(altKey('i'))
	want := []bridge.Event{bridge.InsertImage{}}
	if diff := cmp.Diff(want, drainEvents(br)); diff != "" {
		t.Errorf("image mismatch (-want +got):\n%s", diff)
	}
}

func TestEscReturnsToList(t *testing.T) {
	h, br := newTestShell(t)
	enterBook(t, h, br)

	h.Key(tea.KeyEsc)
	want := []bridge.Event{bridge.BackToList{}}
	if diff := cmp.Diff(want, drainEvents(br)); diff != "" {
		t.Fatalf("back mismatch (-want +got):\n%s", diff)
	}
	if h.Model().ViewState().Active != state.ScreenList {
		t.Errorf("list should be active again")
	}
}

func TestNoteCheckboxInsertionEmitsAndEdits(t *testing.T) {
	h, br := newTestShell(t)
	unlock(t, h, br)
	h.Apply(bridge.ShowNoteEditor{})

	h.Send(altKey('c'))
	want := []bridge.Event{bridge.AddCheckbox{}}
	if diff := cmp.Diff(want, drainEvents(br)); diff != "" {
		t.Fatalf("checkbox mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(h.Model().note.Content(), checkboxGlyph) {
		t.Errorf("glyph missing from note content %q", h.Model().note.Content())
	}
	if !strings.Contains(h.Model().ViewState().CurrentContent, checkboxGlyph) {
		t.Errorf("glyph missing from mirrored content")
	}
}

func TestNoteSaveEmitsContent(t *testing.T) {
	h, br := newTestShell(t)
	unlock(t, h, br)
	h.Apply(bridge.ShowNoteEditor{})
	h.Apply(bridge.SetCurrentContent{Content: "remember the milk"})

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	want := []bridge.Event{bridge.SaveContent{Content: "remember the milk"}}
	if diff := cmp.Diff(want, drainEvents(br)); diff != "" {
		t.Errorf("save mismatch (-want +got):\n%s", diff)
	}
}

func TestEditorDirectivesSwapSurfaces(t *testing.T) {
	h, br := newTestShell(t)
	unlock(t, h, br)

	h.Apply(bridge.SetCurrentEntryTitle{Title: "Field Log"})
	h.Apply(bridge.ShowBookEditor{})
	if !strings.Contains(h.View(), "Field Log") {
		t.Errorf("book render missing the entry title")
	}
	h.Apply(bridge.ShowNoteEditor{})
	if h.Model().ViewState().Active != state.ScreenNote {
		t.Fatalf("note directive ignored")
	}
	if !strings.Contains(h.View(), "Field Log") {
		t.Errorf("note render missing the entry title")
	}
}
