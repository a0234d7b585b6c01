package bridge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPushPreservesOrder(t *testing.T) {
	b := New()
	defer b.Close()

	b.Push(SetCurrentEntryTitle{Title: "first"})
	b.Push(SetCurrentContent{Content: "body"})
	b.Push(SetCurrentPage{Page: 2})

	got := []Command{<-b.Commands(), <-b.Commands(), <-b.Commands()}
	want := []Command{
		SetCurrentEntryTitle{Title: "first"},
		SetCurrentContent{Content: "body"},
		SetCurrentPage{Page: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("command order mismatch (-want +got):\n%s", diff)
	}
}

func TestPushAfterCloseIsNoOp(t *testing.T) {
	b := New()
	b.Close()
	b.Push(SetEntryList{Entries: []string{"a"}})
	select {
	case cmd := <-b.Commands():
		t.Fatalf("expected no command after close, got %v", cmd)
	default:
	}
}

func TestNilBridgeCallsAreNoOps(t *testing.T) {
	var b *Bridge
	b.Push(ShowListView{})
	b.Emit(BackToList{})
	b.Close()
	if b.Commands() != nil || b.Events() != nil || b.Done() != nil {
		t.Fatalf("nil bridge should expose nil channels")
	}
}

func TestEmitDropsWhenBufferFull(t *testing.T) {
	b := New()
	defer b.Close()

	for i := 0; i < streamBuffer+10; i++ {
		b.Emit(SearchEntries{Query: "q"})
	}
	drained := 0
	for {
		select {
		case <-b.Events():
			drained++
			continue
		default:
		}
		break
	}
	if drained != streamBuffer {
		t.Fatalf("expected %d buffered events, got %d", streamBuffer, drained)
	}
}

func TestEmitAfterCloseIsNoOp(t *testing.T) {
	b := New()
	b.Close()
	b.Emit(PasswordSubmitted{Password: "hunter2"})
	select {
	case ev := <-b.Events():
		t.Fatalf("expected no event after close, got %v", ev)
	default:
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New()
	b.Close()
	b.Close()
	select {
	case <-b.Done():
	default:
		t.Fatalf("done channel should be closed")
	}
}

func TestBoundaryNames(t *testing.T) {
	pairs := map[string]string{
		SetEntryList{}.Name():       "set_entry_list",
		ShowPasswordError{}.Name():  "show_password_error",
		ModeSelected{}.Name():       "mode_selected",
		DeleteEntryClicked{}.Name(): "delete_entry_clicked",
		AddNewPage{}.Name():         "add_new_page",
	}
	for got, want := range pairs {
		if got != want {
			t.Errorf("boundary name %q, want %q", got, want)
		}
	}
}
