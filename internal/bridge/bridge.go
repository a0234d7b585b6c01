// Package bridge is the boundary between the NoteQuarry UI shell and its
// backend. The backend pushes state through a stream of Commands; the UI
// reports user activity through a stream of Events. Both streams carry
// tagged-union values, so a backend integrates by draining Events and pushing
// Commands; there is no callback registration.
//
// All UI state mutation happens on the Bubble Tea update loop: the shell
// drains Commands() from inside its own event loop, which is what makes
// cross-goroutine Push calls safe.
package bridge

import (
	"sync"

	"github.com/notequarry/notequarry/internal/logging/events"
)

const streamBuffer = 64

// Bridge carries the two streams plus the lifecycle state. The zero value is
// not usable; construct with New and release with Close.
type Bridge struct {
	commands chan Command
	evs      chan Event

	done      chan struct{}
	closeOnce sync.Once
}

// New initialises both streams.
func New() *Bridge {
	return &Bridge{
		commands: make(chan Command, streamBuffer),
		evs:      make(chan Event, streamBuffer),
		done:     make(chan struct{}),
	}
}

// Push delivers a backend command to the UI. It blocks while the UI is alive
// and the buffer is full; on a nil or closed bridge it is a no-op with a
// logged diagnostic, never a partial update.
func (b *Bridge) Push(cmd Command) {
	if b == nil || cmd == nil {
		events.Bridge.Misuse("push")
		return
	}
	select {
	case <-b.done:
		events.Bridge.Misuse("push")
		return
	default:
	}
	events.Bridge.Command(cmd.Name())
	select {
	case b.commands <- cmd:
	case <-b.done:
		events.Bridge.Dropped("command", cmd.Name())
	}
}

// Emit delivers a UI event to the backend. Events nobody drains are dropped
// once the buffer fills; an absent listener is not an error.
func (b *Bridge) Emit(ev Event) {
	if b == nil || ev == nil {
		events.Bridge.Misuse("emit")
		return
	}
	select {
	case <-b.done:
		events.Bridge.Misuse("emit")
		return
	default:
	}
	events.Bridge.Event(ev.Name())
	select {
	case b.evs <- ev:
	default:
		events.Bridge.Dropped("event", ev.Name())
	}
}

// Commands exposes the inward stream for the UI shell.
func (b *Bridge) Commands() <-chan Command {
	if b == nil {
		return nil
	}
	return b.commands
}

// Events exposes the outward stream for the backend.
func (b *Bridge) Events() <-chan Event {
	if b == nil {
		return nil
	}
	return b.evs
}

// Done is closed when the bridge shuts down.
func (b *Bridge) Done() <-chan struct{} {
	if b == nil {
		return nil
	}
	return b.done
}

// Close shuts the boundary down. Subsequent Push and Emit calls become
// logged no-ops. Close is idempotent.
func (b *Bridge) Close() {
	if b == nil {
		events.Bridge.Misuse("close")
		return
	}
	b.closeOnce.Do(func() {
		close(b.done)
	})
}
