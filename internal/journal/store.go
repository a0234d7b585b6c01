// Package journal is the reference backend: an in-memory entry store wired
// to the bridge. It owns the entry list, unlock checks, search filtering,
// and page bookkeeping, all the things the UI shell mirrors but never
// computes. It holds nothing on disk and encrypts nothing; real backends
// replace this package wholesale and keep the bridge.
package journal

import (
	"fmt"
	"time"

	"github.com/notequarry/notequarry/internal/bridge"
	"github.com/notequarry/notequarry/internal/words"
)

// Entry is one journal entry. Book entries hold one string per page; note
// entries always hold exactly one.
type Entry struct {
	Title   string
	Kind    bridge.Mode
	Pages   []string
	Updated time.Time
}

// NewEntry constructs an empty entry of the given kind with one blank page.
func NewEntry(title string, kind bridge.Mode, now time.Time) *Entry {
	return &Entry{
		Title:   title,
		Kind:    kind,
		Pages:   []string{""},
		Updated: now,
	}
}

// Page returns the 1-based page's content, or "" for an out-of-range page.
func (e *Entry) Page(n int) string {
	if n < 1 || n > len(e.Pages) {
		return ""
	}
	return e.Pages[n-1]
}

// SetPage stores content on the 1-based page; out-of-range writes are
// dropped rather than growing the entry.
func (e *Entry) SetPage(n int, content string, now time.Time) {
	if n < 1 || n > len(e.Pages) {
		return
	}
	e.Pages[n-1] = content
	e.Updated = now
}

// AddPage appends a blank page and returns the new page count.
func (e *Entry) AddPage() int {
	e.Pages = append(e.Pages, "")
	return len(e.Pages)
}

// WordTotal counts words across all pages.
func (e *Entry) WordTotal() int {
	total := 0
	for _, page := range e.Pages {
		total += words.Count(page)
	}
	return total
}

// Store holds the entries in display order.
type Store struct {
	entries []*Entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends an entry and returns its index.
func (s *Store) Add(e *Entry) int {
	s.entries = append(s.entries, e)
	return len(s.entries) - 1
}

// At returns the entry at index i, or nil when out of range.
func (s *Store) At(i int) *Entry {
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	return s.entries[i]
}

// Delete removes the entry at index i.
func (s *Store) Delete(i int) bool {
	if i < 0 || i >= len(s.entries) {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return true
}

// Len returns the entry count.
func (s *Store) Len() int {
	return len(s.entries)
}

// Titles returns entry titles in display order.
func (s *Store) Titles() []string {
	titles := make([]string, len(s.entries))
	for i, e := range s.entries {
		titles[i] = e.Title
	}
	return titles
}

// relativeTime renders a timestamp the way the entry rows show it.
func relativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		return fmt.Sprintf("%d minute%s ago", mins, plural(mins))
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	default:
		return t.Format("Jan 02, 2006")
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
