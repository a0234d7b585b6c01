// Package state holds the view state the shell needs to render consistently.
// The shell owns the single writable copy; everything here mutates in place
// on the UI event loop.
package state

// Screen enumerates the mutually exclusive content surfaces.
type Screen int

const (
	ScreenList Screen = iota
	ScreenBook
	ScreenNote
)

func (s Screen) String() string {
	switch s {
	case ScreenBook:
		return "book"
	case ScreenNote:
		return "note"
	default:
		return "list"
	}
}

// SoftWordLimit is the display-only warning threshold for book entries.
// Crossing it changes the word-count style, nothing more.
const SoftWordLimit = 800

// View mirrors the backend-owned state plus the two locally owned fields
// (Active and WordCount). Entries are display strings only; the currently
// open entry exists as the Current* fields, never as an object.
type View struct {
	Entries        []string
	CurrentTitle   string
	CurrentContent string

	CurrentPage int
	TotalPages  int
	WordCount   int

	PasswordError        string
	PasswordErrorVisible bool

	Active Screen
}

// NewView returns the construction-time defaults: list screen, page 1 of 1,
// no entries, no error.
func NewView() *View {
	return &View{
		CurrentPage: 1,
		TotalPages:  1,
		Active:      ScreenList,
	}
}

// CanPrevPage reports whether the previous-page control is actionable.
func (v *View) CanPrevPage() bool {
	return v.CurrentPage > 1
}

// CanNextPage reports whether the next-page control is actionable. A backend
// pushing CurrentPage > TotalPages simply disables the control; the shell
// never repairs the counters itself.
func (v *View) CanNextPage() bool {
	return v.CurrentPage < v.TotalPages
}

// OverWordLimit reports whether the soft display threshold is exceeded.
func (v *View) OverWordLimit() bool {
	return v.WordCount > SoftWordLimit
}
