package bridge

// Mode distinguishes the two entry kinds a user can create.
type Mode string

const (
	ModeBook Mode = "BOOK"
	ModeNote Mode = "NOTE"
)

// Event is the outward half of the boundary: a user action the UI reports to
// the backend. Once emitted an event cannot be retracted.
type Event interface {
	// Name identifies the event in trace logs.
	Name() string
}

// PasswordSubmitted carries the unlock attempt. The shell guarantees the
// trimmed form is non-empty; the payload is the raw field text.
type PasswordSubmitted struct {
	Password string
}

// NewEntryClicked reports that the user asked for a new entry.
type NewEntryClicked struct{}

// ModeSelected completes entry creation with a mode and a non-empty title.
type ModeSelected struct {
	Mode  Mode
	Title string
}

// EntrySelected reports a click on the entry list row at Index (0-based,
// in the order of the last pushed entry list).
type EntrySelected struct {
	Index int
}

// DeleteEntryClicked reports a confirmed deletion of the row at Index.
type DeleteEntryClicked struct {
	Index int
}

// SaveContent carries the active editor's full text.
type SaveContent struct {
	Content string
}

// BackToList reports navigation out of an editor. No save is implied.
type BackToList struct{}

// SearchEntries relays the raw query text on every keystroke. Filtering is
// entirely the backend's job.
type SearchEntries struct {
	Query string
}

// ClearSearch reports an explicit reset of the search box.
type ClearSearch struct{}

// PageChanged requests the given page. The shell only emits in-bounds
// requests from the nav controls; the go-to field emits whenever the typed
// value differs from the last-known current page.
type PageChanged struct {
	Page int
}

// AddNewPage asks the backend to allocate a page. The shell waits for the
// pushed page counts rather than numbering the page itself.
type AddNewPage struct{}

// InsertImage signals an image insertion request. No payload: file picking
// belongs to the backend contract.
type InsertImage struct{}

// AddCheckbox reports a checkbox insertion. The glyph is already inserted
// locally by the note editor when this fires.
type AddCheckbox struct{}

func (PasswordSubmitted) Name() string  { return "password_submitted" }
func (NewEntryClicked) Name() string    { return "new_entry_clicked" }
func (ModeSelected) Name() string       { return "mode_selected" }
func (EntrySelected) Name() string      { return "entry_selected" }
func (DeleteEntryClicked) Name() string { return "delete_entry_clicked" }
func (SaveContent) Name() string        { return "save_content" }
func (BackToList) Name() string         { return "back_to_list" }
func (SearchEntries) Name() string      { return "search_entries" }
func (ClearSearch) Name() string        { return "clear_search" }
func (PageChanged) Name() string        { return "page_changed" }
func (AddNewPage) Name() string         { return "add_new_page" }
func (InsertImage) Name() string        { return "insert_image" }
func (AddCheckbox) Name() string        { return "add_checkbox" }
