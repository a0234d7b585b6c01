package bridge

// Command is the inward half of the boundary: a state mutation the backend
// pushes into the UI. Every command is fire-and-forget; the UI applies it on
// its own event loop and never returns a value.
type Command interface {
	// Name identifies the command in trace logs.
	Name() string
}

// SetEntryList replaces the mirrored entry list. An empty slice is a valid,
// distinct state and renders the dedicated empty view.
type SetEntryList struct {
	Entries []string
}

// SetCurrentEntryTitle updates the title shown by whichever editor is active.
type SetCurrentEntryTitle struct {
	Title string
}

// SetCurrentContent replaces the editable content. Programmatic replacement
// is never observable as a user edit.
type SetCurrentContent struct {
	Content string
}

// SetCurrentPage updates the book view's current page number.
type SetCurrentPage struct {
	Page int
}

// SetTotalPages updates the book view's page count.
type SetTotalPages struct {
	Total int
}

// SetWordCount overrides the displayed word count. The shell also derives
// the count locally on every edit; whichever write lands last wins.
type SetWordCount struct {
	Count int
}

// SetPasswordError sets the unlock failure text. The text stays until the
// backend replaces it; the gate never clears it on its own.
type SetPasswordError struct {
	Message string
}

// ShowPasswordError toggles visibility of the unlock failure text.
type ShowPasswordError struct {
	Visible bool
}

// ShowPasswordGate re-presents the unlock gate. Re-presenting after a failed
// unlock is the backend's responsibility; the gate never reopens itself.
type ShowPasswordGate struct{}

// ShowListView switches the shell to the entry list.
type ShowListView struct{}

// ShowBookEditor switches the shell to the paginated book editor.
type ShowBookEditor struct{}

// ShowNoteEditor switches the shell to the freeform note editor.
type ShowNoteEditor struct{}

func (SetEntryList) Name() string         { return "set_entry_list" }
func (SetCurrentEntryTitle) Name() string { return "set_current_entry_title" }
func (SetCurrentContent) Name() string    { return "set_current_content" }
func (SetCurrentPage) Name() string       { return "set_current_page" }
func (SetTotalPages) Name() string        { return "set_total_pages" }
func (SetWordCount) Name() string         { return "set_word_count" }
func (SetPasswordError) Name() string     { return "set_password_error" }
func (ShowPasswordError) Name() string    { return "show_password_error" }
func (ShowPasswordGate) Name() string     { return "show_password_gate" }
func (ShowListView) Name() string         { return "show_list_view" }
func (ShowBookEditor) Name() string       { return "show_book_editor" }
func (ShowNoteEditor) Name() string       { return "show_note_editor" }
