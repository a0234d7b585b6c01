package events

import "github.com/notequarry/notequarry/internal/logging"

type UITracer struct{}

type GateTracer struct{}

type EditorTracer struct{}

type SearchTracer struct{}

var (
	UI     = UITracer{}
	Gate   = GateTracer{}
	Editor = EditorTracer{}
	Search = SearchTracer{}
)

func (UITracer) Screen(from, to string) {
	logging.Trace("ui.screen", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) EntrySelect(index int, label string) {
	logging.Trace("ui.entry-select", map[string]interface{}{"index": index, "label": label})
}

func (UITracer) DeletePrompt(index int, label string) {
	logging.Trace("ui.delete-prompt", map[string]interface{}{"index": index, "label": label})
}

func (UITracer) DeleteConfirm(index int, accepted bool) {
	logging.Trace("ui.delete-confirm", map[string]interface{}{"index": index, "accepted": accepted})
}

func (UITracer) ModeSelect(mode, title string) {
	logging.Trace("ui.mode-select", map[string]interface{}{"mode": mode, "title": title})
}

func (GateTracer) Submit() {
	logging.Trace("gate.submit", nil)
}

func (GateTracer) Reject(reason string) {
	logging.Trace("gate.reject", map[string]interface{}{"reason": reason})
}

func (GateTracer) ErrorShown(visible bool) {
	logging.Trace("gate.error-shown", map[string]interface{}{"visible": visible})
}

func (EditorTracer) Save(screen string, bytes int) {
	logging.Trace("editor.save", map[string]interface{}{"screen": screen, "bytes": bytes})
}

func (EditorTracer) Page(from, to int) {
	logging.Trace("editor.page", map[string]interface{}{"from": from, "to": to})
}

func (EditorTracer) AddPage(total int) {
	logging.Trace("editor.add-page", map[string]interface{}{"total": total})
}

func (EditorTracer) Checkbox() {
	logging.Trace("editor.checkbox", nil)
}

func (EditorTracer) Image(screen string) {
	logging.Trace("editor.image", map[string]interface{}{"screen": screen})
}

func (SearchTracer) Query(query string) {
	logging.Trace("search.query", map[string]interface{}{"query": query})
}

func (SearchTracer) Cleared() {
	logging.Trace("search.clear", nil)
}
