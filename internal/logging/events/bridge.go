package events

import "github.com/notequarry/notequarry/internal/logging"

type BridgeTracer struct{}

var Bridge = BridgeTracer{}

func (BridgeTracer) Command(name string) {
	logging.Trace("bridge.command", map[string]interface{}{"name": name})
}

func (BridgeTracer) Event(name string) {
	logging.Trace("bridge.event", map[string]interface{}{"name": name})
}

func (BridgeTracer) Dropped(kind, name string) {
	logging.Trace("bridge.dropped", map[string]interface{}{"kind": kind, "name": name})
}

func (BridgeTracer) Misuse(op string) {
	logging.Trace("bridge.misuse", map[string]interface{}{"op": op})
}
