package web

import (
	"encoding/json"

	"github.com/saadkhalil01/portfolio/internal/viewstate"
)

const (
	eventPush = "portfolio:push"
	eventBack = "portfolio:back"
)

// clientHistory relays controller history calls to the browser. While an
// htmx request is being handled, pushes and backs are queued and sent to the
// client as HX-Trigger events; the page script applies them with the
// history API. Outside an htmx request the browser cannot be reached and
// both calls fail with ErrHistoryUnavailable.
type clientHistory struct {
	scripted bool
	events   map[string]any
}

func (h *clientHistory) begin(scripted bool) {
	h.scripted = scripted
	h.events = nil
}

func (h *clientHistory) Push(e viewstate.Entry) error {
	if !h.scripted {
		return viewstate.ErrHistoryUnavailable
	}
	h.queue(eventPush, e)
	return nil
}

func (h *clientHistory) Back() error {
	if !h.scripted {
		return viewstate.ErrHistoryUnavailable
	}
	h.queue(eventBack, struct{}{})
	return nil
}

func (h *clientHistory) queue(name string, detail any) {
	if h.events == nil {
		h.events = make(map[string]any)
	}
	h.events[name] = detail
}

// trigger returns the HX-Trigger header value for the queued events.
func (h *clientHistory) trigger() (string, bool) {
	if len(h.events) == 0 {
		return "", false
	}
	b, err := json.Marshal(h.events)
	if err != nil {
		return "", false
	}
	return string(b), true
}
