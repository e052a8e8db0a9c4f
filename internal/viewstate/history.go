package viewstate

import (
	"errors"
	"sync"

	"github.com/saadkhalil01/portfolio/internal/catalog"
)

var (
	// ErrHistoryUnavailable is returned by a History that cannot record
	// entries, e.g. a sandboxed frame or a client without scripting.
	ErrHistoryUnavailable = errors.New("history api unavailable")

	// ErrNoEntry is returned by Back when there is nothing to pop.
	ErrNoEntry = errors.New("no history entry to go back to")
)

// Entry is a navigation history record. App tags entries pushed for a
// detail view; the initial page entry is untagged.
type Entry struct {
	App string `json:"app"`
	URL string `json:"url"`
}

// Tagged reports whether the entry was pushed for a detail view.
func (e Entry) Tagged() bool { return e.App != "" }

// EntryFor builds the entry pushed when item is selected.
func EntryFor(item *catalog.Item) Entry {
	return Entry{App: item.Name, URL: item.Fragment()}
}

// History is the platform navigation history the controller synchronises
// against.
type History interface {
	Push(Entry) error
	Back() error
}

// Notifier delivers back-navigation events. Listen returns a function that
// removes the listener.
type Notifier interface {
	Listen(fn func()) (remove func())
}

// MemoryHistory is an in-process History and Notifier. Back pops the top
// entry and fires the listeners synchronously, like a browser's popstate.
type MemoryHistory struct {
	mu        sync.Mutex
	entries   []Entry
	listeners map[int]func()
	nextID    int
	disabled  bool
	backs     int
}

// NewMemoryHistory returns a history holding only the untagged page entry.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{
		entries:   []Entry{{}},
		listeners: make(map[int]func()),
	}
}

// Disable makes every subsequent Push fail with ErrHistoryUnavailable.
func (h *MemoryHistory) Disable() {
	h.mu.Lock()
	h.disabled = true
	h.mu.Unlock()
}

func (h *MemoryHistory) Push(e Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disabled {
		return ErrHistoryUnavailable
	}
	h.entries = append(h.entries, e)
	return nil
}

func (h *MemoryHistory) Back() error {
	h.mu.Lock()
	if len(h.entries) <= 1 {
		h.mu.Unlock()
		return ErrNoEntry
	}
	h.entries = h.entries[:len(h.entries)-1]
	h.backs++
	fns := make([]func(), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return nil
}

func (h *MemoryHistory) Listen(fn func()) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.listeners, id)
			h.mu.Unlock()
		})
	}
}

// Current returns the top entry.
func (h *MemoryHistory) Current() Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[len(h.entries)-1]
}

// Len returns the number of entries including the page entry.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Backs counts successful Back navigations.
func (h *MemoryHistory) Backs() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.backs
}

// Listeners returns the number of installed listeners.
func (h *MemoryHistory) Listeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}
