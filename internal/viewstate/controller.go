// Package viewstate keeps the portfolio's selected app and contact menu in
// step with the platform navigation history.
//
// The controller owns the state and an internal navigation stack; the
// platform History only receives pushes and back requests, and reports
// back-navigation events through OnBackNavigation.
package viewstate

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/saadkhalil01/portfolio/internal/catalog"
)

// ErrNoItem is returned when selecting a nil item.
var ErrNoItem = errors.New("no item to select")

// Mode is the main display mode.
type Mode int

const (
	Gallery Mode = iota
	Detail
)

func (m Mode) String() string {
	if m == Detail {
		return "detail"
	}
	return "gallery"
}

// State is a snapshot of the view state.
type State struct {
	Selected *catalog.Item
	MenuOpen bool
}

// Mode returns Detail when an item is selected.
func (s State) Mode() Mode {
	if s.Selected != nil {
		return Detail
	}
	return Gallery
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for swallowed history failures and
// transition traces.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// Controller mediates between user actions and navigation history.
// It is safe for concurrent use.
type Controller struct {
	mu      sync.Mutex
	history History
	log     zerolog.Logger

	state State
	stack []Entry

	subs    map[int]func(State)
	nextSub int
	detach  func()
	closed  bool
}

// New returns a controller in Gallery mode with the menu closed.
func New(history History, opts ...Option) *Controller {
	c := &Controller{
		history: history,
		log:     zerolog.Nop(),
		subs:    make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Depth returns the number of entries the controller has pushed and not yet
// seen consumed.
func (c *Controller) Depth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.stack)
}

// SelectItem opens the detail view for item and pushes one history entry
// tagged with its name. The selection is applied before the push, so a
// failing history still updates the view.
func (c *Controller) SelectItem(item *catalog.Item) error {
	if item == nil {
		return ErrNoItem
	}
	c.mu.Lock()
	c.state.Selected = item
	snap := c.state
	c.mu.Unlock()

	entry := EntryFor(item)
	if err := c.history.Push(entry); err != nil {
		c.log.Debug().Err(err).Str("app", item.Name).Msg("history push failed")
	} else {
		c.mu.Lock()
		c.stack = append(c.stack, entry)
		c.mu.Unlock()
	}

	c.notify(snap)
	return nil
}

// Show opens the detail view for item without touching history, as when a
// page is loaded straight onto an app's URL.
func (c *Controller) Show(item *catalog.Item) error {
	if item == nil {
		return ErrNoItem
	}
	c.mu.Lock()
	changed := c.state.Selected != item
	c.state.Selected = item
	snap := c.state
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
	return nil
}

// GoBack leaves the detail view. When the top of the navigation stack is an
// entry this controller pushed, it asks the history to go back and lets the
// resulting back-navigation event clear the selection. Otherwise it clears
// the selection directly so the page is never left.
func (c *Controller) GoBack() {
	c.mu.Lock()
	n := len(c.stack)
	pushed := n > 0 && c.stack[n-1].Tagged()
	c.mu.Unlock()

	if pushed {
		err := c.history.Back()
		if err == nil {
			return
		}
		c.log.Debug().Err(err).Msg("history back failed, closing detail in place")
		c.mu.Lock()
		if len(c.stack) > 0 {
			c.stack = c.stack[:len(c.stack)-1]
		}
		c.mu.Unlock()
	}

	c.mu.Lock()
	changed := c.state.Selected != nil
	c.state.Selected = nil
	snap := c.state
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
}

// OnBackNavigation handles a back-navigation event from the platform. It
// always closes the menu and clears the selection if one is set.
func (c *Controller) OnBackNavigation() {
	c.mu.Lock()
	changed := c.state.MenuOpen || c.state.Selected != nil
	c.state.MenuOpen = false
	c.state.Selected = nil
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
	}
	snap := c.state
	c.mu.Unlock()

	if changed {
		c.notify(snap)
	}
}

// ToggleMenu flips the contact menu.
func (c *Controller) ToggleMenu() {
	c.mu.Lock()
	c.state.MenuOpen = !c.state.MenuOpen
	snap := c.state
	c.mu.Unlock()

	c.notify(snap)
}

// Subscribe registers fn to be called after every state change. The
// returned function cancels the subscription.
func (c *Controller) Subscribe(fn func(State)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Attach installs the back-navigation handler on n. Only the first call
// has an effect.
func (c *Controller) Attach(n Notifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detach != nil || c.closed {
		return
	}
	c.detach = n.Listen(c.OnBackNavigation)
}

// Close removes the back-navigation handler and drops all subscribers.
func (c *Controller) Close() {
	c.mu.Lock()
	detach := c.detach
	c.detach = nil
	c.closed = true
	c.subs = make(map[int]func(State))
	c.mu.Unlock()

	if detach != nil {
		detach()
	}
}

func (c *Controller) notify(s State) {
	c.mu.Lock()
	fns := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}
