package web

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/saadkhalil01/portfolio/internal/viewstate"
)

// page is one full page load and the view state behind it.
type page struct {
	id      string
	ctrl    *viewstate.Controller
	history *clientHistory

	// held for the whole request so queued history events reach the
	// response that caused them
	mu sync.Mutex

	lastSeen time.Time
}

const defaultMaxPages = 10000

type pageStore struct {
	mu    sync.Mutex
	pages map[string]*page
	ttl   time.Duration
	limit int
	now   func() time.Time
	log   zerolog.Logger
}

func newPageStore(ttl time.Duration, limit int, log zerolog.Logger) *pageStore {
	if limit <= 0 {
		limit = defaultMaxPages
	}
	return &pageStore{
		pages: make(map[string]*page),
		ttl:   ttl,
		limit: limit,
		now:   time.Now,
		log:   log,
	}
}

// open registers a new page in Gallery mode.
func (s *pageStore) open() *page {
	h := &clientHistory{}
	p := &page{
		id:      uuid.NewString(),
		history: h,
	}
	log := s.log.With().Str("page", p.id).Logger()
	p.ctrl = viewstate.New(h, viewstate.WithLogger(log))
	p.ctrl.Subscribe(func(st viewstate.State) {
		ev := log.Debug().Str("mode", st.Mode().String()).Bool("menu_open", st.MenuOpen)
		if st.Selected != nil {
			ev = ev.Str("app", st.Selected.Name)
		}
		ev.Msg("view state changed")
	})

	s.mu.Lock()
	var evicted *page
	if len(s.pages) >= s.limit {
		evicted = s.oldestLocked()
		delete(s.pages, evicted.id)
	}
	p.lastSeen = s.now()
	s.pages[p.id] = p
	s.mu.Unlock()

	if evicted != nil {
		evicted.ctrl.Close()
		s.log.Debug().Str("evicted", evicted.id).Int("limit", s.limit).Msg("page limit reached")
	}
	return p
}

// oldestLocked returns the least recently seen page. s.mu must be held and
// the store must not be empty.
func (s *pageStore) oldestLocked() *page {
	var oldest *page
	for _, p := range s.pages {
		if oldest == nil || p.lastSeen.Before(oldest.lastSeen) {
			oldest = p
		}
	}
	return oldest
}

// get returns a live page and marks it as seen.
func (s *pageStore) get(id string) (*page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pages[id]
	if !ok {
		return nil, false
	}
	p.lastSeen = s.now()
	return p, true
}

func (s *pageStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

// sweep closes pages idle for longer than the ttl and returns how many.
func (s *pageStore) sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	var expired []*page
	for id, p := range s.pages {
		if p.lastSeen.Before(cutoff) {
			expired = append(expired, p)
			delete(s.pages, id)
		}
	}
	s.mu.Unlock()

	for _, p := range expired {
		p.ctrl.Close()
	}
	if len(expired) > 0 {
		s.log.Debug().Int("pages", len(expired)).Msg("expired pages closed")
	}
	return len(expired)
}

// run sweeps periodically until ctx is done, then closes every page.
func (s *pageStore) run(ctx context.Context) {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return
		case <-t.C:
			s.sweep()
		}
	}
}

func (s *pageStore) closeAll() {
	s.mu.Lock()
	pages := s.pages
	s.pages = make(map[string]*page)
	s.mu.Unlock()

	for _, p := range pages {
		p.ctrl.Close()
	}
}
