package reveal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nfrund/portfolio/internal/domain"
)

// ErrUnknownView is returned for page views the tracker never issued or has
// already swept.
var ErrUnknownView = errors.New("unknown page view")

// Sections are the anchors that carry an entrance animation. The hero is
// visible on load and has none.
var Sections = []string{"skills", "education", "projects", "contact"}

// ValidSection reports whether name is one of Sections.
func ValidSection(name string) bool {
	for _, s := range Sections {
		if s == name {
			return true
		}
	}
	return false
}

type view struct {
	latches  map[string]*Latch
	lastSeen time.Time
}

// Tracker holds one latch per page view and section.
type Tracker struct {
	mu    sync.Mutex
	views map[string]*view
	ttl   time.Duration
	now   func() time.Time
}

// NewTracker returns a tracker that forgets page views idle for longer than ttl.
func NewTracker(ttl time.Duration) *Tracker {
	return &Tracker{
		views: make(map[string]*view),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Register starts tracking a page view rendered by the server.
func (t *Tracker) Register(viewID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.views[viewID]; ok {
		v.lastSeen = t.now()
		return
	}
	t.views[viewID] = &view{
		latches:  make(map[string]*Latch, len(Sections)),
		lastSeen: t.now(),
	}
}

// Play flips the latch for section within a registered page view and reports
// whether the animation should run now.
func (t *Tracker) Play(viewID, section string) (bool, error) {
	if !ValidSection(section) {
		return false, fmt.Errorf("%w: %q", domain.ErrUnknownSection, section)
	}

	t.mu.Lock()
	v, ok := t.views[viewID]
	if !ok {
		t.mu.Unlock()
		return false, fmt.Errorf("%w: %s", ErrUnknownView, viewID)
	}
	v.lastSeen = t.now()
	l, ok := v.latches[section]
	if !ok {
		l = &Latch{}
		v.latches[section] = l
	}
	t.mu.Unlock()

	return l.Play(), nil
}

// Played reports whether section already played within the page view.
func (t *Tracker) Played(viewID, section string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.views[viewID]
	if !ok {
		return false
	}
	l, ok := v.latches[section]
	return ok && l.Played()
}

// Len returns the number of tracked page views.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.views)
}

// Sweep drops page views idle for longer than the TTL and returns how many
// were removed.
func (t *Tracker) Sweep() int {
	cutoff := t.now().Add(-t.ttl)
	t.mu.Lock()
	defer t.mu.Unlock()
	removed := 0
	for id, v := range t.views {
		if v.lastSeen.Before(cutoff) {
			delete(t.views, id)
			removed++
		}
	}
	return removed
}

// Run sweeps periodically until ctx is cancelled.
func (t *Tracker) Run(ctx context.Context) error {
	interval := t.ttl / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := t.Sweep(); n > 0 {
				slog.Debug("Swept idle page views", "count", n)
			}
		}
	}
}
