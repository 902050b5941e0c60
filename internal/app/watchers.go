package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/domain"
)

// WatcherRegistry tracks, per publisher, which viewer sessions declared
// they are watching. A set exists only while the publisher holds a live
// publication of the watched kind; callers enforce that coupling.
type WatcherRegistry struct {
	mu          sync.RWMutex
	byPublisher map[domain.SessionID]map[domain.SessionID]struct{}
}

func NewWatcherRegistry() *WatcherRegistry {
	return &WatcherRegistry{
		byPublisher: make(map[domain.SessionID]map[domain.SessionID]struct{}),
	}
}

// Ensure creates an empty set for the publisher if none exists.
func (w *WatcherRegistry) Ensure(publisher domain.SessionID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.byPublisher[publisher]; !ok {
		w.byPublisher[publisher] = make(map[domain.SessionID]struct{})
	}
}

// Subscribe adds viewer to the publisher's set; added reports whether
// the set changed. Eligibility checks are the caller's job.
func (w *WatcherRegistry) Subscribe(publisher, viewer domain.SessionID) (added bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	set, ok := w.byPublisher[publisher]
	if !ok {
		set = make(map[domain.SessionID]struct{})
		w.byPublisher[publisher] = set
	}
	if _, ok := set[viewer]; ok {
		return false
	}
	set[viewer] = struct{}{}
	log.Debug().Str("module", "app.watchers").Str("publisher", string(publisher)).Str("viewer", string(viewer)).Msg("watcher added")
	return true
}

func (w *WatcherRegistry) Unsubscribe(publisher, viewer domain.SessionID) (removed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	set, ok := w.byPublisher[publisher]
	if !ok {
		return false
	}
	if _, ok := set[viewer]; !ok {
		return false
	}
	delete(set, viewer)
	return true
}

// Reset empties the publisher's set, keeping it alive (room transition).
func (w *WatcherRegistry) Reset(publisher domain.SessionID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.byPublisher[publisher]; ok {
		w.byPublisher[publisher] = make(map[domain.SessionID]struct{})
	}
}

// Clear removes the publisher's set entirely (publication ended).
func (w *WatcherRegistry) Clear(publisher domain.SessionID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.byPublisher, publisher)
}

func (w *WatcherRegistry) Watchers(publisher domain.SessionID) []domain.SessionID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	set, ok := w.byPublisher[publisher]
	if !ok {
		return nil
	}
	out := make([]domain.SessionID, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return out
}

func (w *WatcherRegistry) Has(publisher domain.SessionID) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.byPublisher[publisher]
	return ok
}

// RemoveViewerEverywhere drops viewer from every set and returns the
// publishers whose sets changed. O(active publishers); publisher counts
// stay small relative to sessions.
func (w *WatcherRegistry) RemoveViewerEverywhere(viewer domain.SessionID) []domain.SessionID {
	w.mu.Lock()
	defer w.mu.Unlock()
	var changed []domain.SessionID
	for publisher, set := range w.byPublisher {
		if _, ok := set[viewer]; ok {
			delete(set, viewer)
			changed = append(changed, publisher)
		}
	}
	return changed
}
