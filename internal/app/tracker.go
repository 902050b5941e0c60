package app

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/domain"
)

// Tracker records which sessions currently publish one media kind and
// in which room. One shared implementation instantiated per kind
// (screen, audio, video).
type Tracker struct {
	kind domain.MediaKind

	mu   sync.RWMutex
	pubs map[domain.SessionID]domain.Publication
}

func NewTracker(kind domain.MediaKind) *Tracker {
	return &Tracker{
		kind: kind,
		pubs: make(map[domain.SessionID]domain.Publication),
	}
}

func (t *Tracker) Kind() domain.MediaKind { return t.kind }

// Start upserts the publication for sid. A restart without an
// intervening stop overwrites the existing entry; replaced reports it.
func (t *Tracker) Start(sid domain.SessionID, room domain.RoomName) (replaced bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, replaced = t.pubs[sid]
	t.pubs[sid] = domain.Publication{
		SessionID: sid,
		Room:      room,
		Kind:      t.kind,
		StartedAt: time.Now(),
	}
	log.Info().Str("module", "app.tracker").Str("kind", string(t.kind)).Str("sid", string(sid)).Str("room", string(room)).Bool("replaced", replaced).Msg("publication started")
	return replaced
}

// Stop removes the publication if present; silent no-op otherwise.
func (t *Tracker) Stop(sid domain.SessionID) (domain.Publication, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pub, ok := t.pubs[sid]
	if !ok {
		return domain.Publication{}, false
	}
	delete(t.pubs, sid)
	log.Info().Str("module", "app.tracker").Str("kind", string(t.kind)).Str("sid", string(sid)).Msg("publication stopped")
	return pub, true
}

func (t *Tracker) Get(sid domain.SessionID) (domain.Publication, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	pub, ok := t.pubs[sid]
	return pub, ok
}

// SetRoom moves a live publication to a new room (room transition
// replay); returns false when sid holds no publication of this kind.
func (t *Tracker) SetRoom(sid domain.SessionID, room domain.RoomName) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	pub, ok := t.pubs[sid]
	if !ok {
		return false
	}
	pub.Room = room
	pub.StartedAt = time.Now()
	t.pubs[sid] = pub
	return true
}

// ActiveInRoom lists the sessions currently publishing in the room.
func (t *Tracker) ActiveInRoom(room domain.RoomName) []domain.SessionID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]domain.SessionID, 0, len(t.pubs))
	for sid, pub := range t.pubs {
		if pub.Room == room {
			out = append(out, sid)
		}
	}
	return out
}
