package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/core"
	"github.com/pragmr/vorko/internal/domain"
)

type sessionEntry struct {
	Session *domain.Session
	Conn    core.SignalConnection
}

// Registry is the authoritative table of live sessions and their
// transports. No business rules; callers own validation.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]*sessionEntry
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[domain.SessionID]*sessionEntry),
	}
}

// Put inserts or replaces the session bound to sess.ID.
func (r *Registry) Put(sess *domain.Session, conn core.SignalConnection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sess.ID] = &sessionEntry{Session: sess, Conn: conn}
	log.Info().Str("module", "app.registry").Str("sid", string(sess.ID)).Str("room", string(sess.Room)).Msg("session bound")
}

// Snapshot returns a copy of the session, safe to read without the lock.
func (r *Registry) Snapshot(sid domain.SessionID) (domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[sid]
	if !ok {
		return domain.Session{}, false
	}
	return *e.Session, true
}

func (r *Registry) Conn(sid domain.SessionID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[sid]
	if !ok {
		return nil, false
	}
	return e.Conn, true
}

func (r *Registry) Remove(sid domain.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("session removed")
}

// Update applies fn to the session under the write lock and returns the
// resulting snapshot.
func (r *Registry) Update(sid domain.SessionID, fn func(*domain.Session)) (domain.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sid]
	if !ok {
		return domain.Session{}, false
	}
	fn(e.Session)
	return *e.Session, true
}

// ListByRoom returns snapshots of every session currently in the room.
func (r *Registry) ListByRoom(room domain.RoomName) []domain.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Session, 0, len(r.sessions))
	for _, e := range r.sessions {
		if e.Session.Room == room {
			out = append(out, *e.Session)
		}
	}
	return out
}

// SessionsByAccount returns the session ids of every live connection
// held by one account (multi-tab).
func (r *Registry) SessionsByAccount(account domain.AccountID) []domain.SessionID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.SessionID
	for sid, e := range r.sessions {
		if e.Session.AccountID == account {
			out = append(out, sid)
		}
	}
	return out
}
