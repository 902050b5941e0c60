package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pragmr/vorko/internal/domain"
)

func newSession(t *testing.T, sid, account string, room domain.RoomName) *domain.Session {
	t.Helper()
	s, err := domain.NewSession(
		domain.SessionID(sid), domain.AccountID(account), "user-"+sid, "",
		domain.Position{X: 1, Y: 1}, room, domain.PresenceAvailable,
	)
	require.NoError(t, err)
	return s
}

func TestRegistryPutGetRemove(t *testing.T) {
	r := NewRegistry()
	r.Put(newSession(t, "s1", "a1", "lobby"), nil)

	got, ok := r.Snapshot("s1")
	require.True(t, ok)
	assert.Equal(t, domain.RoomName("lobby"), got.Room)
	assert.Equal(t, domain.DefaultAvatar, got.Avatar)

	r.Remove("s1")
	_, ok = r.Snapshot("s1")
	assert.False(t, ok)
}

func TestRegistryListByRoom(t *testing.T) {
	r := NewRegistry()
	r.Put(newSession(t, "s1", "a1", "lobby"), nil)
	r.Put(newSession(t, "s2", "a2", "lobby"), nil)
	r.Put(newSession(t, "s3", "a3", "annex"), nil)

	assert.Len(t, r.ListByRoom("lobby"), 2)
	assert.Len(t, r.ListByRoom("annex"), 1)
	assert.Empty(t, r.ListByRoom("empty"))
}

func TestRegistrySessionsByAccountMultiTab(t *testing.T) {
	r := NewRegistry()
	r.Put(newSession(t, "s1", "a1", "lobby"), nil)
	r.Put(newSession(t, "s2", "a1", "annex"), nil)
	r.Put(newSession(t, "s3", "a2", "lobby"), nil)

	assert.ElementsMatch(t,
		[]domain.SessionID{"s1", "s2"},
		r.SessionsByAccount("a1"))
	assert.Empty(t, r.SessionsByAccount("nobody"))
}

func TestRegistryUpdateReturnsSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Put(newSession(t, "s1", "a1", "lobby"), nil)

	snap, ok := r.Update("s1", func(s *domain.Session) {
		s.Position = domain.Position{X: 9, Y: 9}
		s.Presence = domain.PresenceBusy
	})
	require.True(t, ok)
	assert.Equal(t, domain.Position{X: 9, Y: 9}, snap.Position)
	assert.Equal(t, domain.PresenceBusy, snap.Presence)

	_, ok = r.Update("missing", func(*domain.Session) {})
	assert.False(t, ok)
}
