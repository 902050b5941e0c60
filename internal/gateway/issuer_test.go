package gateway

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pragmr/vorko/internal/apperr"
	"github.com/pragmr/vorko/internal/auth"
	"github.com/pragmr/vorko/internal/domain"
)

type fakeDirectory struct {
	sessions map[domain.SessionID]domain.Session
}

func (d *fakeDirectory) Snapshot(sid domain.SessionID) (domain.Session, bool) {
	s, ok := d.sessions[sid]
	return s, ok
}

func (d *fakeDirectory) SessionsByAccount(account domain.AccountID) []domain.SessionID {
	var out []domain.SessionID
	for sid, s := range d.sessions {
		if s.AccountID == account {
			out = append(out, sid)
		}
	}
	return out
}

func newTestIssuer(dir Directory) *Issuer {
	i := NewIssuer(Config{
		URL:       "ws://gateway.test",
		APIKey:    "key",
		APISecret: "secret",
		TokenTTL:  time.Minute,
	}, dir, 3)
	i.sign = func(cfg Config, room, identity, name string) (string, error) {
		return "tok-" + room + "-" + identity, nil
	}
	return i
}

func pairDirectory() *fakeDirectory {
	return &fakeDirectory{sessions: map[domain.SessionID]domain.Session{
		"A": {ID: "A", AccountID: "acc-a", Room: "lobby", Position: domain.Position{X: 10, Y: 10}},
		"B": {ID: "B", AccountID: "acc-b", Room: "lobby", Position: domain.Position{X: 12, Y: 11}},
	}}
}

func TestPairRoomSuccess(t *testing.T) {
	i := newTestIssuer(pairDirectory())

	grant, err := i.Issue(auth.Identity{AccountID: "acc-a", Name: "Ada"}, "lobby__pair__A__B", "", "")
	require.Nil(t, err)
	assert.Equal(t, "tok-lobby__pair__A__B-acc-a", grant.Token)
	assert.Equal(t, "ws://gateway.test", grant.URL)
}

func TestPairRoomCallerNotMember(t *testing.T) {
	dir := pairDirectory()
	dir.sessions["C"] = domain.Session{ID: "C", AccountID: "acc-c", Room: "lobby"}
	i := newTestIssuer(dir)

	_, err := i.Issue(auth.Identity{AccountID: "acc-c"}, "lobby__pair__A__B", "", "")
	require.NotNil(t, err)
	assert.Equal(t, apperr.CodeForbidden, err.Code)
	assert.Equal(t, http.StatusForbidden, err.Status)
}

func TestPairRoomParticipantOffline(t *testing.T) {
	dir := pairDirectory()
	delete(dir.sessions, "B")
	i := newTestIssuer(dir)

	_, err := i.Issue(auth.Identity{AccountID: "acc-a"}, "lobby__pair__A__B", "", "")
	require.NotNil(t, err)
	assert.Equal(t, apperr.CodeNotFound, err.Code)
}

func TestPairRoomWrongOffice(t *testing.T) {
	dir := pairDirectory()
	b := dir.sessions["B"]
	b.Room = "annex"
	dir.sessions["B"] = b
	i := newTestIssuer(dir)

	_, err := i.Issue(auth.Identity{AccountID: "acc-a"}, "lobby__pair__A__B", "", "")
	require.NotNil(t, err)
	assert.Equal(t, apperr.CodeForbidden, err.Code)
}

func TestPairRoomDistanceViolation(t *testing.T) {
	dir := pairDirectory()
	b := dir.sessions["B"]
	b.Position = domain.Position{X: 15, Y: 15}
	dir.sessions["B"] = b
	i := newTestIssuer(dir)

	_, err := i.Issue(auth.Identity{AccountID: "acc-a"}, "lobby__pair__A__B", "", "")
	require.NotNil(t, err)
	assert.Equal(t, apperr.CodeForbidden, err.Code)
}

func TestPairRoomMalformed(t *testing.T) {
	i := newTestIssuer(pairDirectory())

	_, err := i.Issue(auth.Identity{AccountID: "acc-a"}, "lobby__pair__A", "", "")
	require.NotNil(t, err)
	assert.Equal(t, apperr.CodeValidation, err.Code)
}

func TestProximityRoomSuccess(t *testing.T) {
	i := newTestIssuer(pairDirectory())

	grant, err := i.Issue(auth.Identity{AccountID: "acc-a"}, "lobby__proximity__audio", "", "")
	require.Nil(t, err)
	assert.NotEmpty(t, grant.Token)
}

func TestProximityRoomCallerOffline(t *testing.T) {
	i := newTestIssuer(&fakeDirectory{sessions: map[domain.SessionID]domain.Session{}})

	_, err := i.Issue(auth.Identity{AccountID: "acc-a"}, "lobby__proximity__audio", "", "")
	require.NotNil(t, err)
	assert.Equal(t, apperr.CodeNotFound, err.Code)
}

func TestProximityRoomWrongRoom(t *testing.T) {
	i := newTestIssuer(pairDirectory())

	_, err := i.Issue(auth.Identity{AccountID: "acc-a"}, "annex__proximity__audio", "", "")
	require.NotNil(t, err)
	assert.Equal(t, apperr.CodeForbidden, err.Code)
}

func TestGeneralRoomPassesThrough(t *testing.T) {
	i := newTestIssuer(&fakeDirectory{sessions: map[domain.SessionID]domain.Session{}})

	grant, err := i.Issue(auth.Identity{AccountID: "acc-a", Name: "Ada"}, "all-hands", "custom-id", "Custom")
	require.Nil(t, err)
	assert.Equal(t, "tok-all-hands-custom-id", grant.Token)
}

func TestEmptyRoomRejected(t *testing.T) {
	i := newTestIssuer(pairDirectory())

	_, err := i.Issue(auth.Identity{AccountID: "acc-a"}, "", "", "")
	require.NotNil(t, err)
	assert.Equal(t, apperr.CodeValidation, err.Code)
}

func TestMissingCredentialsIsGatewayFailure(t *testing.T) {
	i := NewIssuer(Config{URL: "ws://gateway.test"}, pairDirectory(), 3)

	_, err := i.Issue(auth.Identity{AccountID: "acc-a"}, "all-hands", "", "")
	require.NotNil(t, err)
	assert.Equal(t, apperr.CodeGateway, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
}
