// Package gateway validates room-name grants and requests short-lived
// access tokens from the external media-transport gateway (LiveKit).
// The gateway routes and mixes media on its own; this process only
// decides who may enter which of its rooms.
package gateway

import (
	"errors"
	"strings"
	"time"

	lkauth "github.com/livekit/protocol/auth"
	"github.com/rs/zerolog/log"

	"github.com/pragmr/vorko/internal/apperr"
	"github.com/pragmr/vorko/internal/auth"
	"github.com/pragmr/vorko/internal/core"
	"github.com/pragmr/vorko/internal/domain"
)

const (
	pairMarker      = "pair"
	proximityMarker = "proximity"
	sep             = "__"
)

// Directory is the registry view the issuer validates against.
type Directory interface {
	Snapshot(sid domain.SessionID) (domain.Session, bool)
	SessionsByAccount(account domain.AccountID) []domain.SessionID
}

type Config struct {
	URL       string
	APIKey    string
	APISecret string
	TokenTTL  time.Duration
}

// Grant is a validated, time-boxed credential plus where to present it.
type Grant struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type signFunc func(cfg Config, room, identity, name string) (string, error)

type Issuer struct {
	cfg    Config
	dir    Directory
	radius float64
	sign   signFunc
}

func NewIssuer(cfg Config, dir Directory, radius float64) *Issuer {
	if radius <= 0 {
		radius = core.DefaultProximityRadius
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 15 * time.Minute
	}
	return &Issuer{cfg: cfg, dir: dir, radius: radius, sign: livekitSign}
}

// Issue validates the room name against the caller's live sessions and
// requests a publish+subscribe token scoped to that room.
//
// Recognized grammars:
//
//	{officeRoom}__pair__{sidA}__{sidB}   two-party proximity room
//	{officeRoom}__proximity__{mediaType} open proximity room
//
// Any other shape passes through without proximity validation.
func (i *Issuer) Issue(caller auth.Identity, room, identity, name string) (Grant, *apperr.Error) {
	if room == "" {
		return Grant{}, apperr.Validation("room is required")
	}
	if err := i.validate(caller, room); err != nil {
		return Grant{}, err
	}

	if identity == "" {
		identity = string(caller.AccountID)
	}
	if name == "" {
		name = caller.Name
	}
	if name == "" {
		name = "User"
	}

	if i.cfg.APIKey == "" || i.cfg.APISecret == "" {
		return Grant{}, apperr.Gateway("gateway unavailable", errors.New("missing gateway credentials"))
	}

	token, err := i.sign(i.cfg, room, identity, name)
	if err != nil {
		log.Error().Err(err).Str("module", "gateway").Str("room", room).Msg("token signing failed")
		return Grant{}, apperr.Gateway("failed to issue token", err)
	}

	log.Info().Str("module", "gateway").Str("room", room).Str("identity", identity).Msg("grant issued")
	return Grant{Token: token, URL: i.cfg.URL}, nil
}

func (i *Issuer) validate(caller auth.Identity, room string) *apperr.Error {
	parts := strings.Split(room, sep)

	switch {
	case len(parts) >= 3 && parts[1] == pairMarker:
		return i.validatePair(caller, parts)
	case len(parts) >= 2 && parts[1] == proximityMarker:
		return i.validateProximity(caller, domain.RoomName(parts[0]))
	}
	// General rooms carry no proximity semantics.
	return nil
}

func (i *Issuer) validatePair(caller auth.Identity, parts []string) *apperr.Error {
	office := domain.RoomName(parts[0])
	sids := parts[2:]
	if len(sids) < 2 || sids[0] == "" || sids[1] == "" {
		return apperr.Validation("invalid pair room format")
	}
	sidA := domain.SessionID(sids[0])
	sidB := domain.SessionID(sids[1])

	callerSIDs := i.dir.SessionsByAccount(caller.AccountID)
	if !containsSID(callerSIDs, sidA) && !containsSID(callerSIDs, sidB) {
		return apperr.Forbidden("requester not a member of pair")
	}

	a, okA := i.dir.Snapshot(sidA)
	b, okB := i.dir.Snapshot(sidB)
	if !okA || !okB {
		return apperr.NotFound("pair participant not online")
	}
	if a.Room != office || b.Room != office {
		return apperr.Forbidden("participants not in same office room")
	}
	if !core.Eligible(a.Position, b.Position, i.radius) {
		return apperr.Forbidden("participants not within proximity radius")
	}
	return nil
}

func (i *Issuer) validateProximity(caller auth.Identity, office domain.RoomName) *apperr.Error {
	sids := i.dir.SessionsByAccount(caller.AccountID)
	if len(sids) == 0 {
		return apperr.NotFound("user not online")
	}
	sess, ok := i.dir.Snapshot(sids[0])
	if !ok || sess.Room != office {
		return apperr.Forbidden("user not in correct office room")
	}
	return nil
}

func containsSID(list []domain.SessionID, sid domain.SessionID) bool {
	for _, s := range list {
		if s == sid {
			return true
		}
	}
	return false
}

func livekitSign(cfg Config, room, identity, name string) (string, error) {
	canPublish := true
	canSubscribe := true
	canPublishData := true
	at := lkauth.NewAccessToken(cfg.APIKey, cfg.APISecret)
	at.SetVideoGrant(&lkauth.VideoGrant{
		RoomJoin:       true,
		Room:           room,
		CanPublish:     &canPublish,
		CanSubscribe:   &canSubscribe,
		CanPublishData: &canPublishData,
	}).
		SetIdentity(identity).
		SetName(name).
		SetValidFor(cfg.TokenTTL)
	return at.ToJWT()
}
