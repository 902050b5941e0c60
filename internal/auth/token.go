// Package auth verifies the externally issued bearer session tokens
// presented at the websocket handshake and on the HTTP API. Account
// storage and credential checks live behind the issuing service; this
// package only decodes {accountId, name}.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pragmr/vorko/internal/domain"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified caller behind a token.
type Identity struct {
	AccountID domain.AccountID
	Name      string
}

type Claims struct {
	AccountID string `json:"accountId"`
	Name      string `json:"name"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, err
	}
	if !token.Valid || claims.AccountID == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{
		AccountID: domain.AccountID(claims.AccountID),
		Name:      claims.Name,
	}, nil
}

// Sign mints a session token. The production issuer is the external
// account service; this exists for tests and local tooling.
func Sign(secret string, id Identity, ttl time.Duration) (string, error) {
	claims := &Claims{
		AccountID: string(id.AccountID),
		Name:      id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
