package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyRoundTrip(t *testing.T) {
	id := Identity{AccountID: "u_1", Name: "Ada"}
	tok, err := Sign("secret", id, time.Minute)
	require.NoError(t, err)

	got, err := NewVerifier("secret").Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, err := Sign("secret", Identity{AccountID: "u_1", Name: "Ada"}, time.Minute)
	require.NoError(t, err)

	_, err = NewVerifier("other").Verify(tok)
	assert.Error(t, err)
}

func TestVerifyExpired(t *testing.T) {
	tok, err := Sign("secret", Identity{AccountID: "u_1", Name: "Ada"}, -time.Minute)
	require.NoError(t, err)

	_, err = NewVerifier("secret").Verify(tok)
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := NewVerifier("secret").Verify("not-a-token")
	assert.Error(t, err)
}
