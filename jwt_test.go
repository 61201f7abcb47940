package uploadpost

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectJWT(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	expires := issued.Add(48 * time.Hour)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"iat": issued.Unix(),
		"exp": expires.Unix(),
	}).SignedString([]byte("server-secret"))
	require.NoError(t, err)

	info, err := InspectJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Claims["sub"])
	assert.Equal(t, issued, info.IssuedAt)
	assert.Equal(t, expires, info.ExpiresAt)
	assert.False(t, info.Expired(issued.Add(time.Hour)))
	assert.True(t, info.Expired(expires.Add(time.Second)))
}

func TestInspectJWTWithoutExpiry(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "bob"}).SignedString([]byte("k"))
	require.NoError(t, err)

	info, err := InspectJWT(token)
	require.NoError(t, err)
	assert.True(t, info.IssuedAt.IsZero())
	assert.False(t, info.Expired(time.Now()))
}

func TestInspectJWTMalformed(t *testing.T) {
	_, err := InspectJWT("not-a-token")
	requireKind(t, err, KindDecode)
}
