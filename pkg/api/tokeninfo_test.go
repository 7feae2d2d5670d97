package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("server-side-secret"))
	require.NoError(t, err)
	return signed
}

func TestParseTokenClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed := mintTestToken(t, jwt.MapClaims{
		"session": "ses_ABC",
		"role":    "MODERATOR",
		"data":    "user=alice",
		"exp":     exp.Unix(),
	})

	info, err := ParseTokenClaims(signed)
	require.NoError(t, err)
	assert.Equal(t, "ses_ABC", info.Session)
	assert.Equal(t, RoleModerator, info.Role)
	assert.Equal(t, "user=alice", info.Data)
	assert.Equal(t, exp.Unix(), info.ExpiresAt.Unix())
}

func TestParseTokenClaimsNoExpiry(t *testing.T) {
	signed := mintTestToken(t, jwt.MapClaims{"session": "ses_ABC"})

	info, err := ParseTokenClaims(signed)
	require.NoError(t, err)
	assert.Equal(t, "ses_ABC", info.Session)
	assert.True(t, info.ExpiresAt.IsZero())
}

func TestParseTokenClaimsInvalid(t *testing.T) {
	_, err := ParseTokenClaims("tok_not_a_jwt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
