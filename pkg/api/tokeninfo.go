package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims holds the claims decoded from a minted access token.
// Decoding is unverified: the server holds the signing secret, so this is a
// diagnostic view of what the token asserts, not proof of its validity.
type TokenClaims struct {
	Session   string        // session the token is scoped to
	Role      Role          // granted role
	Data      string        // opaque caller-supplied data
	ExpiresAt time.Time     // zero if the token carries no expiry
	Raw       jwt.MapClaims // all claims as decoded
}

// ParseTokenClaims decodes a minted token's claims without verifying its
// signature. Returns ErrInvalidToken if the value is not a decodable JWT.
func ParseTokenClaims(token string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, ErrInvalidToken.MsgErr("decoding token", err)
	}

	info := &TokenClaims{Raw: claims}
	if v, ok := claims["session"].(string); ok {
		info.Session = v
	}
	if v, ok := claims["role"].(string); ok {
		info.Role = Role(v)
	}
	if v, ok := claims["data"].(string); ok {
		info.Data = v
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
