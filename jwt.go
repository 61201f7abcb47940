package uploadpost

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenInfo is the locally decoded content of a JWT.
type TokenInfo struct {
	Claims    map[string]any
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry before now.
func (t *TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

// InspectJWT decodes token without verifying its signature, which only the
// API can do. Use ValidateJWT for an authoritative answer.
func InspectJWT(token string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, &Error{Kind: KindDecode, Message: fmt.Sprintf("parse jwt: %v", err), Err: err}
	}

	return &TokenInfo{
		Claims:    claims,
		IssuedAt:  numericDate(claims["iat"]),
		ExpiresAt: numericDate(claims["exp"]),
	}, nil
}

func numericDate(v any) time.Time {
	var seconds float64
	switch val := v.(type) {
	case float64:
		seconds = val
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return time.Time{}
		}
		seconds = f
	default:
		return time.Time{}
	}
	return time.Unix(int64(seconds), 0).UTC()
}
