// Package token encodes and decodes the signed session tokens exchanged with
// clients. It is a pure codec: signature and structural checks happen here,
// expiry and subject checks belong to the session manager.
package token

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// KindAccess marks short-lived tokens that authorize individual calls.
	KindAccess = "access"
	// KindRefresh marks long-lived tokens used solely to mint access tokens.
	KindRefresh = "refresh"
)

// ErrInvalidToken indicates a malformed, unsigned or mis-signed token.
var ErrInvalidToken = errors.New("token: invalid token")

// Claims carries the session claims embedded in every issued token. Subject
// is the username; UserID is the stable account identifier.
type Claims struct {
	UserID string `json:"uid"`
	Kind   string `json:"token_kind"`
	jwt.RegisteredClaims
}

// Codec signs and verifies tokens with a single HS256 key.
type Codec struct {
	key []byte
}

// NewCodec builds a codec around the given signing secret.
func NewCodec(secret string) (*Codec, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	return &Codec{key: []byte(secret)}, nil
}

// Encode signs the claims. Output is deterministic for identical claims and key.
func (c *Codec) Encode(claims Claims) (string, error) {
	if strings.TrimSpace(claims.Subject) == "" {
		return "", errors.New("token: subject is required")
	}
	if claims.Kind != KindAccess && claims.Kind != KindRefresh {
		return "", errors.New("token: unknown token kind")
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// Decode verifies the signature and structure of raw and returns its claims.
// Expired tokens decode successfully: wall-clock enforcement is not the
// codec's job, so claim validation is disabled on the parser.
func (c *Codec) Decode(raw string) (Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Claims{}, ErrInvalidToken
	}
	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return c.key, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return Claims{}, ErrInvalidToken
	}
	if claims.Kind != KindAccess && claims.Kind != KindRefresh {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
