// Package session issues and validates access/refresh token pairs. Tokens are
// pure claims over the wall clock: there is no revocation set, so the only
// mitigation for a leaked token is its TTL.
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"veteranapp.org/internal/identity"
	"veteranapp.org/internal/token"
)

const (
	defaultIssuer     = "veteranapp"
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

var (
	// ErrMalformed indicates the token failed structural or signature checks.
	ErrMalformed = errors.New("session: malformed token")
	// ErrExpiredToken indicates the token's validity window has passed.
	ErrExpiredToken = errors.New("session: token expired")
	// ErrInvalidSubject indicates the token belongs to a different user.
	ErrInvalidSubject = errors.New("session: subject mismatch")
	// ErrInvalidToken is the single failure a refresh attempt surfaces.
	ErrInvalidToken = errors.New("session: invalid token")
)

// Manager issues, validates and refreshes session tokens.
type Manager struct {
	codec     *token.Codec
	directory identity.Directory

	now        func() time.Time
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// Option configures Manager behavior.
type Option func(*Manager)

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) Option {
	return func(m *Manager) {
		if fn != nil {
			m.now = fn
		}
	}
}

// WithIssuer overrides the issuer claim.
func WithIssuer(issuer string) Option {
	return func(m *Manager) {
		if s := strings.TrimSpace(issuer); s != "" {
			m.issuer = s
		}
	}
}

// WithAccessTTL configures access token lifetime.
func WithAccessTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.accessTTL = ttl
		}
	}
}

// WithRefreshTTL configures refresh token lifetime.
func WithRefreshTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.refreshTTL = ttl
		}
	}
}

// NewManager constructs a Manager bound to a codec and a user directory.
func NewManager(codec *token.Codec, directory identity.Directory, opts ...Option) (*Manager, error) {
	if codec == nil {
		return nil, errors.New("session: codec is required")
	}
	if directory == nil {
		return nil, errors.New("session: directory is required")
	}
	m := &Manager{
		codec:      codec,
		directory:  directory,
		now:        time.Now,
		issuer:     defaultIssuer,
		accessTTL:  defaultAccessTTL,
		refreshTTL: defaultRefreshTTL,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// IssueAccessToken mints a short-lived token authorizing API calls.
func (m *Manager) IssueAccessToken(userID, username string) (string, error) {
	return m.issue(token.KindAccess, userID, username, m.accessTTL)
}

// IssueRefreshToken mints a long-lived token usable only with Refresh.
func (m *Manager) IssueRefreshToken(userID, username string) (string, error) {
	return m.issue(token.KindRefresh, userID, username, m.refreshTTL)
}

func (m *Manager) issue(kind, userID, username string, ttl time.Duration) (string, error) {
	userID = strings.TrimSpace(userID)
	username = strings.TrimSpace(username)
	if userID == "" || username == "" {
		return "", errors.New("session: userID and username are required")
	}
	now := m.now().UTC()
	return m.codec.Encode(token.Claims{
		UserID: userID,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	})
}

// Validate checks that raw is a live token belonging to expectedUsername.
func (m *Manager) Validate(raw, expectedUsername string) error {
	claims, err := m.decode(raw)
	if err != nil {
		return err
	}
	if m.expired(claims) {
		return ErrExpiredToken
	}
	if claims.Subject != expectedUsername {
		return ErrInvalidSubject
	}
	return nil
}

// Refresh exchanges a live refresh token for a brand-new access token bound
// to the current principal. The refresh token itself is never extended.
func (m *Manager) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := m.decode(refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}
	if claims.Kind != token.KindRefresh {
		return "", ErrInvalidToken
	}
	if m.expired(claims) {
		return "", ErrInvalidToken
	}
	user, err := m.directory.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	return m.IssueAccessToken(user.ID, user.Username)
}

// DecodeAccess returns the claims of a live access-kind token. Any other
// input (refresh kind, expired, mis-signed) fails with ErrInvalidToken.
func (m *Manager) DecodeAccess(raw string) (token.Claims, error) {
	claims, err := m.decode(raw)
	if err != nil {
		return token.Claims{}, ErrInvalidToken
	}
	if claims.Kind != token.KindAccess || m.expired(claims) {
		return token.Claims{}, ErrInvalidToken
	}
	return claims, nil
}

func (m *Manager) decode(raw string) (token.Claims, error) {
	claims, err := m.codec.Decode(raw)
	if err != nil {
		return token.Claims{}, ErrMalformed
	}
	if m.issuer != "" && claims.Issuer != m.issuer {
		return token.Claims{}, ErrMalformed
	}
	return claims, nil
}

func (m *Manager) expired(claims token.Claims) bool {
	return claims.ExpiresAt == nil || m.now().After(claims.ExpiresAt.Time)
}

// AccessTTL reports the configured access token lifetime.
func (m *Manager) AccessTTL() time.Duration { return m.accessTTL }

// RefreshTTL reports the configured refresh token lifetime.
func (m *Manager) RefreshTTL() time.Duration { return m.refreshTTL }
