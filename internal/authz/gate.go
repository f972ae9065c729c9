// Package authz resolves bearer credentials to authenticated principals and
// enforces organization scoping. It is the single place where low-level token
// failures become caller-facing outcomes.
package authz

import (
	"context"
	"errors"
	"strings"

	"veteranapp.org/internal/identity"
	"veteranapp.org/internal/session"
)

var (
	// ErrUnauthenticated covers every credential failure: missing or
	// malformed token, wrong kind, expiry, unknown subject. Callers get no
	// detail that would distinguish the cases.
	ErrUnauthenticated = errors.New("authz: unauthenticated")
	// ErrForbiddenScope indicates a valid credential for a disallowed
	// organization.
	ErrForbiddenScope = errors.New("authz: organization scope forbidden")
)

// Gate validates inbound credentials against the session manager and the
// user directory. Resolution is pure: no side effects, no stored state.
type Gate struct {
	sessions  *session.Manager
	directory identity.Directory
}

// NewGate wires a gate to its collaborators.
func NewGate(sessions *session.Manager, directory identity.Directory) (*Gate, error) {
	if sessions == nil || directory == nil {
		return nil, errors.New("authz: session manager and directory are required")
	}
	return &Gate{sessions: sessions, directory: directory}, nil
}

// Authenticate resolves a bearer access token to its principal. Refresh
// tokens are never accepted here.
func (g *Gate) Authenticate(ctx context.Context, bearer string) (identity.User, error) {
	claims, err := g.sessions.DecodeAccess(bearer)
	if err != nil {
		return identity.User{}, ErrUnauthenticated
	}
	user, err := g.directory.FindByUsername(ctx, claims.Subject)
	if err != nil {
		return identity.User{}, ErrUnauthenticated
	}
	return user, nil
}

// Authorize authenticates the bearer and checks the explicitly requested
// organization scope against the principal's memberships. Scope is never
// implicit: an empty orgID is refused.
func (g *Gate) Authorize(ctx context.Context, bearer, orgID string) (identity.User, string, error) {
	user, err := g.Authenticate(ctx, bearer)
	if err != nil {
		return identity.User{}, "", err
	}
	orgID = strings.TrimSpace(orgID)
	if orgID == "" || !user.MemberOf(orgID) {
		return identity.User{}, "", ErrForbiddenScope
	}
	return user, orgID, nil
}
