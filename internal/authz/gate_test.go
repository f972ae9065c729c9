package authz

import (
	"context"
	"errors"
	"testing"
	"time"

	"veteranapp.org/internal/identity"
	"veteranapp.org/internal/session"
	"veteranapp.org/internal/token"
)

type fixture struct {
	gate     *Gate
	sessions *session.Manager
	clock    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	codec, err := token.NewCodec("test-secret")
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	clock := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	dir := identity.NewMemoryDirectory(identity.SeedUsers())
	sessions, err := session.NewManager(codec, dir, session.WithClock(func() time.Time { return clock }))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	gate, err := NewGate(sessions, dir)
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}
	return &fixture{gate: gate, sessions: sessions, clock: clock}
}

func TestAuthenticateResolvesPrincipal(t *testing.T) {
	f := newFixture(t)
	access, err := f.sessions.IssueAccessToken("2", "johndoe")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	user, err := f.gate.Authenticate(context.Background(), access)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.ID != "2" || user.Username != "johndoe" {
		t.Fatalf("unexpected principal: %+v", user)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	f := newFixture(t)

	refresh, err := f.sessions.IssueRefreshToken("2", "johndoe")
	if err != nil {
		t.Fatalf("IssueRefreshToken: %v", err)
	}
	ghost, err := f.sessions.IssueAccessToken("99", "ghost")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	cases := map[string]string{
		"empty":            "",
		"garbage":          "not.a.token",
		"refresh kind":     refresh,
		"unknown subject":  ghost,
	}
	for name, bearer := range cases {
		if _, err := f.gate.Authenticate(context.Background(), bearer); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("%s: expected ErrUnauthenticated, got %v", name, err)
		}
	}
}

func TestAuthorizeScopeMembership(t *testing.T) {
	f := newFixture(t)
	// johndoe belongs to org1 and org2, not org3.
	access, err := f.sessions.IssueAccessToken("2", "johndoe")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	for _, org := range []string{"org1", "org2"} {
		user, scope, err := f.gate.Authorize(context.Background(), access, org)
		if err != nil {
			t.Fatalf("Authorize(%s): %v", org, err)
		}
		if scope != org || user.Username != "johndoe" {
			t.Fatalf("Authorize(%s): got scope=%s user=%s", org, scope, user.Username)
		}
	}

	if _, _, err := f.gate.Authorize(context.Background(), access, "org3"); !errors.Is(err, ErrForbiddenScope) {
		t.Fatalf("expected ErrForbiddenScope for org3, got %v", err)
	}
	if _, _, err := f.gate.Authorize(context.Background(), access, ""); !errors.Is(err, ErrForbiddenScope) {
		t.Fatalf("expected ErrForbiddenScope for empty scope, got %v", err)
	}
}

func TestAuthorizeBadCredentialBeatsScope(t *testing.T) {
	f := newFixture(t)
	if _, _, err := f.gate.Authorize(context.Background(), "garbage", "org1"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestPrincipalContextRoundTrip(t *testing.T) {
	user := identity.User{ID: "2", Username: "johndoe"}
	ctx := ContextWithPrincipal(context.Background(), user)
	got, ok := PrincipalFromContext(ctx)
	if !ok || got.ID != "2" {
		t.Fatalf("principal not recovered: %+v ok=%v", got, ok)
	}
	if _, ok := PrincipalFromContext(context.Background()); ok {
		t.Fatal("unexpected principal in empty context")
	}

	ctx = ContextWithToken(ctx, "raw-token")
	tok, ok := TokenFromContext(ctx)
	if !ok || tok != "raw-token" {
		t.Fatalf("token not recovered: %q ok=%v", tok, ok)
	}
}
