package httpapi

import (
	"net/http"
	"testing"
)

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "case insensitive scheme", header: "bearer abc", want: "abc"},
		{name: "padded", header: "  Bearer abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "scheme only", header: "Bearer ", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractBearerToken(tc.header)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestProtectedEndpointsRejectAnonymous(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{"/members", "/news", "/hosting/current", "/soccer/current", "/auth/organizations"} {
		resp := api.get(path, nil, nil)
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s, got %d", path, resp.StatusCode)
		}
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	api := newTestAPI(t)

	resp := api.get("/members", nil, scopedHeaders("not-a-token", "org1"))
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestRefreshTokenNotAcceptedAsBearer(t *testing.T) {
	api := newTestAPI(t)
	login := api.login("johndoe", "password123")

	resp := api.get("/members", nil, scopedHeaders(login.RefreshToken, "org1"))
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for refresh token as bearer, got %d", resp.StatusCode)
	}
}

func TestPublicPaths(t *testing.T) {
	if !isPublicPath("/auth/login") || !isPublicPath("/healthz") {
		t.Fatal("expected login and healthz to be public")
	}
	if isPublicPath("/members") || isPublicPath("/auth/organizations") {
		t.Fatal("expected scoped endpoints to require auth")
	}
}
