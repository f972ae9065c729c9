package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"veteranapp.org/internal/authz"
	"veteranapp.org/internal/hosting"
	"veteranapp.org/internal/identity"
	"veteranapp.org/internal/roster"
	"veteranapp.org/internal/session"
	"veteranapp.org/internal/token"
)

type apiClient struct {
	baseURL string
	client  *http.Client
	t       *testing.T
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()

	codec, err := token.NewCodec("test-secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	directory := identity.NewMemoryDirectory(identity.SeedUsers())
	sessions, err := session.NewManager(codec, directory)
	if err != nil {
		t.Fatalf("new session manager: %v", err)
	}
	gate, err := authz.NewGate(sessions, directory)
	if err != nil {
		t.Fatalf("new gate: %v", err)
	}
	store := roster.NewMemorySeeded()
	scheduler := hosting.NewScheduler(store, hosting.DefaultContribution)

	api := New(ReadyProbe{}, "test", sessions, gate, directory, identity.PlaintextVerifier{}, store, scheduler)
	api.rateBurst = 100
	api.ratePerSec = 100

	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	return &apiClient{
		baseURL: srv.URL,
		client:  srv.Client(),
		t:       t,
	}
}

func (c *apiClient) post(path string, body any, headers map[string]string) *http.Response {
	c.t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal body: %v", err)
		}
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.t.Fatalf("do request: %v", err)
	}
	return resp
}

func (c *apiClient) get(path string, params url.Values, headers map[string]string) *http.Response {
	c.t.Helper()
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		c.t.Fatalf("parse url: %v", err)
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.t.Fatalf("get request: %v", err)
	}
	return resp
}

func (c *apiClient) login(username, password string) loginResponse {
	c.t.Helper()
	resp := c.post("/auth/login", map[string]any{
		"username": username,
		"password": password,
	}, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.t.Fatalf("unexpected login status: %d", resp.StatusCode)
	}
	var payload loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.t.Fatalf("decode login response: %v", err)
	}
	if payload.AccessToken == "" || payload.RefreshToken == "" {
		c.t.Fatalf("empty tokens issued")
	}
	return payload
}

func scopedHeaders(token, orgID string) map[string]string {
	return map[string]string{
		"Authorization":     "Bearer " + token,
		"X-Organization-ID": orgID,
	}
}

func decode[T any](t *testing.T, r *http.Response) T {
	t.Helper()
	defer r.Body.Close()
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestLoginAndScopedRosterFlow(t *testing.T) {
	api := newTestAPI(t)
	login := api.login("johndoe", "password123")

	if login.User.ID != "2" || login.User.Username != "johndoe" {
		t.Fatalf("unexpected user payload: %+v", login.User)
	}

	// Members scoped to org1.
	resp := api.get("/members", nil, scopedHeaders(login.AccessToken, "org1"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	members := decode[[]map[string]any](t, resp)
	if len(members) != 10 {
		t.Fatalf("expected 10 org1 members, got %d", len(members))
	}
	for _, m := range members {
		if m["organizationId"] != "org1" {
			t.Fatalf("member leaked from another organization: %v", m)
		}
	}

	// Single member lookup.
	resp = api.get("/members/1", nil, scopedHeaders(login.AccessToken, "org1"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	member := decode[map[string]any](t, resp)
	if member["id"] != "1" {
		t.Fatalf("unexpected member id: %v", member["id"])
	}

	// org1 member is invisible under org2 scope.
	resp = api.get("/members/1", nil, scopedHeaders(login.AccessToken, "org2"))
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for cross-scope member, got %d", resp.StatusCode)
	}
}

func TestScopeHeaderRequired(t *testing.T) {
	api := newTestAPI(t)
	login := api.login("johndoe", "password123")

	resp := api.get("/members", nil, map[string]string{
		"Authorization": "Bearer " + login.AccessToken,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("expected error message")
	}
}

func TestScopeDeniedForNonMemberOrganization(t *testing.T) {
	api := newTestAPI(t)
	login := api.login("johndoe", "password123")

	// johndoe belongs to org1 and org2 but not org3.
	resp := api.get("/members", nil, scopedHeaders(login.AccessToken, "org3"))
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	api := newTestAPI(t)

	resp := api.post("/auth/login", map[string]any{
		"username": "johndoe",
		"password": "wrong",
	}, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", resp.StatusCode)
	}

	resp = api.post("/auth/login", map[string]any{
		"username": "nobody",
		"password": "password123",
	}, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", resp.StatusCode)
	}

	resp = api.post("/auth/login", map[string]any{
		"username": "",
		"password": "",
	}, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", resp.StatusCode)
	}
}

func TestRefreshFlow(t *testing.T) {
	api := newTestAPI(t)
	login := api.login("johndoe", "password123")

	resp := api.post("/auth/refresh", map[string]any{
		"refreshToken": login.RefreshToken,
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected refresh status: %d", resp.StatusCode)
	}
	refreshed := decode[refreshResponse](t, resp)
	if refreshed.AccessToken == "" {
		t.Fatalf("expected new access token")
	}

	// The refreshed access token grants scoped access.
	resp = api.get("/news", nil, scopedHeaders(refreshed.AccessToken, "org1"))
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("refreshed token rejected: %d", resp.StatusCode)
	}

	// An access token is not accepted as a refresh token.
	resp = api.post("/auth/refresh", map[string]any{
		"refreshToken": login.AccessToken,
	}, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for access token in refresh, got %d", resp.StatusCode)
	}
}

func TestOrganizationsAndSwitch(t *testing.T) {
	api := newTestAPI(t)
	login := api.login("johndoe", "password123")
	authHeaders := map[string]string{"Authorization": "Bearer " + login.AccessToken}

	resp := api.get("/auth/organizations", nil, authHeaders)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	payload := decode[map[string][]roster.Organization](t, resp)
	if len(payload["organizations"]) != 2 {
		t.Fatalf("expected 2 organizations, got %d", len(payload["organizations"]))
	}

	resp = api.post("/auth/switch-organization", map[string]any{
		"organizationId": "org2",
	}, authHeaders)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected switch status: %d", resp.StatusCode)
	}
	switched := decode[map[string]any](t, resp)
	if switched["currentOrganizationId"] != "org2" {
		t.Fatalf("unexpected current organization: %v", switched["currentOrganizationId"])
	}

	resp = api.post("/auth/switch-organization", map[string]any{
		"organizationId": "org3",
	}, authHeaders)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 switching to non-member org, got %d", resp.StatusCode)
	}
}

func TestHostingScheduleEndpoints(t *testing.T) {
	api := newTestAPI(t)
	login := api.login("johndoe", "password123")
	headers := scopedHeaders(login.AccessToken, "org1")

	resp := api.get("/hosting/current", nil, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	current := decode[map[string]any](t, resp)
	if current["id"] != "schedule-current" {
		t.Fatalf("unexpected schedule id: %v", current["id"])
	}
	hosts, ok := current["hosts"].([]any)
	if !ok {
		t.Fatalf("hosts missing from schedule: %v", current)
	}
	if len(hosts) > 3 {
		t.Fatalf("expected at most 3 hosts, got %d", len(hosts))
	}
	if current["contributionAmount"].(float64) != hosting.DefaultContribution {
		t.Fatalf("unexpected contribution amount: %v", current["contributionAmount"])
	}

	resp = api.get("/hosting/next", nil, headers)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	next := decode[map[string]any](t, resp)
	if next["id"] != "schedule-next" {
		t.Fatalf("unexpected schedule id: %v", next["id"])
	}
	if next["startDate"] == current["startDate"] {
		t.Fatalf("next period must not start with the current one")
	}
}

func TestMarkPayment(t *testing.T) {
	api := newTestAPI(t)
	login := api.login("johndoe", "password123")
	authHeaders := map[string]string{"Authorization": "Bearer " + login.AccessToken}

	body := map[string]any{
		"memberId":       "4",
		"organizationId": "org1",
		"isPaid":         true,
	}
	resp := api.post("/hosting/mark-payment", body, authHeaders)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	payload := decode[map[string]any](t, resp)
	member := payload["member"].(map[string]any)
	if member["isPaid"] != true {
		t.Fatalf("payment flag not updated: %v", member)
	}

	// Repeating the update is harmless.
	resp = api.post("/hosting/mark-payment", body, authHeaders)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status on repeat: %d", resp.StatusCode)
	}

	// Unknown member.
	resp = api.post("/hosting/mark-payment", map[string]any{
		"memberId":       "999",
		"organizationId": "org1",
		"isPaid":         true,
	}, authHeaders)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown member, got %d", resp.StatusCode)
	}

	// Missing isPaid.
	resp = api.post("/hosting/mark-payment", map[string]any{
		"memberId":       "4",
		"organizationId": "org1",
	}, authHeaders)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing isPaid, got %d", resp.StatusCode)
	}

	// Organization outside the caller's memberships.
	resp = api.post("/hosting/mark-payment", map[string]any{
		"memberId":       "13",
		"organizationId": "org3",
		"isPaid":         true,
	}, authHeaders)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign organization, got %d", resp.StatusCode)
	}
}

func TestSoccerEndpoints(t *testing.T) {
	api := newTestAPI(t)
	login := api.login("johndoe", "password123")
	authHeaders := map[string]string{"Authorization": "Bearer " + login.AccessToken}

	resp := api.get("/soccer/current", nil, authHeaders)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	match := decode[map[string]any](t, resp)
	if match["homeTeam"] == "" {
		t.Fatalf("expected match payload, got %v", match)
	}

	resp = api.get("/soccer/history", nil, authHeaders)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	history := decode[[]map[string]any](t, resp)
	if len(history) == 0 {
		t.Fatalf("expected at least one match in history")
	}
}

func TestHealthEndpointsArePublic(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{"/healthz", "/readyz", "/"} {
		resp := api.get(path, nil, nil)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, resp.StatusCode)
		}
	}
}

func TestForgotPasswordDoesNotRevealAccounts(t *testing.T) {
	api := newTestAPI(t)

	var bodies []string
	for _, username := range []string{"johndoe", "nobody-at-all"} {
		resp := api.post("/auth/forgot-password", map[string]any{"username": username}, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("unexpected status: %d", resp.StatusCode)
		}
		payload := decode[map[string]any](t, resp)
		bodies = append(bodies, payload["message"].(string))
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("responses must be indistinguishable: %q vs %q", bodies[0], bodies[1])
	}
}
