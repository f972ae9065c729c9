package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"veteranapp.org/internal/authz"
	"veteranapp.org/internal/hosting"
	"veteranapp.org/internal/identity"
	"veteranapp.org/internal/obs"
	"veteranapp.org/internal/roster"
	"veteranapp.org/internal/session"
)

// ReadyProbe reports readiness (pings the database when one is configured).
type ReadyProbe struct {
	DB *sql.DB
}

func (rp ReadyProbe) Check(ctx context.Context) error {
	if rp.DB == nil {
		return nil
	}
	return rp.DB.PingContext(ctx)
}

// API is the HTTP layer.
type API struct {
	mux        *http.ServeMux
	sessions   *session.Manager
	gate       *authz.Gate
	directory  identity.Directory
	verifier   identity.Verifier
	store      roster.Store
	scheduler  *hosting.Scheduler
	readyProbe ReadyProbe
	version    string

	rateBurst  int
	ratePerSec int
}

func New(
	rp ReadyProbe,
	version string,
	sessions *session.Manager,
	gate *authz.Gate,
	directory identity.Directory,
	verifier identity.Verifier,
	store roster.Store,
	scheduler *hosting.Scheduler,
) *API {
	a := &API{
		mux:        http.NewServeMux(),
		sessions:   sessions,
		gate:       gate,
		directory:  directory,
		verifier:   verifier,
		store:      store,
		scheduler:  scheduler,
		readyProbe: rp,
		version:    version,
		rateBurst:  40,
		ratePerSec: 20,
	}

	// health/ready/info
	a.mux.HandleFunc("/healthz", a.Healthz)
	a.mux.HandleFunc("/readyz", a.Ready)

	// Prometheus metrics
	a.mux.Handle("/metrics", obs.Handler())

	// auth
	a.mux.HandleFunc("/auth/login", a.handleLogin)
	a.mux.HandleFunc("/auth/refresh", a.handleRefresh)
	a.mux.HandleFunc("/auth/forgot-password", a.handleForgotPassword)
	a.mux.HandleFunc("/auth/organizations", a.handleOrganizations)
	a.mux.HandleFunc("/auth/switch-organization", a.handleSwitchOrganization)

	// roster
	a.mux.HandleFunc("/members", a.handleMembersCollection)
	a.mux.HandleFunc("/members/", a.handleMemberResource)
	a.mux.HandleFunc("/meetings", a.handleMeetingsCollection)
	a.mux.HandleFunc("/meetings/", a.handleMeetingResource)
	a.mux.HandleFunc("/news", a.handleNews)
	a.mux.HandleFunc("/officials", a.handleOfficials)
	a.mux.HandleFunc("/constitution", a.handleConstitution)

	// hosting
	a.mux.HandleFunc("/hosting/current", a.handleHostingCurrent)
	a.mux.HandleFunc("/hosting/next", a.handleHostingNext)
	a.mux.HandleFunc("/hosting/mark-payment", a.handleMarkPayment)

	// soccer
	a.mux.HandleFunc("/soccer/current", a.handleSoccerCurrent)
	a.mux.HandleFunc("/soccer/history", a.handleSoccerHistory)

	a.mux.HandleFunc("/", a.Banner)

	return a
}

// Handler returns the fully wrapped http.Handler for the server.
func (a *API) Handler() http.Handler {
	var h http.Handler = a.mux
	h = a.withAuth(h)
	h = RateLimit(h, a.rateBurst, a.ratePerSec)
	h = MaxBodyBytes(h, 1<<20)
	h = CORS(h)
	h = SecurityHeaders(h)
	h = LoggingJSON(h)
	h = RequestID(h)
	return obs.Instrument(h)
}

// --- Handlers ---

func (a *API) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "veteranapp-api",
		"version": a.version,
	})
}

func (a *API) Ready(w http.ResponseWriter, r *http.Request) {
	if err := a.readyProbe.Check(r.Context()); err != nil {
		obs.SetReady(false)
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "not_ready",
			"error":  err.Error(),
		})
		return
	}
	obs.SetReady(true)
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ready",
	})
}

func (a *API) Banner(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    "veteranapp-api",
		"time":    time.Now().UTC().Format(time.RFC3339),
		"version": a.version,
	})
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	payload := map[string]any{
		"error": msg,
	}
	if rid := RequestIDFromContext(r.Context()); rid != "" {
		payload["request_id"] = rid
	}
	writeJSON(w, code, payload)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	reader := http.MaxBytesReader(w, r.Body, 1<<20)
	defer reader.Close()
	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return errors.New("unexpected data after JSON body")
		}
		return err
	}
	return nil
}

func handleStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, roster.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "resource not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
