package httpapi

import (
	"net/http"
	"strings"

	"veteranapp.org/internal/audit"
	"veteranapp.org/internal/authz"
	"veteranapp.org/internal/roster"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

type loginResponse struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message"`
	User         userPayload `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
}

type forgotPasswordRequest struct {
	Username string `json:"username"`
}

type switchOrganizationRequest struct {
	OrganizationID string `json:"organizationId"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := a.directory.FindByUsername(r.Context(), username)
	if err != nil {
		// Same response for unknown user and wrong password.
		writeError(w, r, http.StatusUnauthorized, "invalid username or password")
		return
	}
	if !a.verifier.Verify(user, req.Password) {
		writeError(w, r, http.StatusUnauthorized, "invalid username or password")
		return
	}

	access, err := a.sessions.IssueAccessToken(user.ID, user.Username)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "token generation failed")
		return
	}
	refresh, err := a.sessions.IssueRefreshToken(user.ID, user.Username)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "token generation failed")
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.login", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Message: "Login successful",
		User: userPayload{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Name:     user.Name,
		},
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

func (a *API) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req refreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.RefreshToken) == "" {
		writeError(w, r, http.StatusBadRequest, "refreshToken is required")
		return
	}

	access, err := a.sessions.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, r, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.refresh", nil)

	writeJSON(w, http.StatusOK, refreshResponse{
		Success:     true,
		AccessToken: access,
	})
}

func (a *API) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req forgotPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Username) == "" {
		writeError(w, r, http.StatusBadRequest, "username is required")
		return
	}

	// Same response whether or not the account exists.
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "If the account exists, password reset instructions have been sent",
	})
}

func (a *API) handleOrganizations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	principal, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	orgs, err := a.store.OrganizationsByIDs(r.Context(), principal.OrganizationIDs)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	if orgs == nil {
		orgs = []roster.Organization{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"organizations": orgs,
	})
}

func (a *API) handleSwitchOrganization(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req switchOrganizationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	orgID := strings.TrimSpace(req.OrganizationID)
	if orgID == "" {
		writeError(w, r, http.StatusBadRequest, "organizationId is required")
		return
	}

	principal, _, ok := a.authorizeScope(w, r, orgID)
	if !ok {
		return
	}

	org, err := a.store.OrganizationByID(r.Context(), orgID)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.switch_organization", map[string]any{
		"user_id":         principal.ID,
		"organization_id": orgID,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"success":               true,
		"currentOrganizationId": org.ID,
		"organization":          org,
	})
}
