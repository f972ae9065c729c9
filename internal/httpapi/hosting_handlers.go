package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"veteranapp.org/internal/audit"
)

type markPaymentRequest struct {
	MemberID       string `json:"memberId"`
	OrganizationID string `json:"organizationId"`
	IsPaid         *bool  `json:"isPaid"`
}

func (a *API) handleHostingCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	_, orgID, ok := a.requireScope(w, r)
	if !ok {
		return
	}
	schedule, err := a.scheduler.Current(r.Context(), orgID)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func (a *API) handleHostingNext(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	_, orgID, ok := a.requireScope(w, r)
	if !ok {
		return
	}
	schedule, err := a.scheduler.Next(r.Context(), orgID)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func (a *API) handleMarkPayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req markPaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	memberID := strings.TrimSpace(req.MemberID)
	orgID := strings.TrimSpace(req.OrganizationID)
	if memberID == "" || orgID == "" || req.IsPaid == nil {
		writeError(w, r, http.StatusBadRequest, "memberId, organizationId and isPaid are required")
		return
	}

	principal, _, ok := a.authorizeScope(w, r, orgID)
	if !ok {
		return
	}

	member, err := a.store.UpdateMemberPaid(r.Context(), memberID, orgID, *req.IsPaid)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}

	_ = audit.LogEvent(r.Context(), "hosting.payment.updated", map[string]any{
		"member_id":       member.ID,
		"organization_id": orgID,
		"is_paid":         strconv.FormatBool(*req.IsPaid),
		"updated_by":      principal.ID,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"member":  member,
	})
}
