package httpapi

import (
	"net/http"
	"strings"

	"veteranapp.org/internal/roster"
)

func (a *API) handleMembersCollection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	_, orgID, ok := a.requireScope(w, r)
	if !ok {
		return
	}
	members, err := a.store.MembersByOrg(r.Context(), orgID)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	if members == nil {
		members = []roster.Member{}
	}
	writeJSON(w, http.StatusOK, members)
}

func (a *API) handleMemberResource(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/members/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	_, orgID, ok := a.requireScope(w, r)
	if !ok {
		return
	}
	member, err := a.store.MemberByID(r.Context(), id, orgID)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (a *API) handleMeetingsCollection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	_, orgID, ok := a.requireScope(w, r)
	if !ok {
		return
	}
	meetings, err := a.store.MeetingsByOrg(r.Context(), orgID)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	if meetings == nil {
		meetings = []roster.Meeting{}
	}
	writeJSON(w, http.StatusOK, meetings)
}

func (a *API) handleMeetingResource(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/meetings/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	_, orgID, ok := a.requireScope(w, r)
	if !ok {
		return
	}
	meeting, err := a.store.MeetingByID(r.Context(), id, orgID)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, meeting)
}

func (a *API) handleNews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	_, orgID, ok := a.requireScope(w, r)
	if !ok {
		return
	}
	items, err := a.store.NewsByOrg(r.Context(), orgID)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	if items == nil {
		items = []roster.News{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *API) handleOfficials(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	_, orgID, ok := a.requireScope(w, r)
	if !ok {
		return
	}
	officials, err := a.store.OfficialsByOrg(r.Context(), orgID)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	if officials == nil {
		officials = []roster.Official{}
	}
	writeJSON(w, http.StatusOK, officials)
}

func (a *API) handleConstitution(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	_, orgID, ok := a.requireScope(w, r)
	if !ok {
		return
	}
	constitution, err := a.store.ConstitutionByOrg(r.Context(), orgID)
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, constitution)
}
