package httpapi

import (
	"net/http"

	"veteranapp.org/internal/roster"
)

func (a *API) handleSoccerCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	match, err := a.store.CurrentMatch(r.Context())
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, match)
}

func (a *API) handleSoccerHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	matches, err := a.store.MatchHistory(r.Context())
	if err != nil {
		handleStoreError(w, r, err)
		return
	}
	if matches == nil {
		matches = []roster.SoccerMatch{}
	}
	writeJSON(w, http.StatusOK, matches)
}
