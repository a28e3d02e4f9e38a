package httpapi

import (
	"net/http"
	"strconv"

	"talentbridge-engine/internal/store"
)

type InvitesHandler struct {
	Store *store.DB
}

// List serves the invite audit log, newest first.
func (h InvitesHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, _ = strconv.Atoi(s)
	}

	attempts, err := h.Store.ListAttempts(r.Context(), limit)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}
	writeJSON(w, attempts)
}
