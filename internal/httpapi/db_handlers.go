package httpapi

import (
	"net"
	"net/http"

	"talentbridge-engine/internal/store"
)

type DBHandler struct {
	Store *store.DB
}

// Checkpoint flushes the sqlite WAL of the invite audit log. Local-only: the
// desktop shell calls it before backing the data dir up.
func (h DBHandler) Checkpoint(w http.ResponseWriter, r *http.Request) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host != "127.0.0.1" && host != "::1" && host != "localhost" {
		WriteError(w, r, http.StatusForbidden, "forbidden", "local requests only")
		return
	}

	if _, err := h.Store.Pool.Exec(`PRAGMA wal_checkpoint(FULL);`); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "checkpoint_failed", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
