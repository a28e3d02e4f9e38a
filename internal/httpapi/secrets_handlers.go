package httpapi

import (
	"net/http"
	"sync/atomic"

	"talentbridge-engine/internal/config"
	"talentbridge-engine/internal/secrets"
)

type SecretsHandler struct {
	CfgVal *atomic.Value // stores config.Config
}

type setBackendTokenReq struct {
	Token string `json:"token"`
}

func (h SecretsHandler) account() string {
	cfg := h.CfgVal.Load().(config.Config)
	return secrets.BackendTokenAccount(cfg.Backend.BaseURL, cfg.Session.CompanyID)
}

func (h SecretsHandler) SetBackendToken(w http.ResponseWriter, r *http.Request) {
	var req setBackendTokenReq
	if err := decodeStrict(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if err := secrets.SetBackendToken(h.account(), req.Token); err != nil {
		WriteError(w, r, http.StatusBadRequest, "store_failed", "failed to store token: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h SecretsHandler) DeleteBackendToken(w http.ResponseWriter, r *http.Request) {
	if err := secrets.DeleteBackendToken(h.account()); err != nil {
		WriteError(w, r, http.StatusBadRequest, "delete_failed", "failed to delete token: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
