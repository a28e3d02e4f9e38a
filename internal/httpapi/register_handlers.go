package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"talentbridge-engine/internal/directory"
	"talentbridge-engine/internal/gateway"
)

// Registrar is the slice of the gateway the registration boundary needs.
type Registrar interface {
	Register(ctx context.Context, email, password, universityName string) error
}

type RegisterHandler struct {
	Gateway   Registrar
	Directory *directory.Fetcher
	Log       *logrus.Entry
}

type registerReq struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	UniversityName string `json:"universityName"`
}

type registerResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Register proxies the registration form to the backend. Failures surface the
// server-provided message when there is one, a generic fallback otherwise.
func (h RegisterHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := decodeStrict(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" || strings.TrimSpace(req.UniversityName) == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_fields", "email, password and universityName are required")
		return
	}

	if err := h.Gateway.Register(r.Context(), req.Email, req.Password, req.UniversityName); err != nil {
		h.Log.WithError(err).Warn("registration failed")
		msg := "Registration failed."
		status := http.StatusBadGateway
		if re, ok := gateway.AsRemote(err); ok {
			if re.Message != "" {
				msg = re.Message
			}
			status = re.Status
		}
		WriteJSON(w, status, registerResp{Success: false, Message: msg})
		return
	}

	writeJSON(w, registerResp{Success: true, Message: "User registered successfully"})
}

// Universities fills the registration form's dropdown. Directory trouble is
// logged and yields an empty list; the form still renders.
func (h RegisterHandler) Universities(w http.ResponseWriter, r *http.Request) {
	list, err := h.Directory.Fetch(r.Context())
	if err != nil {
		h.Log.WithError(err).Warn("university directory fetch failed")
		list = []directory.University{}
	}
	writeJSON(w, list)
}
