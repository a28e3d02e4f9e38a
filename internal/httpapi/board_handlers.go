package httpapi

import (
	"errors"
	"net/http"

	"talentbridge-engine/internal/board"
	"talentbridge-engine/internal/domain"
)

type BoardHandler struct {
	Board *board.Board
}

// Requests serves the joined request board. The first call triggers
// aggregation; a load already in flight from another caller shows up as
// state=LOADING.
func (h BoardHandler) Requests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Board.Snapshot(r.Context()))
}

type openOfferReq struct {
	StudentID string `json:"studentId"`
}

func (h BoardHandler) OpenOffer(w http.ResponseWriter, r *http.Request) {
	var req openOfferReq
	if err := decodeStrict(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.StudentID == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_student", "studentId is required")
		return
	}
	if err := h.Board.OpenOffer(req.StudentID); err != nil {
		writeBoardError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}

func (h BoardHandler) CancelOffer(w http.ResponseWriter, r *http.Request) {
	if err := h.Board.CancelOffer(); err != nil {
		writeBoardError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}

func (h BoardHandler) SubmitOffer(w http.ResponseWriter, r *http.Request) {
	var details domain.JobOfferDetails
	if err := decodeStrict(r, &details); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	res, err := h.Board.SubmitOffer(r.Context(), details)
	if err != nil {
		writeBoardError(w, r, err)
		return
	}
	writeJSON(w, res)
}

func writeBoardError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, board.ErrBoardNotReady):
		WriteError(w, r, http.StatusConflict, "board_not_ready", err.Error())
	case errors.Is(err, board.ErrOfferInProgress):
		WriteError(w, r, http.StatusConflict, "offer_in_progress", err.Error())
	case errors.Is(err, board.ErrNoActiveOffer):
		WriteError(w, r, http.StatusConflict, "no_active_offer", err.Error())
	case errors.Is(err, board.ErrAlreadyInvited):
		WriteError(w, r, http.StatusConflict, "already_invited", err.Error())
	case errors.Is(err, board.ErrUnknownStudent):
		WriteError(w, r, http.StatusNotFound, "unknown_student", err.Error())
	case errors.Is(err, board.ErrCompanyUnavailable):
		WriteError(w, r, http.StatusBadGateway, "company_unavailable", err.Error())
	default:
		// submission transport failure; the student is marked regardless
		WriteError(w, r, http.StatusBadGateway, "submit_failed", err.Error())
	}
}
