package handlers

import (
	"net/http"

	"github.com/agreetime/agreetime-backend/internal/adapters/controller/http/middlewares"
	"github.com/agreetime/agreetime-backend/internal/domain/service"
)

type decideRequest struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

type decideResponse struct {
	Status string `json:"status"`
}

// Decide handles POST /events/{id}/approve.
func (h *Handler) Decide(w http.ResponseWriter, r *http.Request) {
	var req decideRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	status, err := h.approvals.Decide(r.Context(), r.PathValue("id"), middlewares.UserID(r.Context()), service.Decision(req.Decision), req.Reason)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, decideResponse{Status: string(status)})
}

// MyApprovalRequests handles GET /me/approval-requests.
func (h *Handler) MyApprovalRequests(w http.ResponseWriter, r *http.Request) {
	events, err := h.approvals.PendingForUser(r.Context(), middlewares.UserID(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newEventListResponse(events))
}
