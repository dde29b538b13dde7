package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/agreetime/agreetime-backend/internal/adapters/logger"
	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
	"github.com/agreetime/agreetime-backend/internal/domain/service"
)

type Handler struct {
	logger *logger.Logger

	events        *service.EventService
	approvals     *service.ApprovalService
	notifications *service.NotificationService
	comments      *service.CommentService
	attachments   *service.AttachmentService
	families      *service.FamilyService
	users         *service.UserService
}

func New(
	logger *logger.Logger,
	events *service.EventService,
	approvals *service.ApprovalService,
	notifications *service.NotificationService,
	comments *service.CommentService,
	attachments *service.AttachmentService,
	families *service.FamilyService,
	users *service.UserService,
) *Handler {
	return &Handler{
		logger: logger,

		events:        events,
		approvals:     approvals,
		notifications: notifications,
		comments:      comments,
		attachments:   attachments,
		families:      families,
		users:         users,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Errorf("failed to encode response: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errorz.IsValidation(err):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, errorz.NotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, errorz.Forbidden), errors.Is(err, errorz.NotAnApprover):
		h.writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, errorz.AlreadyDecided):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		h.logger.Errorf("internal error: %v", err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errorz.Validation("invalid request body")
	}
	return nil
}
