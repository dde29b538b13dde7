package handlers

import (
	"net/http"
	"time"

	"github.com/agreetime/agreetime-backend/internal/adapters/controller/http/middlewares"
)

type notificationResponse struct {
	ID        string    `json:"id"`
	EventID   *string   `json:"event_id,omitempty"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// MyNotifications handles GET /me/notifications.
func (h *Handler) MyNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notifications.GetByRecipient(r.Context(), middlewares.UserID(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]notificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		resp = append(resp, notificationResponse{
			ID:        notification.ID,
			EventID:   notification.EventID,
			Type:      string(notification.Type),
			Message:   notification.Message,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// MarkNotificationRead handles POST /me/notifications/{id}/read.
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.MarkRead(r.Context(), r.PathValue("id"), middlewares.UserID(r.Context())); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}
