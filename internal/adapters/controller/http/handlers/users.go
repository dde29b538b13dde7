package handlers

import (
	"net/http"

	"github.com/agreetime/agreetime-backend/internal/adapters/controller/http/middlewares"
	"github.com/agreetime/agreetime-backend/internal/domain/service"
)

type userResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	FirstName string  `json:"first_name,omitempty"`
	LastName  string  `json:"last_name,omitempty"`
	Email     string  `json:"email,omitempty"`
	FamilyID  *string `json:"family_id,omitempty"`
}

// Me handles GET /me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), middlewares.UserID(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, userResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		FamilyID:  user.FamilyID,
	})
}

type settingsResponse struct {
	NotificationsEnabled bool   `json:"notifications_enabled"`
	Language             string `json:"language"`
}

// MySettings handles GET /me/settings.
func (h *Handler) MySettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.users.GetSettings(r.Context(), middlewares.UserID(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, settingsResponse{
		NotificationsEnabled: settings.NotificationsEnabled,
		Language:             settings.Language,
	})
}

type updateSettingsRequest struct {
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	Language             *string `json:"language"`
}

// UpdateMySettings handles PATCH /me/settings.
func (h *Handler) UpdateMySettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	settings, err := h.users.UpdateSettings(r.Context(), middlewares.UserID(r.Context()), service.UpdateSettingsInput{
		NotificationsEnabled: req.NotificationsEnabled,
		Language:             req.Language,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, settingsResponse{
		NotificationsEnabled: settings.NotificationsEnabled,
		Language:             settings.Language,
	})
}
