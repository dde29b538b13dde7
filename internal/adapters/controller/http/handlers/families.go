package handlers

import (
	"net/http"

	"github.com/agreetime/agreetime-backend/internal/domain/entity"
)

type familyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type memberResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func newMemberResponse(user *entity.User) memberResponse {
	return memberResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

// GetFamily handles GET /families/{id}.
func (h *Handler) GetFamily(w http.ResponseWriter, r *http.Request) {
	family, err := h.families.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, familyResponse{ID: family.ID, Name: family.Name})
}

// ListFamilyMembers handles GET /families/{id}/members.
func (h *Handler) ListFamilyMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.families.GetMembers(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]memberResponse, 0, len(members))
	for i := range members {
		resp = append(resp, newMemberResponse(&members[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}
