package handlers

import (
	"net/http"
	"time"

	"github.com/agreetime/agreetime-backend/internal/adapters/controller/http/middlewares"
	"github.com/agreetime/agreetime-backend/internal/domain/entity"
	"github.com/agreetime/agreetime-backend/internal/domain/service"
)

type participantResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
}

type approverResponse struct {
	ID              string     `json:"id"`
	ApproverID      string     `json:"approver_id"`
	Status          string     `json:"status"`
	DecisionTime    *time.Time `json:"decision_time,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	FamilyID     string                `json:"family_id"`
	CreatorID    *string               `json:"creator_id,omitempty"`
	Title        string                `json:"title"`
	Description  string                `json:"description,omitempty"`
	Location     string                `json:"location,omitempty"`
	StartTime    time.Time             `json:"start_time"`
	EndTime      time.Time             `json:"end_time"`
	Status       string                `json:"status"`
	Participants []participantResponse `json:"participants,omitempty"`
	Approvers    []approverResponse    `json:"approvers,omitempty"`
}

func newEventResponse(event *entity.Event) eventResponse {
	resp := eventResponse{
		ID:          event.ID,
		FamilyID:    event.FamilyID,
		CreatorID:   event.CreatorID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Status:      string(event.Status),
	}
	for _, participant := range event.Participants {
		resp.Participants = append(resp.Participants, participantResponse{
			ID:     participant.ID,
			UserID: participant.UserID,
		})
	}
	for _, approver := range event.Approvers {
		resp.Approvers = append(resp.Approvers, approverResponse{
			ID:              approver.ID,
			ApproverID:      approver.ApproverID,
			Status:          string(approver.Status),
			DecisionTime:    approver.DecisionTime,
			RejectionReason: approver.RejectionReason,
		})
	}
	return resp
}

func newEventListResponse(events []entity.Event) []eventResponse {
	resp := make([]eventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, newEventResponse(&events[i]))
	}
	return resp
}

// ListFamilyEvents handles GET /families/{id}/events.
func (h *Handler) ListFamilyEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.GetByFamilyID(r.Context(), r.PathValue("id"), middlewares.UserID(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newEventListResponse(events))
}

type createEventRequest struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	ParticipantIDs []string  `json:"participant_ids"`
	ApproverIDs    []string  `json:"approver_ids"`
}

// CreateFamilyEvent handles POST /families/{id}/events.
func (h *Handler) CreateFamilyEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	event, err := h.events.Create(r.Context(), r.PathValue("id"), middlewares.UserID(r.Context()), service.CreateEventInput{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		ParticipantIDs: req.ParticipantIDs,
		ApproverIDs:    req.ApproverIDs,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newEventResponse(event))
}

// GetEvent handles GET /events/{id}.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.Get(r.Context(), r.PathValue("id"), middlewares.UserID(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newEventResponse(event))
}

type updateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
}

// UpdateEvent handles PATCH /events/{id}.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req updateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	event, err := h.events.Update(r.Context(), r.PathValue("id"), middlewares.UserID(r.Context()), service.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newEventResponse(event))
}

// DeleteEvent handles DELETE /events/{id}.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.events.Delete(r.Context(), r.PathValue("id"), middlewares.UserID(r.Context())); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}

type historyResponse struct {
	ID         string    `json:"id"`
	ActorID    *string   `json:"actor_id,omitempty"`
	Action     string    `json:"action"`
	Details    string    `json:"details,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventHistory handles GET /events/{id}/history.
func (h *Handler) EventHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.events.History(r.Context(), r.PathValue("id"), middlewares.UserID(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]historyResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, historyResponse{
			ID:         record.ID,
			ActorID:    record.ActorID,
			Action:     record.Action,
			Details:    record.Details,
			OccurredAt: record.OccurredAt,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}
