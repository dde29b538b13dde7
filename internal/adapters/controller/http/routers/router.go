package routers

import (
	"net/http"

	"github.com/agreetime/agreetime-backend/internal/adapters/controller/http/handlers"
)

func MainRouter(h *handlers.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /families/{id}", h.GetFamily)
	mux.HandleFunc("GET /families/{id}/members", h.ListFamilyMembers)
	mux.HandleFunc("GET /families/{id}/events", h.ListFamilyEvents)
	mux.HandleFunc("POST /families/{id}/events", h.CreateFamilyEvent)

	mux.HandleFunc("GET /events/{id}", h.GetEvent)
	mux.HandleFunc("PATCH /events/{id}", h.UpdateEvent)
	mux.HandleFunc("DELETE /events/{id}", h.DeleteEvent)
	mux.HandleFunc("POST /events/{id}/approve", h.Decide)
	mux.HandleFunc("GET /events/{id}/history", h.EventHistory)

	mux.HandleFunc("GET /events/{id}/comments", h.ListComments)
	mux.HandleFunc("POST /events/{id}/comments", h.CreateComment)
	mux.HandleFunc("DELETE /comments/{id}", h.DeleteComment)

	mux.HandleFunc("GET /events/{id}/attachments", h.ListAttachments)
	mux.HandleFunc("POST /events/{id}/attachments", h.CreateAttachment)
	mux.HandleFunc("DELETE /attachments/{id}", h.DeleteAttachment)

	mux.HandleFunc("GET /me", h.Me)
	mux.HandleFunc("GET /me/settings", h.MySettings)
	mux.HandleFunc("PATCH /me/settings", h.UpdateMySettings)
	mux.HandleFunc("GET /me/approval-requests", h.MyApprovalRequests)
	mux.HandleFunc("GET /me/notifications", h.MyNotifications)
	mux.HandleFunc("POST /me/notifications/{id}/read", h.MarkNotificationRead)

	return mux
}
