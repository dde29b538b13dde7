package handlers

import (
	"net/http"
	"time"

	"github.com/agreetime/agreetime-backend/internal/adapters/controller/http/middlewares"
)

type attachmentResponse struct {
	ID         string    `json:"id"`
	UploaderID *string   `json:"uploader_id,omitempty"`
	FileKey    string    `json:"file_key"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ListAttachments handles GET /events/{id}/attachments.
func (h *Handler) ListAttachments(w http.ResponseWriter, r *http.Request) {
	attachments, err := h.attachments.GetByEventID(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]attachmentResponse, 0, len(attachments))
	for _, attachment := range attachments {
		resp = append(resp, attachmentResponse{
			ID:         attachment.ID,
			UploaderID: attachment.UploaderID,
			FileKey:    attachment.FileKey,
			UploadedAt: attachment.UploadedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type createAttachmentRequest struct {
	FileKey string `json:"file_key"`
}

// CreateAttachment handles POST /events/{id}/attachments.
func (h *Handler) CreateAttachment(w http.ResponseWriter, r *http.Request) {
	var req createAttachmentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	attachment, err := h.attachments.Create(r.Context(), r.PathValue("id"), middlewares.UserID(r.Context()), req.FileKey)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, attachmentResponse{
		ID:         attachment.ID,
		UploaderID: attachment.UploaderID,
		FileKey:    attachment.FileKey,
		UploadedAt: attachment.UploadedAt,
	})
}

// DeleteAttachment handles DELETE /attachments/{id}.
func (h *Handler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	if err := h.attachments.Delete(r.Context(), r.PathValue("id"), middlewares.UserID(r.Context())); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}
