package service

import (
	"context"
	"strings"

	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
	"github.com/agreetime/agreetime-backend/internal/domain/entity"
)

type AttachmentStorage interface {
	Create(ctx context.Context, attachment *entity.Attachment) (*entity.Attachment, error)
	Get(ctx context.Context, id string) (*entity.Attachment, error)
	GetByEventID(ctx context.Context, eventID string) ([]entity.Attachment, error)
	Delete(ctx context.Context, id string) error
}

// AttachmentService manages attachment metadata. The files themselves
// live in external object storage under FileKey; this service only tracks
// the references.
type AttachmentService struct {
	storage      AttachmentStorage
	eventStorage commentEventStorage
}

func NewAttachmentService(storage AttachmentStorage, eventStorage commentEventStorage) *AttachmentService {
	return &AttachmentService{
		storage:      storage,
		eventStorage: eventStorage,
	}
}

func (s *AttachmentService) Create(ctx context.Context, eventID, uploaderID, fileKey string) (*entity.Attachment, error) {
	if strings.TrimSpace(fileKey) == "" {
		return nil, errorz.Validation("file key required")
	}
	if _, err := s.eventStorage.Get(ctx, eventID); err != nil {
		return nil, err
	}
	return s.storage.Create(ctx, &entity.Attachment{
		EventID:    eventID,
		UploaderID: &uploaderID,
		FileKey:    fileKey,
	})
}

func (s *AttachmentService) GetByEventID(ctx context.Context, eventID string) ([]entity.Attachment, error) {
	return s.storage.GetByEventID(ctx, eventID)
}

// Delete removes an attachment reference. Only the uploader and the
// creator of the event may delete it, mirroring the comment policy.
func (s *AttachmentService) Delete(ctx context.Context, attachmentID, actorID string) error {
	attachment, err := s.storage.Get(ctx, attachmentID)
	if err != nil {
		return err
	}
	event, err := s.eventStorage.Get(ctx, attachment.EventID)
	if err != nil {
		return err
	}
	if !CanDeleteAttachment(actorID, attachment, event) {
		return errorz.Forbidden
	}
	return s.storage.Delete(ctx, attachmentID)
}
