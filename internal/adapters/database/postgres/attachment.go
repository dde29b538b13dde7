package postgres

import (
	"context"
	"errors"

	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
	"github.com/agreetime/agreetime-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type AttachmentStorage struct {
	db *gorm.DB
}

func NewAttachmentStorage(db *gorm.DB) *AttachmentStorage {
	return &AttachmentStorage{
		db: db,
	}
}

func (s *AttachmentStorage) Create(ctx context.Context, attachment *entity.Attachment) (*entity.Attachment, error) {
	err := s.db.WithContext(ctx).Create(&attachment).Error
	return attachment, err
}

func (s *AttachmentStorage) Get(ctx context.Context, id string) (*entity.Attachment, error) {
	var attachment entity.Attachment
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&attachment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.NotFound
	}
	return &attachment, err
}

func (s *AttachmentStorage) GetByEventID(ctx context.Context, eventID string) ([]entity.Attachment, error) {
	var attachments []entity.Attachment
	err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("uploaded_at").
		Find(&attachments).Error
	return attachments, err
}

func (s *AttachmentStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Attachment{}).Error
}
