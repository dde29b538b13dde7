package postgres

import (
	"context"
	"errors"

	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
	"github.com/agreetime/agreetime-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type NotificationStorage struct {
	db *gorm.DB
}

func NewNotificationStorage(db *gorm.DB) *NotificationStorage {
	return &NotificationStorage{
		db: db,
	}
}

func (s *NotificationStorage) Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	err := s.db.WithContext(ctx).Create(&notification).Error
	return notification, err
}

func (s *NotificationStorage) GetByRecipient(ctx context.Context, recipientID string) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := s.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkRead flips the read flag. Scoped by recipient so a user can only
// touch their own notifications; anything else looks like NotFound.
func (s *NotificationStorage) MarkRead(ctx context.Context, id, recipientID string) error {
	var notification entity.Notification
	err := s.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		First(&notification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorz.NotFound
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&notification).Update("is_read", true).Error
}
