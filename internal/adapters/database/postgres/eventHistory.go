package postgres

import (
	"context"

	"github.com/agreetime/agreetime-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type EventHistoryStorage struct {
	db *gorm.DB
}

func NewEventHistoryStorage(db *gorm.DB) *EventHistoryStorage {
	return &EventHistoryStorage{
		db: db,
	}
}

func (s *EventHistoryStorage) Create(ctx context.Context, record *entity.EventHistory) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *EventHistoryStorage) GetByEventID(ctx context.Context, eventID string) ([]entity.EventHistory, error) {
	var records []entity.EventHistory
	err := s.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("occurred_at").
		Find(&records).Error
	return records, err
}
