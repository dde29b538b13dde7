package postgres

import (
	"context"

	"github.com/agreetime/agreetime-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type EventParticipantStorage struct {
	db *gorm.DB
}

func NewEventParticipantStorage(db *gorm.DB) *EventParticipantStorage {
	return &EventParticipantStorage{
		db: db,
	}
}

func (s *EventParticipantStorage) GetByEventID(ctx context.Context, eventID string) ([]entity.EventParticipant, error) {
	var participants []entity.EventParticipant
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&participants).Error
	return participants, err
}

func (s *EventParticipantStorage) CountByEventID(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.EventParticipant{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}
