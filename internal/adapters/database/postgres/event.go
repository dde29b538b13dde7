package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
	"github.com/agreetime/agreetime-backend/internal/domain/entity"
	"gorm.io/gorm"
)

type EventStorage struct {
	db *gorm.DB
}

func NewEventStorage(db *gorm.DB) *EventStorage {
	return &EventStorage{
		db: db,
	}
}

// Create persists the event together with its participant and approver
// rows in a single transaction. Either the full set commits or none does.
func (s *EventStorage) Create(ctx context.Context, event *entity.Event, participantIDs, approverIDs []string) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		for _, userID := range participantIDs {
			participant := entity.EventParticipant{EventID: event.ID, UserID: userID}
			if err := tx.Create(&participant).Error; err != nil {
				return err
			}
		}
		for _, userID := range approverIDs {
			approver := entity.EventApprover{
				EventID:    event.ID,
				ApproverID: userID,
				Status:     entity.ApproverStatusPending,
			}
			if err := tx.Create(&approver).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return event, err
}

// Get is a function that gets an event from the database by id, with its
// participant and approver rows preloaded.
func (s *EventStorage) Get(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	err := s.db.WithContext(ctx).
		Preload("Participants").
		Preload("Approvers").
		Where("id = ?", id).
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.NotFound
	}
	return &event, err
}

// GetByFamilyID is a function that gets all events of a family.
func (s *EventStorage) GetByFamilyID(ctx context.Context, familyID string) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("start_time").
		Find(&events).Error
	return events, err
}

// Update is a function that updates an event in the database.
func (s *EventStorage) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Save(&event).Error
	return event, err
}

// Delete removes the event row and everything hanging off it. Used for
// hard deletion of non-confirmed events.
func (s *EventStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		related := []interface{}{
			&entity.EventParticipant{},
			&entity.EventApprover{},
			&entity.Comment{},
			&entity.Attachment{},
			&entity.EventHistory{},
			&entity.Notification{},
		}
		for _, model := range related {
			if err := tx.Where("event_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&entity.Event{}).Error
	})
}

// GetPendingByApprover returns events still waiting on a decision from
// the given user.
func (s *EventStorage) GetPendingByApprover(ctx context.Context, approverID string) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Joins("JOIN event_approvers ON event_approvers.event_id = events.id").
		Where("event_approvers.approver_id = ? AND event_approvers.status = ?", approverID, entity.ApproverStatusPending).
		Find(&events).Error
	return events, err
}

// GetExpirable returns pending events whose start time has passed, i.e.
// events whose approval window is over.
func (s *EventStorage) GetExpirable(ctx context.Context, before time.Time) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Where("status = ? AND start_time < ?", entity.EventStatusPending, before).
		Find(&events).Error
	return events, err
}
