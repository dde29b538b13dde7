package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
	"github.com/agreetime/agreetime-backend/internal/domain/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventApproverStorage struct {
	db *gorm.DB
}

func NewEventApproverStorage(db *gorm.DB) *EventApproverStorage {
	return &EventApproverStorage{
		db: db,
	}
}

func (s *EventApproverStorage) GetByEventID(ctx context.Context, eventID string) ([]entity.EventApprover, error) {
	var approvers []entity.EventApprover
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&approvers).Error
	return approvers, err
}

// Decide records one approver's decision and recomputes the event status
// from the full approver set. The event row is locked for the duration of
// the transaction so concurrent decisions on the same event serialize and
// the approver scan always sees a consistent snapshot. Returns the updated
// approver row, the event, and whether the event status changed.
func (s *EventApproverStorage) Decide(ctx context.Context, eventID, approverID string, status entity.ApproverStatus, reason string, at time.Time) (*entity.EventApprover, *entity.Event, bool, error) {
	var (
		approver entity.EventApprover
		event    entity.Event
		changed  bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", eventID).
			First(&event).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.NotFound
		}
		if err != nil {
			return err
		}

		err = tx.Where("event_id = ? AND approver_id = ?", eventID, approverID).First(&approver).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.NotAnApprover
		}
		if err != nil {
			return err
		}

		if err = approver.Decide(status, reason, at); err != nil {
			return err
		}
		if err = tx.Save(&approver).Error; err != nil {
			return err
		}

		var approvers []entity.EventApprover
		if err = tx.Where("event_id = ?", eventID).Find(&approvers).Error; err != nil {
			return err
		}

		// Cancelled and deleted events never transition out, a late
		// approval on a cancelled event only updates the approver row.
		next := entity.ResolveEventStatus(approvers)
		if next != event.Status && !event.IsTerminal() {
			event.Status = next
			changed = true
			return tx.Model(&entity.Event{}).Where("id = ?", event.ID).Update("status", next).Error
		}
		return nil
	})
	if err != nil {
		return nil, nil, false, err
	}
	return &approver, &event, changed, nil
}

// ExpireEvent marks every still-pending approver row of the event as
// expired and cancels the event. Runs under the same event row lock as
// Decide so a sweep and a decision cannot interleave.
func (s *EventApproverStorage) ExpireEvent(ctx context.Context, eventID string, at time.Time) (*entity.Event, int, error) {
	var (
		event   entity.Event
		expired int
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", eventID).
			First(&event).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.NotFound
		}
		if err != nil {
			return err
		}
		if event.IsTerminal() {
			return nil
		}

		var approvers []entity.EventApprover
		if err = tx.Where("event_id = ?", eventID).Find(&approvers).Error; err != nil {
			return err
		}
		for i := range approvers {
			if !approvers[i].Expire(at) {
				continue
			}
			if err = tx.Save(&approvers[i]).Error; err != nil {
				return err
			}
			expired++
		}
		if expired == 0 {
			return nil
		}

		event.Status = entity.EventStatusCancelled
		return tx.Model(&entity.Event{}).Where("id = ?", event.ID).Update("status", event.Status).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return &event, expired, nil
}
