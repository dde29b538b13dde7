package entity

import (
	"time"

	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
)

type ApproverStatus string

const (
	ApproverStatusPending  ApproverStatus = "PENDING"
	ApproverStatusApproved ApproverStatus = "APPROVED"
	ApproverStatusRejected ApproverStatus = "REJECTED"
	ApproverStatusExpired  ApproverStatus = "EXPIRED"
)

// EventApprover tracks one approver's decision on an event. The pair
// (event, approver) is unique and the set is fixed at event creation.
type EventApprover struct {
	ID              string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EventID         string         `gorm:"not null;type:uuid;uniqueIndex:idx_event_approver"`
	ApproverID      string         `gorm:"not null;type:uuid;uniqueIndex:idx_event_approver"`
	Approver        User           `gorm:"foreignKey:ApproverID"`
	Status          ApproverStatus `gorm:"not null;default:PENDING"`
	DecisionTime    *time.Time
	RejectionReason string
}

// Decide records an approve or reject decision. Approved and rejected are
// terminal; a second decision fails with AlreadyDecided.
func (a *EventApprover) Decide(status ApproverStatus, reason string, at time.Time) error {
	if a.Status != ApproverStatusPending {
		return errorz.AlreadyDecided
	}
	a.Status = status
	a.DecisionTime = &at
	if status == ApproverStatusRejected {
		a.RejectionReason = reason
	}
	return nil
}

// Expire marks a still-pending approver row as expired. It reports whether
// the row changed.
func (a *EventApprover) Expire(at time.Time) bool {
	if a.Status != ApproverStatusPending {
		return false
	}
	a.Status = ApproverStatusExpired
	a.DecisionTime = &at
	return true
}
