package entity

import "time"

type EventStatus string

const (
	EventStatusPending   EventStatus = "PENDING"
	EventStatusConfirmed EventStatus = "CONFIRMED"
	EventStatusCancelled EventStatus = "CANCELLED"
	EventStatusDeleted   EventStatus = "DELETED"
)

type Event struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	FamilyID    string `gorm:"not null;type:uuid;index"`
	Family      Family
	CreatorID   *string `gorm:"type:uuid"`
	Creator     *User
	Title       string `gorm:"not null"`
	Description string
	Location    string
	StartTime   time.Time   `gorm:"not null"`
	EndTime     time.Time   `gorm:"not null"`
	Status      EventStatus `gorm:"not null;default:PENDING"`

	Participants []EventParticipant `gorm:"foreignKey:EventID"`
	Approvers    []EventApprover    `gorm:"foreignKey:EventID"`
}

// IsTerminal reports whether the event can no longer change status.
// Cancelled and deleted events never transition out.
func (e *Event) IsTerminal() bool {
	return e.Status == EventStatusCancelled || e.Status == EventStatusDeleted
}

// ResolveEventStatus derives an event's status from its approver rows.
// A single rejection cancels the event regardless of the other rows;
// confirmation requires every approver to have approved. Anything else
// leaves the event pending.
func ResolveEventStatus(approvers []EventApprover) EventStatus {
	if len(approvers) == 0 {
		return EventStatusConfirmed
	}
	allApproved := true
	for _, approver := range approvers {
		switch approver.Status {
		case ApproverStatusRejected:
			return EventStatusCancelled
		case ApproverStatusApproved:
		default:
			allApproved = false
		}
	}
	if allApproved {
		return EventStatusConfirmed
	}
	return EventStatusPending
}
