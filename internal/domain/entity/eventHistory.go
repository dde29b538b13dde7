package entity

import "time"

const (
	HistoryActionCreated   = "CREATED"
	HistoryActionUpdated   = "UPDATED"
	HistoryActionApproved  = "APPROVED"
	HistoryActionRejected  = "REJECTED"
	HistoryActionExpired   = "EXPIRED"
	HistoryActionCancelled = "CANCELLED"
	HistoryActionDeleted   = "DELETED"
)

// EventHistory is an append-only audit record of changes to an event.
// Rows are never updated or deleted.
type EventHistory struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OccurredAt time.Time `gorm:"autoCreateTime"`
	EventID    string    `gorm:"not null;type:uuid;index"`
	ActorID    *string   `gorm:"type:uuid"`
	Action     string    `gorm:"not null"`
	Details    string
}
