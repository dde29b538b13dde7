package entity

import "time"

type NotificationType string

const (
	NotificationTypeEventCreated    NotificationType = "EVENT_CREATED"
	NotificationTypeApprovalRequest NotificationType = "APPROVAL_REQUEST"
	NotificationTypeApprovalResult  NotificationType = "APPROVAL_RESULT"
	NotificationTypeEventCancelled  NotificationType = "EVENT_CANCELLED"
)

// Notification represents a message delivered to a user as a side effect
// of an event state transition. Only the read flag ever changes after
// creation, and only by the recipient.
type Notification struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time
	RecipientID string           `gorm:"not null;type:uuid;index"`
	Recipient   User             `gorm:"foreignKey:RecipientID"`
	EventID     *string          `gorm:"type:uuid"`
	Type        NotificationType `gorm:"not null"`
	Message     string
	IsRead      bool `gorm:"not null;default:false"`
}
