package entity

import "time"

// UserSettings holds per-user preferences. The notifier skips users who
// disabled notifications.
type UserSettings struct {
	ID                   string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt            time.Time
	UserID               string `gorm:"not null;type:uuid;uniqueIndex"`
	NotificationsEnabled bool   `gorm:"not null;default:true"`
	Language             string `gorm:"not null;default:ko"`
}
