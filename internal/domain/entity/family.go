package entity

import "time"

// Family is the sharing scope for a calendar. Every event belongs to
// exactly one family and only members of that family can see it.
type Family struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	Name      string `gorm:"not null"`
}
