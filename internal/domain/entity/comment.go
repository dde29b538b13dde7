package entity

import "time"

type Comment struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	EventID   string `gorm:"not null;type:uuid;index"`
	AuthorID  string `gorm:"not null;type:uuid"`
	Author    User   `gorm:"foreignKey:AuthorID"`
	Content   string `gorm:"not null"`
}
