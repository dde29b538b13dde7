package entity

import "time"

// Attachment stores a reference to a file attached to an event. The file
// itself lives in external storage; FileKey is the storage key.
type Attachment struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UploadedAt time.Time `gorm:"autoCreateTime"`
	EventID    string    `gorm:"not null;type:uuid;index"`
	UploaderID *string   `gorm:"type:uuid"`
	FileKey    string    `gorm:"not null"`
}
