package entity

// EventParticipant links an event to an invited user. The pair is unique
// and the event creator is always present as a participant.
type EventParticipant struct {
	ID      string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EventID string `gorm:"not null;type:uuid;uniqueIndex:idx_event_participant"`
	UserID  string `gorm:"not null;type:uuid;uniqueIndex:idx_event_participant"`
	User    User
}
