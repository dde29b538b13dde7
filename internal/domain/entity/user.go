package entity

import "time"

type User struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string `gorm:"not null;uniqueIndex"`
	FirstName string
	LastName  string
	Email     string
	FamilyID  *string `gorm:"type:uuid"`
	Family    *Family
}

// InFamily reports whether the user is a member of the given family.
// A user without a family cannot create or view family events.
func (u *User) InFamily(familyID string) bool {
	return u.FamilyID != nil && *u.FamilyID == familyID
}
