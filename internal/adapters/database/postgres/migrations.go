package postgres

import "github.com/agreetime/agreetime-backend/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.Family{},
	&entity.User{},
	&entity.UserSettings{},
	&entity.Event{},
	&entity.EventParticipant{},
	&entity.EventApprover{},
	&entity.Notification{},
	&entity.Comment{},
	&entity.Attachment{},
	&entity.EventHistory{},
}
