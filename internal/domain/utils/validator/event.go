package validator

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/agreetime/agreetime-backend/internal/domain/common/errorz"
)

func EventTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errorz.Validation("title required")
	}
	if utf8.RuneCountInString(title) > 200 {
		return errorz.Validation("title must be at most 200 characters")
	}
	return nil
}

func EventLocation(location string) error {
	if utf8.RuneCountInString(location) > 255 {
		return errorz.Validation("location must be at most 255 characters")
	}
	return nil
}

// EventTimes checks that the event does not end before it starts. Equal
// start and end instants are allowed.
func EventTimes(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errorz.Validation("start and end time required")
	}
	if end.Before(start) {
		return errorz.Validation("end time must not be before start time")
	}
	return nil
}
