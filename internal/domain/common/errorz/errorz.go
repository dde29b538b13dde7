package errorz

import (
	"errors"
	"fmt"
)

var (
	NotFound       = errors.New("not found")
	NotAnApprover  = errors.New("not an approver for this event")
	AlreadyDecided = errors.New("already responded")
	Forbidden      = errors.New("forbidden")
)

// ValidationError reports malformed or policy-violating input. Validation
// runs before any write, so a ValidationError never leaves partial state.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func Validation(format string, args ...interface{}) error {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
