package admission

import "errors"

var (
	ErrAdmissionNotFound = errors.New("admission not found")
	ErrStudentNotFound   = errors.New("student user not found")
	ErrNotAStudent       = errors.New("user is not a student")
	ErrBadTransition     = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrNegativeExtras    = errors.New("extra classes must not be negative")
)
