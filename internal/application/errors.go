package application

import "errors"

var (
	ErrSessionNotFound  = errors.New("growth session not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrForbidden        = errors.New("forbidden")
	ErrSessionPassed    = errors.New("growth session already took place")
	ErrSessionFull      = errors.New("growth session is full")
	ErrAlreadyAttending = errors.New("already attending this growth session")
	ErrNotAttending     = errors.New("not attending this growth session")
	ErrInvalidInput     = errors.New("invalid input")
	ErrSearchDisabled   = errors.New("search is not configured")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidState       = errors.New("invalid oauth state")
)

// FieldError is an ErrInvalidInput tied to one request field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Field + " " + e.Message }

func (e *FieldError) Unwrap() error { return ErrInvalidInput }

// Details renders the error the way validation.ToDetails does.
func (e *FieldError) Details() map[string]string {
	return map[string]string{e.Field: e.Message}
}
