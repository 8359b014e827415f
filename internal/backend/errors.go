package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is any non-2xx answer from the remote API, carrying the backend's
// human-readable description when one was sent.
type Error struct {
	Status      int
	Description string

	// Constraint marks a rejection caused by server-side referential
	// integrity (delete of an entity with dependent records). The backend
	// reports these as 409, and on guarded deletes also as 401, so the
	// status code alone cannot be trusted to mean "session expired".
	Constraint bool
}

func (e *Error) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("backend: %d %s", e.Status, e.Description)
	}
	return fmt.Sprintf("backend: %d", e.Status)
}

func IsUnauthorized(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Status == http.StatusUnauthorized && !be.Constraint
}

func IsConflict(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Status == http.StatusConflict
}

// IsConstraintViolation reports delete rejections that must surface as an
// actionable message and must not tear the session down.
func IsConstraintViolation(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Constraint
}

func IsNotFound(err error) bool {
	var be *Error
	return errors.As(err, &be) && be.Status == http.StatusNotFound
}
