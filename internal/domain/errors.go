package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrDuplicateID is returned when an insert collides with an existing id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrNotFound is returned when an operation targets a nonexistent record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidStatus is returned for a transition outside {Accepted, Rejected}
	// or for an attempt to modify a request that already reached a terminal state.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrUnauthorized is returned when the caller is not a participant of the
	// record it is trying to act on.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAlreadyExists is returned when registration collides with an existing
	// contact number.
	ErrAlreadyExists = errors.New("already exists")
)

// AdmissionError reports a denied rent-request admission together with the
// remaining wait, in whole hours rounded up.
type AdmissionError struct {
	Reason         string
	HoursRemaining int
	NextAttemptAt  time.Time
}

func (e *AdmissionError) Error() string {
	if e.HoursRemaining > 0 {
		return fmt.Sprintf("%s: retry in %d hour(s)", e.Reason, e.HoursRemaining)
	}
	return e.Reason
}
