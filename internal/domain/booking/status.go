package booking

import (
	"strings"

	"github.com/BruksfildServices01/service-booking/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCompleted Status = "completed"
)

var (
	ErrInvalidStatus   = httperr.ErrValidation("invalid_status", "Status must be one of pending, approved, completed")
	ErrHasReview       = httperr.ErrValidation("booking_has_review", "A reviewed booking must stay completed")
	ErrNotCompleted    = httperr.ErrValidation("booking_not_completed", "Only completed bookings can be deleted")
	ErrNotFound        = httperr.ErrNotFound("booking_not_found", "Booking not found")
	ErrServiceNotFound = httperr.ErrNotFound("service_not_found", "Service not found")
)

func InitialStatus() Status {
	return StatusPending
}

// ParseStatus accepts the three known states, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusApproved, StatusCompleted:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusCompleted
}

// ===============================
// Validations
// ===============================

// ValidateTransition allows an admin to move a booking between any two
// states, backward included. A booking that already carries a review is
// pinned to completed.
func ValidateTransition(from, to Status, reviewed bool) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}
	if reviewed && from == StatusCompleted && to != StatusCompleted {
		return ErrHasReview
	}
	return nil
}

func CanDelete(current Status) error {
	if current != StatusCompleted {
		return ErrNotCompleted
	}
	return nil
}

func CanReview(current Status) bool {
	return current == StatusCompleted
}
