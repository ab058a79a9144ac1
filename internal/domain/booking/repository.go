package booking

import (
	"context"

	"github.com/BruksfildServices01/service-booking/internal/models"
)

type ListFilter struct {
	UserID *uint
	Status *Status
}

type Repository interface {
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// GetBooking returns the booking with Service and User loaded, or ErrNotFound.
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// ListBookings returns bookings newest first.
	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, error)

	// UpdateBookingStatus returns ErrHasReview when a reviewed booking would
	// leave completed.
	UpdateBookingStatus(
		ctx context.Context,
		id uint,
		status Status,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error
}
