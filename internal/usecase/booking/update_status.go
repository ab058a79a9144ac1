package booking

import (
	"context"

	"github.com/BruksfildServices01/service-booking/internal/audit"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	domain "github.com/BruksfildServices01/service-booking/internal/domain/booking"
	"github.com/BruksfildServices01/service-booking/internal/domain/review"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

type UpdateBookingStatus struct {
	bookings domain.Repository
	reviews  review.Repository
	audit    *audit.Dispatcher
}

func NewUpdateBookingStatus(
	bookings domain.Repository,
	reviews review.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		bookings: bookings,
		reviews:  reviews,
		audit:    audit,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	caller authz.Principal,
	bookingID uint,
	status string,
) (*models.Booking, error) {

	if err := authz.Require(caller, authz.UpdateBookingStatus); err != nil {
		return nil, err
	}

	b, err := uc.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	reviewed, err := uc.reviews.HasReviewForBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	from := b.Status
	if err := domain.SetStatus(b, to, reviewed); err != nil {
		return nil, err
	}

	if err := uc.bookings.UpdateBookingStatus(ctx, b.ID, to); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"from":     from,
			"to":       string(to),
			"owner_id": b.UserID,
		},
	})

	return uc.bookings.GetBooking(ctx, b.ID)
}
