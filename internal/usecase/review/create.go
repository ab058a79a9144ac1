package review

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/service-booking/internal/audit"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	"github.com/BruksfildServices01/service-booking/internal/domain/booking"
	domain "github.com/BruksfildServices01/service-booking/internal/domain/review"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/infra/cache"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

type CreateReviewInput struct {
	BookingID uint
	Rating    int
	Comment   string
}

type CreateReview struct {
	reviews  domain.Repository
	bookings booking.Repository
	cache    cache.Cache
	audit    *audit.Dispatcher
}

func NewCreateReview(
	reviews domain.Repository,
	bookings booking.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *CreateReview {
	if c == nil {
		c = cache.NewNoop()
	}
	return &CreateReview{
		reviews:  reviews,
		bookings: bookings,
		cache:    c,
		audit:    audit,
	}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	caller authz.Principal,
	in CreateReviewInput,
) (*models.Review, error) {

	if caller.UserID == 0 {
		return nil, httperr.ErrUnauthorized("not_authenticated", "Not authorized, no token")
	}

	// --------------------------------------------------
	// 1. Booking must exist and belong to the caller
	// --------------------------------------------------
	b, err := uc.bookings.GetBooking(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	if !authz.IsOwner(caller, b.UserID) {
		return nil, domain.ErrNotBookingOwner
	}

	// --------------------------------------------------
	// 2. Only completed bookings can be reviewed
	// --------------------------------------------------
	if !booking.CanReview(booking.Status(b.Status)) {
		return nil, domain.ErrBookingNotDone
	}

	// --------------------------------------------------
	// 3. Content
	// --------------------------------------------------
	if err := domain.ValidateRating(in.Rating); err != nil {
		return nil, err
	}

	comment, err := domain.NormalizeComment(in.Comment)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Persist; the unique index on booking_id settles races
	// --------------------------------------------------
	r := &models.Review{
		UserID:    caller.UserID,
		ServiceID: b.ServiceID,
		BookingID: b.ID,
		Rating:    in.Rating,
		Comment:   comment,
	}

	if err := uc.reviews.CreateReview(ctx, r); err != nil {
		return nil, err
	}

	_ = uc.cache.Delete(ctx, SummaryCacheKey(r.ServiceID))

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &r.ID,
		Metadata: map[string]any{
			"booking_id": b.ID,
			"service_id": r.ServiceID,
			"rating":     r.Rating,
		},
	})

	return uc.reviews.GetReview(ctx, r.ID)
}
