package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/service-booking/internal/audit"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	domain "github.com/BruksfildServices01/service-booking/internal/domain/booking"
	"github.com/BruksfildServices01/service-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/models"
	"github.com/BruksfildServices01/service-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID uint
	Date      string
	Time      string
	Address   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	bookings domain.Repository
	services catalog.Repository
	audit    *audit.Dispatcher
	tz       string
}

func NewCreateBooking(
	bookings domain.Repository,
	services catalog.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		bookings: bookings,
		services: services,
		audit:    audit,
		tz:       tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	caller authz.Principal,
	in CreateBookingInput,
) (*models.Booking, error) {

	if caller.UserID == 0 {
		return nil, httperr.ErrUnauthorized("not_authenticated", "Not authorized, no token")
	}

	// --------------------------------------------------
	// 1. Service must exist
	// --------------------------------------------------
	if _, err := uc.services.GetService(ctx, in.ServiceID); err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			return nil, domain.ErrServiceNotFound
		}
		return nil, err
	}

	// --------------------------------------------------
	// 2. Date / time / address
	// --------------------------------------------------
	date, err := timezone.ParseDate(uc.tz, in.Date)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date", "Booking date must be YYYY-MM-DD")
	}

	clock, err := timezone.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_time", "Booking time must be HH:MM")
	}

	address := strings.TrimSpace(in.Address)
	if address == "" {
		return nil, httperr.ErrValidation("missing_address", "Address is required")
	}

	// --------------------------------------------------
	// 3. Always created pending
	// --------------------------------------------------
	b := domain.New(caller.UserID, in.ServiceID, date, clock, address)

	if err := uc.bookings.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"service_id":   in.ServiceID,
			"booking_date": date.Format(timezone.DateLayout),
			"booking_time": clock,
		},
	})

	return uc.bookings.GetBooking(ctx, b.ID)
}
