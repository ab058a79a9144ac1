package booking

import (
	"context"

	"github.com/BruksfildServices01/service-booking/internal/audit"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	domain "github.com/BruksfildServices01/service-booking/internal/domain/booking"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	caller authz.Principal,
	bookingID uint,
) error {

	if err := authz.Require(caller, authz.DeleteBooking); err != nil {
		return err
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := domain.CanDelete(domain.Status(b.Status)); err != nil {
		return err
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
