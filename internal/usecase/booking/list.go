package booking

import (
	"context"

	"github.com/BruksfildServices01/service-booking/internal/authz"
	domain "github.com/BruksfildServices01/service-booking/internal/domain/booking"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

type ListMyBookings struct {
	repo domain.Repository
}

func NewListMyBookings(repo domain.Repository) *ListMyBookings {
	return &ListMyBookings{repo: repo}
}

func (uc *ListMyBookings) Execute(
	ctx context.Context,
	caller authz.Principal,
) ([]models.Booking, error) {

	if caller.UserID == 0 {
		return nil, httperr.ErrUnauthorized("not_authenticated", "Not authorized, no token")
	}

	userID := caller.UserID
	return uc.repo.ListBookings(ctx, domain.ListFilter{UserID: &userID})
}

type ListAllBookings struct {
	repo domain.Repository
}

func NewListAllBookings(repo domain.Repository) *ListAllBookings {
	return &ListAllBookings{repo: repo}
}

// Execute lists every booking, newest first. An empty status lists all states.
func (uc *ListAllBookings) Execute(
	ctx context.Context,
	caller authz.Principal,
	status string,
) ([]models.Booking, error) {

	if err := authz.Require(caller, authz.ViewAllBookings); err != nil {
		return nil, err
	}

	var filter domain.ListFilter
	if status != "" {
		st, err := domain.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = &st
	}

	return uc.repo.ListBookings(ctx, filter)
}
