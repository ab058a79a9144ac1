package review

import (
	"context"

	domain "github.com/BruksfildServices01/service-booking/internal/domain/review"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

type ListReviews struct {
	repo domain.Repository
}

func NewListReviews(repo domain.Repository) *ListReviews {
	return &ListReviews{repo: repo}
}

// Execute lists reviews newest first, optionally for one service.
func (uc *ListReviews) Execute(
	ctx context.Context,
	serviceID *uint,
) ([]models.Review, error) {
	return uc.repo.ListReviews(ctx, serviceID)
}

type GetReviewByBooking struct {
	repo domain.Repository
}

func NewGetReviewByBooking(repo domain.Repository) *GetReviewByBooking {
	return &GetReviewByBooking{repo: repo}
}

func (uc *GetReviewByBooking) Execute(
	ctx context.Context,
	bookingID uint,
) (*models.Review, error) {
	return uc.repo.GetReviewByBooking(ctx, bookingID)
}
