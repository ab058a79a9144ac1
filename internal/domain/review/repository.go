package review

import (
	"context"

	"github.com/BruksfildServices01/service-booking/internal/models"
)

type Repository interface {
	// CreateReview returns ErrBookingNotDone unless the booking is completed
	// and ErrAlreadyReviewed when it already has a review.
	CreateReview(
		ctx context.Context,
		r *models.Review,
	) error

	// GetReview returns the review with User and Service loaded, or ErrNotFound.
	GetReview(
		ctx context.Context,
		id uint,
	) (*models.Review, error)

	GetReviewByBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Review, error)

	// ListReviews returns reviews newest first, optionally for one service.
	ListReviews(
		ctx context.Context,
		serviceID *uint,
	) ([]models.Review, error)

	DeleteReview(
		ctx context.Context,
		id uint,
	) error

	HasReviewForBooking(
		ctx context.Context,
		bookingID uint,
	) (bool, error)

	// RatingTotals returns the number of reviews and the sum of their ratings.
	RatingTotals(
		ctx context.Context,
		serviceID uint,
	) (count int64, sum int64, err error)
}
