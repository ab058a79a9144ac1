package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/service-booking/internal/domain/booking"
	"github.com/BruksfildServices01/service-booking/internal/domain/review"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

// CreateReview locks the booking row and re-checks that it is completed
// before inserting. The unique index on booking_id turns two concurrent
// inserts for the same booking into one row and one ErrAlreadyReviewed.
func (r *ReviewGormRepository) CreateReview(ctx context.Context, rv *models.Review) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "status").
			First(&b, rv.BookingID).Error; err != nil {
			return notFound(err, review.ErrBookingNotFound)
		}
		if b.Status != string(booking.StatusCompleted) {
			return review.ErrBookingNotDone
		}
		return tx.Omit("User", "Service").Create(rv).Error
	})
	if httperr.IsUniqueViolation(err, "") {
		return review.ErrAlreadyReviewed
	}
	return err
}

func (r *ReviewGormRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") }).
		Preload("Service", func(db *gorm.DB) *gorm.DB { return db.Select("id", "name") })
}

func (r *ReviewGormRepository) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	var rv models.Review
	if err := r.preloaded(ctx).First(&rv, id).Error; err != nil {
		return nil, notFound(err, review.ErrNotFound)
	}
	return &rv, nil
}

func (r *ReviewGormRepository) GetReviewByBooking(ctx context.Context, bookingID uint) (*models.Review, error) {
	var rv models.Review
	if err := r.preloaded(ctx).
		Where("booking_id = ?", bookingID).
		First(&rv).Error; err != nil {
		return nil, notFound(err, review.ErrNotFound)
	}
	return &rv, nil
}

func (r *ReviewGormRepository) ListReviews(ctx context.Context, serviceID *uint) ([]models.Review, error) {
	q := r.preloaded(ctx)
	if serviceID != nil {
		q = q.Where("service_id = ?", *serviceID)
	}

	var reviews []models.Review
	if err := q.
		Order("created_at DESC, id DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) DeleteReview(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	return affected(tx, review.ErrNotFound)
}

func (r *ReviewGormRepository) HasReviewForBooking(ctx context.Context, bookingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReviewGormRepository) RatingTotals(ctx context.Context, serviceID uint) (int64, int64, error) {
	var row struct {
		Count int64
		Sum   int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS sum").
		Where("service_id = ?", serviceID).
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Count, row.Sum, nil
}

// Compile-time check
var _ review.Repository = (*ReviewGormRepository)(nil)
