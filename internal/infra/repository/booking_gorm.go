package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/service-booking/internal/domain/booking"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Omit("User", "Service").Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("User").
		First(&b, id).Error; err != nil {
		return nil, notFound(err, booking.ErrNotFound)
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter booking.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Service").
		Preload("User")

	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}

	var bookings []models.Booking
	if err := q.
		Order("created_at DESC, id DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBookingStatus locks the booking row, the same row CreateReview
// locks, so a review cannot land between the check and the write.
func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	id uint,
	status booking.Status,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "status").
			First(&b, id).Error; err != nil {
			return notFound(err, booking.ErrNotFound)
		}

		if status != booking.StatusCompleted {
			var count int64
			if err := tx.
				Model(&models.Review{}).
				Where("booking_id = ?", id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return booking.ErrHasReview
			}
		}

		return tx.
			Model(&models.Booking{}).
			Where("id = ?", id).
			Update("status", string(status)).Error
	})
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	tx := r.db.WithContext(ctx).Delete(&models.Booking{}, id)
	return affected(tx, booking.ErrNotFound)
}

// Compile-time check
var _ booking.Repository = (*BookingGormRepository)(nil)
