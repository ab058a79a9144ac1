package repository

import (
	"gorm.io/gorm"
)

// Store bundles every gorm repository over one shared handle.
type Store struct {
	*UserGormRepository
	*ServiceGormRepository
	*BookingGormRepository
	*ReviewGormRepository
	*AuditGormRepository
}

func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		UserGormRepository:    NewUserGormRepository(db),
		ServiceGormRepository: NewServiceGormRepository(db),
		BookingGormRepository: NewBookingGormRepository(db),
		ReviewGormRepository:  NewReviewGormRepository(db),
		AuditGormRepository:   NewAuditGormRepository(db),
	}
}
