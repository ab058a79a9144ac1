package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `gorm:"index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// One review per booking; the unique index is the only guard.
	BookingID uint `gorm:"uniqueIndex;not null" json:"booking_id"`

	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment string `gorm:"type:text;not null" json:"comment"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
