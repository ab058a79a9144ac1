package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `gorm:"index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	BookingDate time.Time `gorm:"type:date;not null" json:"booking_date"`
	BookingTime string    `gorm:"size:5;not null" json:"booking_time"`
	Address     string    `gorm:"size:255;not null" json:"address"`

	Status string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
