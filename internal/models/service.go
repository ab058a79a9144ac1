package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Slug        string  `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Price       float64 `gorm:"not null;check:price >= 0" json:"price"`
	Duration    int     `gorm:"not null;check:duration >= 1" json:"duration"`
	Category    string  `gorm:"size:50;not null" json:"category"`
	ImageURL    string  `gorm:"size:500" json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
