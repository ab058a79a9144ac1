package dto

import (
	"time"

	"github.com/BruksfildServices01/service-booking/internal/models"
	"github.com/BruksfildServices01/service-booking/internal/timezone"
)

type UserView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserView(u models.User) UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func NewUserViews(users []models.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserView(u))
	}
	return out
}

type BookingView struct {
	ID          uint                `json:"id"`
	Service     *models.Service     `json:"service"`
	User        *models.UserSummary `json:"user,omitempty"`
	BookingDate string              `json:"booking_date"`
	BookingTime string              `json:"booking_time"`
	Address     string              `json:"address"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// UserFields selects which owner fields a booking view carries.
type UserFields int

const (
	WithoutUser UserFields = iota
	WithUserContact
	WithUserPhone
)

func NewBookingView(b models.Booking, fields UserFields) BookingView {
	v := BookingView{
		ID:          b.ID,
		BookingDate: b.BookingDate.Format(timezone.DateLayout),
		BookingTime: b.BookingTime,
		Address:     b.Address,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.Service.ID != 0 {
		svc := b.Service
		v.Service = &svc
	}
	if fields != WithoutUser && b.User.ID != 0 {
		v.User = &models.UserSummary{
			ID:    b.User.ID,
			Name:  b.User.Name,
			Email: b.User.Email,
		}
		if fields == WithUserPhone {
			v.User.Phone = b.User.Phone
		}
	}
	return v
}

func NewBookingViews(bookings []models.Booking, fields UserFields) []BookingView {
	out := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, NewBookingView(b, fields))
	}
	return out
}

type NamedRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ReviewView struct {
	ID        uint      `json:"id"`
	BookingID uint      `json:"booking_id"`
	User      *NamedRef `json:"user"`
	Service   *NamedRef `json:"service"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func NewReviewView(r models.Review) ReviewView {
	v := ReviewView{
		ID:        r.ID,
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
	if r.User.ID != 0 {
		v.User = &NamedRef{ID: r.User.ID, Name: r.User.Name}
	}
	if r.Service.ID != 0 {
		v.Service = &NamedRef{ID: r.Service.ID, Name: r.Service.Name}
	}
	return v
}

func NewReviewViews(reviews []models.Review) []ReviewView {
	out := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, NewReviewView(r))
	}
	return out
}
