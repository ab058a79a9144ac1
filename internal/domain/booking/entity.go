package booking

import (
	"time"

	"github.com/BruksfildServices01/service-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// New builds a pending booking. Callers validate the service beforehand.
func New(userID, serviceID uint, date time.Time, clock, address string) *models.Booking {
	return &models.Booking{
		UserID:      userID,
		ServiceID:   serviceID,
		BookingDate: date,
		BookingTime: clock,
		Address:     address,
		Status:      string(InitialStatus()),
	}
}

func SetStatus(b *models.Booking, to Status, reviewed bool) error {
	if err := ValidateTransition(Status(b.Status), to, reviewed); err != nil {
		return err
	}
	b.Status = string(to)
	return nil
}
