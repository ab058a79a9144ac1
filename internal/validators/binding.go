package validators

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/service-booking/internal/timezone"
)

var once sync.Once

// Register adds the custom struct tags used by request DTOs to gin's
// validator:
//
//	date  - YYYY-MM-DD or an RFC 3339 timestamp
//	clock - HH:MM, 24 hour
//	role  - user or admin
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("date", isDate)
		_ = v.RegisterValidation("clock", isClock)
		_ = v.RegisterValidation("role", isRole)
	})
}

func isDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if _, err := time.Parse(timezone.DateLayout, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func isClock(fl validator.FieldLevel) bool {
	_, err := timezone.ParseClock(fl.Field().String())
	return err == nil
}

func isRole(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "user" || s == "admin"
}
