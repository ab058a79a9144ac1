package validators

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type sample struct {
	Date string `binding:"required,date"`
	Time string `binding:"required,clock"`
	Role string `binding:"omitempty,role"`
}

func TestCustomTags(t *testing.T) {
	Register()

	ok := sample{Date: "2024-07-01", Time: "09:30", Role: "admin"}
	if err := binding.Validator.ValidateStruct(&ok); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	rfc := sample{Date: "2024-07-01T00:00:00Z", Time: "23:59"}
	if err := binding.Validator.ValidateStruct(&rfc); err != nil {
		t.Fatalf("expected RFC 3339 date to pass, got %v", err)
	}

	bad := []sample{
		{Date: "07/01/2024", Time: "09:30"},
		{Date: "2024-07-01", Time: "9.30"},
		{Date: "2024-07-01", Time: "24:00"},
		{Date: "2024-07-01", Time: "09:30", Role: "root"},
	}
	for _, s := range bad {
		if err := binding.Validator.ValidateStruct(&s); err == nil {
			t.Fatalf("expected %+v to fail validation", s)
		}
	}
}
