package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/BruksfildServices01/service-booking/internal/auth"
	"github.com/BruksfildServices01/service-booking/internal/infra/memstore"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServicesIsIdempotent(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	if err := store.CreateService(ctx, &models.Service{
		Name: "PLUMBER", Slug: "plumber-custom", Description: "Existing", Price: 99, Duration: 1, Category: "Plumbing",
	}); err != nil {
		t.Fatalf("pre-create: %v", err)
	}

	s := New(store, store, quiet())

	added, err := s.Services(ctx, DefaultServices)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if added != len(DefaultServices)-1 {
		t.Fatalf("expected %d added, got %d", len(DefaultServices)-1, added)
	}

	again, err := s.Services(ctx, DefaultServices)
	if err != nil || again != 0 {
		t.Fatalf("expected second run to add nothing, got %d (%v)", again, err)
	}

	hvac, err := store.GetServiceBySlug(ctx, "hvac-technician")
	if err != nil || hvac.Price != 180 || hvac.Duration != 3 {
		t.Fatalf("expected seeded HVAC Technician, got %+v (%v)", hvac, err)
	}
}

func TestAdminCreatesOrPromotes(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()
	s := New(store, store, quiet())

	if err := s.Admin(ctx, Admin{}); err != nil {
		t.Fatalf("empty admin should be skipped, got %v", err)
	}

	if err := s.Admin(ctx, Admin{Email: "Boss@Example.com", Password: "secret123"}); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	u, err := store.GetUserByEmail(ctx, "boss@example.com")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if u.Role != "admin" {
		t.Fatalf("expected admin role, got %s", u.Role)
	}
	if err := auth.ComparePassword(u.PasswordHash, "secret123"); err != nil {
		t.Fatalf("password not hashed correctly: %v", err)
	}

	plain := models.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "x", Role: "user"}
	if err := store.CreateUser(ctx, &plain); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := s.Admin(ctx, Admin{Email: "ana@example.com", Password: "whatever1"}); err != nil {
		t.Fatalf("promote: %v", err)
	}
	promoted, _ := store.GetUser(ctx, plain.ID)
	if promoted.Role != "admin" {
		t.Fatalf("expected promotion, got %s", promoted.Role)
	}
}
