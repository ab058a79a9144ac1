package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/service-booking/internal/authz"
	"github.com/BruksfildServices01/service-booking/internal/domain/booking"
	domain "github.com/BruksfildServices01/service-booking/internal/domain/review"
	"github.com/BruksfildServices01/service-booking/internal/infra/cache"
	"github.com/BruksfildServices01/service-booking/internal/infra/memstore"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

type fixture struct {
	store *memstore.Store
	cache *cache.MemoryCache

	owner    authz.Principal
	stranger authz.Principal
	admin    authz.Principal

	service models.Service
	booking models.Booking
}

func newFixture(t *testing.T, status booking.Status) *fixture {
	t.Helper()

	ctx := context.Background()
	store := memstore.New()

	users := []models.User{
		{Name: "Ana", Email: "ana@example.com", Role: "user"},
		{Name: "Bruno", Email: "bruno@example.com", Role: "user"},
		{Name: "Root", Email: "root@example.com", Role: "admin"},
	}
	for i := range users {
		if err := store.CreateUser(ctx, &users[i]); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	svc := models.Service{Name: "Plumber", Slug: "plumber", Description: "Pipes", Price: 120, Duration: 2, Category: "Plumbing"}
	if err := store.CreateService(ctx, &svc); err != nil {
		t.Fatalf("create service: %v", err)
	}

	b := booking.New(users[0].ID, svc.ID, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), "09:00", "1 Main St")
	b.Status = string(status)
	if err := store.CreateBooking(ctx, b); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	return &fixture{
		store:    store,
		cache:    cache.NewMemory(),
		owner:    authz.Principal{UserID: users[0].ID, Role: authz.RoleUser},
		stranger: authz.Principal{UserID: users[1].ID, Role: authz.RoleUser},
		admin:    authz.Principal{UserID: users[2].ID, Role: authz.RoleAdmin},
		service:  svc,
		booking:  *b,
	}
}

func (f *fixture) create(caller authz.Principal, rating int, comment string) (*models.Review, error) {
	return NewCreateReview(f.store, f.store, f.cache, nil).Execute(
		context.Background(),
		caller,
		CreateReviewInput{BookingID: f.booking.ID, Rating: rating, Comment: comment},
	)
}

func TestCreateReviewOnCompletedBooking(t *testing.T) {
	f := newFixture(t, booking.StatusCompleted)

	r, err := f.create(f.owner, 5, "  Excellent and fast work  ")
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	if r.ServiceID != f.service.ID {
		t.Fatalf("expected service snapshot %d, got %d", f.service.ID, r.ServiceID)
	}
	if r.Comment != "Excellent and fast work" {
		t.Fatalf("expected trimmed comment, got %q", r.Comment)
	}
	if r.User.Name != "Ana" || r.Service.Name != "Plumber" {
		t.Fatalf("expected joined names, got %q / %q", r.User.Name, r.Service.Name)
	}
}

func TestCreateReviewRules(t *testing.T) {
	cases := []struct {
		name    string
		status  booking.Status
		caller  func(f *fixture) authz.Principal
		rating  int
		comment string
		want    error
	}{
		{"stranger", booking.StatusCompleted, func(f *fixture) authz.Principal { return f.stranger }, 5, "Very good job indeed", domain.ErrNotBookingOwner},
		{"admin is not owner", booking.StatusCompleted, func(f *fixture) authz.Principal { return f.admin }, 5, "Very good job indeed", domain.ErrNotBookingOwner},
		{"pending", booking.StatusPending, func(f *fixture) authz.Principal { return f.owner }, 5, "Very good job indeed", domain.ErrBookingNotDone},
		{"approved", booking.StatusApproved, func(f *fixture) authz.Principal { return f.owner }, 5, "Very good job indeed", domain.ErrBookingNotDone},
		{"rating too low", booking.StatusCompleted, func(f *fixture) authz.Principal { return f.owner }, 0, "Very good job indeed", domain.ErrInvalidRating},
		{"rating too high", booking.StatusCompleted, func(f *fixture) authz.Principal { return f.owner }, 6, "Very good job indeed", domain.ErrInvalidRating},
		{"short comment", booking.StatusCompleted, func(f *fixture) authz.Principal { return f.owner }, 4, "Good", domain.ErrCommentTooShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.status)
			if _, err := f.create(tc.caller(f), tc.rating, tc.comment); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateReviewUnknownBooking(t *testing.T) {
	f := newFixture(t, booking.StatusCompleted)

	_, err := NewCreateReview(f.store, f.store, nil, nil).Execute(
		context.Background(),
		f.owner,
		CreateReviewInput{BookingID: 9999, Rating: 5, Comment: "Does not matter much"},
	)
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected booking not found, got %v", err)
	}
}

func TestCreateReviewOncePerBooking(t *testing.T) {
	f := newFixture(t, booking.StatusCompleted)

	if _, err := f.create(f.owner, 5, "First review is fine"); err != nil {
		t.Fatalf("first review: %v", err)
	}
	if _, err := f.create(f.owner, 3, "Second review is not"); !errors.Is(err, domain.ErrAlreadyReviewed) {
		t.Fatalf("expected already reviewed, got %v", err)
	}
}

func TestDeleteReviewAuthorOrAdmin(t *testing.T) {
	f := newFixture(t, booking.StatusCompleted)
	ctx := context.Background()

	r, err := f.create(f.owner, 4, "Solid work overall")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	del := NewDeleteReview(f.store, f.cache, nil)

	if err := del.Execute(ctx, f.stranger, r.ID); !errors.Is(err, domain.ErrNotReviewAuthor) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := del.Execute(ctx, f.admin, r.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if err := del.Execute(ctx, f.owner, r.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListAndGetByBooking(t *testing.T) {
	f := newFixture(t, booking.StatusCompleted)
	ctx := context.Background()

	if _, err := NewGetReviewByBooking(f.store).Execute(ctx, f.booking.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found before review, got %v", err)
	}

	r, err := f.create(f.owner, 4, "Solid work overall")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := NewGetReviewByBooking(f.store).Execute(ctx, f.booking.ID)
	if err != nil || got.ID != r.ID {
		t.Fatalf("expected review %d, got %+v (%v)", r.ID, got, err)
	}

	list := NewListReviews(f.store)
	all, err := list.Execute(ctx, nil)
	if err != nil || len(all) != 1 {
		t.Fatalf("expected 1 review, got %d (%v)", len(all), err)
	}

	other := f.service.ID + 1000
	none, err := list.Execute(ctx, &other)
	if err != nil || len(none) != 0 {
		t.Fatalf("expected no reviews for other service, got %d (%v)", len(none), err)
	}
}

func TestRatingSummaryIsInvalidatedOnChanges(t *testing.T) {
	f := newFixture(t, booking.StatusCompleted)
	ctx := context.Background()
	summary := NewRatingSummary(f.store, f.cache, time.Minute)

	empty, err := summary.Execute(ctx, f.service.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if empty.Count != 0 || empty.Average != 0 {
		t.Fatalf("expected empty summary, got %+v", empty)
	}

	r, err := f.create(f.owner, 5, "Excellent and fast work")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	after, err := summary.Execute(ctx, f.service.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if after.Count != 1 || after.Average != 5.0 {
		t.Fatalf("expected 1 review averaging 5.0, got %+v", after)
	}

	if err := NewDeleteReview(f.store, f.cache, nil).Execute(ctx, f.owner, r.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	again, err := summary.Execute(ctx, f.service.ID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if again.Count != 0 {
		t.Fatalf("expected cache invalidated after delete, got %+v", again)
	}
}
