// Package memstore is an in-process implementation of every repository.
// It backs STORAGE_DRIVER=memory for local runs and the use-case and
// handler tests. Unique constraints (user email, service slug, one review
// per booking) and the completed-before-review rule are enforced under the
// same lock as the write.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/service-booking/internal/audit"
	"github.com/BruksfildServices01/service-booking/internal/domain/booking"
	"github.com/BruksfildServices01/service-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/service-booking/internal/domain/review"
	"github.com/BruksfildServices01/service-booking/internal/domain/user"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

type Store struct {
	mu sync.RWMutex

	nextID uint
	now    func() time.Time

	users    map[uint]models.User
	services map[uint]models.Service
	bookings map[uint]models.Booking
	reviews  map[uint]models.Review
	audit    []models.AuditLog
}

func New() *Store {
	return &Store{
		now:      time.Now,
		users:    make(map[uint]models.User),
		services: make(map[uint]models.Service),
		bookings: make(map[uint]models.Booking),
		reviews:  make(map[uint]models.Review),
	}
}

// SetClock overrides the timestamp source; tests use it to order records.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// ======================================================
// Users
// ======================================================

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}

	now := s.now()
	u.ID = s.id()
	u.CreatedAt, u.UpdatedAt = now, now
	s.users[u.ID] = *u
	return nil
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return newer(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID) })
	return out, nil
}

func (s *Store) UpdateUserRole(ctx context.Context, id uint, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Role = role
	u.UpdatedAt = s.now()
	s.users[id] = u
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(s.users, id)

	// Mirrors the foreign keys: bookings and reviews cascade.
	for bid, b := range s.bookings {
		if b.UserID == id {
			delete(s.bookings, bid)
		}
	}
	for rid, r := range s.reviews {
		if r.UserID == id {
			delete(s.reviews, rid)
		}
	}
	return nil
}

// ======================================================
// Services
// ======================================================

func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetService(ctx context.Context, id uint) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &svc, nil
}

func (s *Store) GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, svc := range s.services {
		if svc.Slug == slug {
			return &svc, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *Store) CreateService(ctx context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slugTaken(svc.Slug, 0) {
		return catalog.ErrSlugTaken
	}

	now := s.now()
	svc.ID = s.id()
	svc.CreatedAt, svc.UpdatedAt = now, now
	s.services[svc.ID] = *svc
	return nil
}

func (s *Store) UpdateService(ctx context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[svc.ID]; !ok {
		return catalog.ErrNotFound
	}
	if s.slugTaken(svc.Slug, svc.ID) {
		return catalog.ErrSlugTaken
	}

	svc.UpdatedAt = s.now()
	s.services[svc.ID] = *svc
	return nil
}

func (s *Store) DeleteService(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(s.services, id)

	for bid, b := range s.bookings {
		if b.ServiceID == id {
			delete(s.bookings, bid)
		}
	}
	for rid, r := range s.reviews {
		if r.ServiceID == id {
			delete(s.reviews, rid)
		}
	}
	return nil
}

func (s *Store) slugTaken(slug string, except uint) bool {
	for id, svc := range s.services {
		if id != except && strings.EqualFold(svc.Slug, slug) {
			return true
		}
	}
	return false
}

// ======================================================
// Bookings
// ======================================================

func (s *Store) CreateBooking(ctx context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b.ID = s.id()
	b.CreatedAt, b.UpdatedAt = now, now

	stored := *b
	stored.User, stored.Service = models.User{}, models.Service{}
	s.bookings[b.ID] = stored
	return nil
}

func (s *Store) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	b = s.joinBooking(b)
	return &b, nil
}

func (s *Store) ListBookings(ctx context.Context, filter booking.ListFilter) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0)
	for _, b := range s.bookings {
		if filter.UserID != nil && b.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && b.Status != string(*filter.Status) {
			continue
		}
		out = append(out, s.joinBooking(b))
	}
	sort.Slice(out, func(i, j int) bool { return newer(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID) })
	return out, nil
}

func (s *Store) UpdateBookingStatus(ctx context.Context, id uint, status booking.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return booking.ErrNotFound
	}
	if status != booking.StatusCompleted && s.reviewed(id) {
		return booking.ErrHasReview
	}
	b.Status = string(status)
	b.UpdatedAt = s.now()
	s.bookings[id] = b
	return nil
}

func (s *Store) DeleteBooking(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return booking.ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}

func (s *Store) joinBooking(b models.Booking) models.Booking {
	b.User = s.users[b.UserID]
	b.Service = s.services[b.ServiceID]
	return b
}

// ======================================================
// Reviews
// ======================================================

func (s *Store) CreateReview(ctx context.Context, r *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[r.BookingID]
	if !ok {
		return review.ErrBookingNotFound
	}
	if b.Status != string(booking.StatusCompleted) {
		return review.ErrBookingNotDone
	}
	if s.reviewed(r.BookingID) {
		return review.ErrAlreadyReviewed
	}

	r.ID = s.id()
	r.CreatedAt = s.now()

	stored := *r
	stored.User, stored.Service = models.User{}, models.Service{}
	s.reviews[r.ID] = stored
	return nil
}

func (s *Store) reviewed(bookingID uint) bool {
	for _, existing := range s.reviews {
		if existing.BookingID == bookingID {
			return true
		}
	}
	return false
}

func (s *Store) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reviews[id]
	if !ok {
		return nil, review.ErrNotFound
	}
	r = s.joinReview(r)
	return &r, nil
}

func (s *Store) GetReviewByBooking(ctx context.Context, bookingID uint) (*models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reviews {
		if r.BookingID == bookingID {
			r = s.joinReview(r)
			return &r, nil
		}
	}
	return nil, review.ErrNotFound
}

func (s *Store) ListReviews(ctx context.Context, serviceID *uint) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Review, 0)
	for _, r := range s.reviews {
		if serviceID != nil && r.ServiceID != *serviceID {
			continue
		}
		out = append(out, s.joinReview(r))
	}
	sort.Slice(out, func(i, j int) bool { return newer(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID) })
	return out, nil
}

func (s *Store) DeleteReview(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return review.ErrNotFound
	}
	delete(s.reviews, id)
	return nil
}

func (s *Store) HasReviewForBooking(ctx context.Context, bookingID uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reviews {
		if r.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) RatingTotals(ctx context.Context, serviceID uint) (int64, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count, sum int64
	for _, r := range s.reviews {
		if r.ServiceID == serviceID {
			count++
			sum += int64(r.Rating)
		}
	}
	return count, sum, nil
}

func (s *Store) joinReview(r models.Review) models.Review {
	r.User = s.users[r.UserID]
	r.Service = s.services[r.ServiceID]
	return r
}

// ======================================================
// Audit
// ======================================================

func (s *Store) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.id()
	entry.CreatedAt = s.now()
	s.audit = append(s.audit, *entry)
	return nil
}

func (s *Store) ListAuditLogs(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.AuditLog, 0)
	for i := len(s.audit) - 1; i >= 0; i-- {
		e := s.audit[i]
		if f.Action != "" && e.Action != f.Action {
			continue
		}
		if f.Entity != "" && e.Entity != f.Entity {
			continue
		}
		if f.From != nil && e.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && e.CreatedAt.After(*f.To) {
			continue
		}
		matched = append(matched, e)
	}

	total := int64(len(matched))
	if f.Offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

func newer(at time.Time, aID uint, bt time.Time, bID uint) bool {
	if !at.Equal(bt) {
		return at.After(bt)
	}
	return aID > bID
}

// Compile-time checks
var (
	_ user.Repository    = (*Store)(nil)
	_ catalog.Repository = (*Store)(nil)
	_ booking.Repository = (*Store)(nil)
	_ review.Repository  = (*Store)(nil)
	_ audit.Store        = (*Store)(nil)
)
