package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

var (
	ErrNotFound        = httperr.ErrNotFound("service_not_found", "Service not found")
	ErrSlugTaken       = httperr.ErrConflict("service_slug_taken", "A service with this name already exists")
	ErrInvalidPrice    = httperr.ErrValidation("invalid_price", "Price must be zero or positive")
	ErrInvalidDuration = httperr.ErrValidation("invalid_duration", "Duration must be at least 1 hour")
	ErrMissingFields   = httperr.ErrValidation("missing_fields", "Name, description and category are required")
)

// Patch carries the fields of a partial update. Nil, empty or zero values
// leave the stored field untouched.
type Patch struct {
	Name        *string
	Description *string
	Price       *float64
	Duration    *int
	Category    *string
}

// Apply merges p into s and reports whether the name changed.
func Apply(s *models.Service, p Patch) (renamed bool) {
	if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
		name := strings.TrimSpace(*p.Name)
		renamed = name != s.Name
		s.Name = name
	}
	if p.Description != nil && *p.Description != "" {
		s.Description = *p.Description
	}
	if p.Price != nil && *p.Price != 0 {
		s.Price = *p.Price
	}
	if p.Duration != nil && *p.Duration != 0 {
		s.Duration = *p.Duration
	}
	if p.Category != nil && strings.TrimSpace(*p.Category) != "" {
		s.Category = strings.TrimSpace(*p.Category)
	}
	return renamed
}

func Validate(s *models.Service) error {
	if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Description) == "" || strings.TrimSpace(s.Category) == "" {
		return ErrMissingFields
	}
	if s.Price < 0 {
		return ErrInvalidPrice
	}
	if s.Duration < 1 {
		return ErrInvalidDuration
	}
	return nil
}

// FallbackSlug stands in for names without any slug characters.
const FallbackSlug = "service"

const maxSlugSuffix = 50

func Slug(name string) string {
	if s := slug.Make(name); s != "" {
		return s
	}
	return FallbackSlug
}

// SlugCandidate returns the n-th slug tried for name: the plain slug, then
// "-2", "-3" and so on.
func SlugCandidate(name string, n int) string {
	base := Slug(name)
	if n <= 1 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}

// UniqueSlug returns the first candidate slug for name that no service other
// than self holds. Past maxSlugSuffix candidates it appends a random suffix.
func UniqueSlug(ctx context.Context, repo Repository, name string, self uint) (string, error) {
	for n := 1; n <= maxSlugSuffix; n++ {
		candidate := SlugCandidate(name, n)

		existing, err := repo.GetServiceBySlug(ctx, candidate)
		if errors.Is(err, ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		if existing.ID == self {
			return candidate, nil
		}
	}
	return fmt.Sprintf("%s-%s", Slug(name), uuid.NewString()[:8]), nil
}

type Repository interface {
	// ListServices returns the catalog ordered by id.
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error)
	// CreateService and UpdateService return ErrSlugTaken on a slug collision.
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id uint) error
}
