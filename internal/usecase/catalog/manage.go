package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/service-booking/internal/audit"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	domain "github.com/BruksfildServices01/service-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/service-booking/internal/infra/cache"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

type CreateServiceInput struct {
	Name        string
	Description string
	Price       float64
	Duration    int
	Category    string
}

// ======================================================
// CREATE
// ======================================================

type CreateService struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewCreateService(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *CreateService {
	if c == nil {
		c = cache.NewNoop()
	}
	return &CreateService{repo: repo, cache: c, audit: audit}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	caller authz.Principal,
	in CreateServiceInput,
) (*models.Service, error) {

	if err := authz.Require(caller, authz.ManageCatalog); err != nil {
		return nil, err
	}

	s := &models.Service{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Duration:    in.Duration,
		Category:    strings.TrimSpace(in.Category),
	}
	if err := domain.Validate(s); err != nil {
		return nil, err
	}

	if err := saveWithSlug(ctx, uc.repo, s, uc.repo.CreateService); err != nil {
		return nil, err
	}

	_ = uc.cache.Delete(ctx, ListCacheKey)

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &s.ID,
		Metadata: map[string]any{"name": s.Name, "price": s.Price},
	})

	return s, nil
}

// saveWithSlug picks a free slug for s and saves it. A slug claimed by a
// concurrent write between the lookup and the save gets a fresh pick.
func saveWithSlug(
	ctx context.Context,
	repo domain.Repository,
	s *models.Service,
	save func(context.Context, *models.Service) error,
) error {
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		if s.Slug, err = domain.UniqueSlug(ctx, repo, s.Name, s.ID); err != nil {
			return err
		}
		if err = save(ctx, s); !errors.Is(err, domain.ErrSlugTaken) {
			return err
		}
	}
	return err
}

// ======================================================
// UPDATE
// ======================================================

type UpdateService struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewUpdateService(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *UpdateService {
	if c == nil {
		c = cache.NewNoop()
	}
	return &UpdateService{repo: repo, cache: c, audit: audit}
}

// Execute merges the patch into the stored service. Empty and zero values
// keep the current field.
func (uc *UpdateService) Execute(
	ctx context.Context,
	caller authz.Principal,
	id uint,
	patch domain.Patch,
) (*models.Service, error) {

	if err := authz.Require(caller, authz.ManageCatalog); err != nil {
		return nil, err
	}

	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	renamed := domain.Apply(s, patch)
	if err := domain.Validate(s); err != nil {
		return nil, err
	}

	if renamed {
		err = saveWithSlug(ctx, uc.repo, s, uc.repo.UpdateService)
	} else {
		err = uc.repo.UpdateService(ctx, s)
	}
	if err != nil {
		return nil, err
	}

	_ = uc.cache.Delete(ctx, ListCacheKey)

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &s.ID,
	})

	return s, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteService struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewDeleteService(repo domain.Repository, c cache.Cache, audit *audit.Dispatcher) *DeleteService {
	if c == nil {
		c = cache.NewNoop()
	}
	return &DeleteService{repo: repo, cache: c, audit: audit}
}

func (uc *DeleteService) Execute(
	ctx context.Context,
	caller authz.Principal,
	id uint,
) error {

	if err := authz.Require(caller, authz.ManageCatalog); err != nil {
		return err
	}

	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteService(ctx, s.ID); err != nil {
		return err
	}

	_ = uc.cache.Delete(ctx, ListCacheKey)

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &s.ID,
		Metadata: map[string]any{"name": s.Name},
	})

	return nil
}
