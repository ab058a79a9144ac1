package catalog

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/service-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/service-booking/internal/infra/cache"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

const ListCacheKey = "catalog:services"

type ListServices struct {
	repo  domain.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewListServices(repo domain.Repository, c cache.Cache, ttl time.Duration) *ListServices {
	if c == nil {
		c = cache.NewNoop()
	}
	return &ListServices{repo: repo, cache: c, ttl: ttl}
}

func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {
	var cached []models.Service
	if cache.GetJSON(ctx, uc.cache, ListCacheKey, &cached) {
		return cached, nil
	}

	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	cache.SetJSON(ctx, uc.cache, ListCacheKey, services, uc.ttl)
	return services, nil
}

type GetService struct {
	repo domain.Repository
}

func NewGetService(repo domain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(ctx context.Context, id uint) (*models.Service, error) {
	return uc.repo.GetService(ctx, id)
}

// ExecuteBySlug looks a service up by its URL slug.
func (uc *GetService) ExecuteBySlug(ctx context.Context, slug string) (*models.Service, error) {
	return uc.repo.GetServiceBySlug(ctx, slug)
}
