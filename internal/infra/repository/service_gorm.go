package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, notFound(err, catalog.ErrNotFound)
	}
	return &svc, nil
}

func (r *ServiceGormRepository) GetServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&svc).Error; err != nil {
		return nil, notFound(err, catalog.ErrNotFound)
	}
	return &svc, nil
}

func (r *ServiceGormRepository) CreateService(ctx context.Context, svc *models.Service) error {
	err := r.db.WithContext(ctx).Create(svc).Error
	if httperr.IsUniqueViolation(err, "") {
		return catalog.ErrSlugTaken
	}
	return err
}

func (r *ServiceGormRepository) UpdateService(ctx context.Context, svc *models.Service) error {
	err := r.db.WithContext(ctx).Save(svc).Error
	if httperr.IsUniqueViolation(err, "") {
		return catalog.ErrSlugTaken
	}
	return err
}

func (r *ServiceGormRepository) DeleteService(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	return affected(tx, catalog.ErrNotFound)
}

// Compile-time check
var _ catalog.Repository = (*ServiceGormRepository)(nil)
