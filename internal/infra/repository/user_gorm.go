package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-booking/internal/domain/user"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if httperr.IsUniqueViolation(err, "") {
		return user.ErrEmailTaken
	}
	return err
}

func (r *UserGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err, user.ErrNotFound)
	}
	return &u, nil
}

func (r *UserGormRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, notFound(err, user.ErrNotFound)
	}
	return &u, nil
}

func (r *UserGormRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserGormRepository) UpdateUserRole(ctx context.Context, id uint, role string) error {
	tx := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("role", role)
	return affected(tx, user.ErrNotFound)
}

func (r *UserGormRepository) DeleteUser(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&models.User{}, id)
	return affected(tx, user.ErrNotFound)
}

// Compile-time check
var _ user.Repository = (*UserGormRepository)(nil)
