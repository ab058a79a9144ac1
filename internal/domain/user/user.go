package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

var (
	ErrNotFound           = httperr.ErrNotFound("user_not_found", "User not found")
	ErrEmailTaken         = httperr.ErrConflict("email_taken", "User with this email already exists")
	ErrInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials", "Invalid email or password")
	ErrInvalidRole        = httperr.ErrValidation("invalid_role", "Invalid role")
	ErrSelfDelete         = httperr.ErrValidation("cannot_delete_self", "Cannot delete your own account")
	ErrMissingFields      = httperr.ErrValidation("missing_fields", "Please provide all required fields")
	ErrMissingCredentials = httperr.ErrValidation("missing_credentials", "Please provide email and password")
)

// NormalizeEmail trims and lowercases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Repository interface {
	// CreateUser returns ErrEmailTaken when the email is already registered.
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// ListUsers returns users newest first.
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserRole(ctx context.Context, id uint, role string) error
	DeleteUser(ctx context.Context, id uint) error
}
