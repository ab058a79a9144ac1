package user

import (
	"context"

	"github.com/BruksfildServices01/service-booking/internal/authz"
	domain "github.com/BruksfildServices01/service-booking/internal/domain/user"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

type GetMe struct {
	repo domain.Repository
}

func NewGetMe(repo domain.Repository) *GetMe {
	return &GetMe{repo: repo}
}

func (uc *GetMe) Execute(ctx context.Context, caller authz.Principal) (*models.User, error) {
	if caller.UserID == 0 {
		return nil, httperr.ErrUnauthorized("not_authenticated", "Not authorized, no token")
	}
	return uc.repo.GetUser(ctx, caller.UserID)
}
