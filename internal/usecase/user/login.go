package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/service-booking/internal/auth"
	domain "github.com/BruksfildServices01/service-booking/internal/domain/user"
)

type Login struct {
	repo   domain.Repository
	tokens *auth.Manager
}

func NewLogin(repo domain.Repository, tokens *auth.Manager) *Login {
	return &Login{repo: repo, tokens: tokens}
}

// Execute authenticates by email and password. An unknown email and a wrong
// password fail with the same error.
func (uc *Login) Execute(ctx context.Context, email, password string) (*Session, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	u, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.ComparePassword(u.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}

	return &Session{User: u, Token: token}, nil
}
