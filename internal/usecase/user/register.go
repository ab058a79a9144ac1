package user

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/service-booking/internal/audit"
	"github.com/BruksfildServices01/service-booking/internal/auth"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	domain "github.com/BruksfildServices01/service-booking/internal/domain/user"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

// Session is what register and login hand back to the client.
type Session struct {
	User  *models.User
	Token string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
}

type Register struct {
	repo   domain.Repository
	tokens *auth.Manager
	audit  *audit.Dispatcher
}

func NewRegister(
	repo domain.Repository,
	tokens *auth.Manager,
	audit *audit.Dispatcher,
) *Register {
	return &Register{
		repo:   repo,
		tokens: tokens,
		audit:  audit,
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*Session, error) {

	name := strings.TrimSpace(in.Name)
	email := domain.NormalizeEmail(in.Email)

	if name == "" || email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}

	role := authz.RoleUser
	if in.Role != "" {
		r, ok := authz.ParseRole(in.Role)
		if !ok {
			return nil, domain.ErrInvalidRole
		}
		role = r
	}

	// Friendly message up front; the unique index still decides races.
	if _, err := uc.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         string(role),
	}

	if err := uc.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"role": u.Role},
	})

	return &Session{User: u, Token: token}, nil
}
