// Package seed loads the starter catalog and the bootstrap administrator.
// Both steps are idempotent and safe to run on every start.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BruksfildServices01/service-booking/internal/auth"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	"github.com/BruksfildServices01/service-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/service-booking/internal/domain/user"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

type Admin struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type Seeder struct {
	services catalog.Repository
	users    user.Repository
	log      *slog.Logger
}

func New(services catalog.Repository, users user.Repository, log *slog.Logger) *Seeder {
	if log == nil {
		log = slog.Default()
	}
	return &Seeder{services: services, users: users, log: log}
}

// Services inserts every service whose name, case-insensitively, is not
// already in the catalog. It returns how many were added.
func (s *Seeder) Services(ctx context.Context, defaults []models.Service) (int, error) {
	existing, err := s.services.ListServices(ctx)
	if err != nil {
		return 0, err
	}

	names := make(map[string]bool, len(existing))
	for _, svc := range existing {
		names[strings.ToLower(svc.Name)] = true
	}

	added := 0
	for _, svc := range defaults {
		if names[strings.ToLower(svc.Name)] {
			continue
		}

		svc := svc
		svc.ID = 0
		if err := catalog.Validate(&svc); err != nil {
			return added, fmt.Errorf("seed %q: %w", svc.Name, err)
		}
		slug, err := catalog.UniqueSlug(ctx, s.services, svc.Name, 0)
		if err != nil {
			return added, fmt.Errorf("seed %q: %w", svc.Name, err)
		}
		svc.Slug = slug
		if err := s.services.CreateService(ctx, &svc); err != nil {
			return added, fmt.Errorf("seed %q: %w", svc.Name, err)
		}

		names[strings.ToLower(svc.Name)] = true
		added++
	}

	if added > 0 {
		s.log.Info("catalog seeded", slog.Int("added", added))
	} else {
		s.log.Info("catalog already seeded")
	}
	return added, nil
}

// Admin creates the administrator, or promotes an existing account with the
// same email. An empty email or password skips the step.
func (s *Seeder) Admin(ctx context.Context, a Admin) error {
	email := user.NormalizeEmail(a.Email)
	if email == "" || a.Password == "" {
		s.log.Info("admin seed skipped, ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role == string(authz.RoleAdmin) {
			s.log.Info("admin already exists", slog.String("email", email))
			return nil
		}
		if err := s.users.UpdateUserRole(ctx, existing.ID, string(authz.RoleAdmin)); err != nil {
			return err
		}
		s.log.Info("existing user promoted to admin", slog.String("email", email))
		return nil

	case !errors.Is(err, user.ErrNotFound):
		return err
	}

	hash, err := auth.HashPassword(a.Password)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(a.Name)
	if name == "" {
		name = "Administrator"
	}

	if err := s.users.CreateUser(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        a.Phone,
		Role:         string(authz.RoleAdmin),
	}); err != nil {
		return err
	}

	s.log.Info("admin created", slog.String("email", email))
	return nil
}
