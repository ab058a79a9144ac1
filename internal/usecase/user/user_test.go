package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/service-booking/internal/auth"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	domain "github.com/BruksfildServices01/service-booking/internal/domain/user"
	"github.com/BruksfildServices01/service-booking/internal/infra/memstore"
)

func newTokens() *auth.Manager {
	return auth.NewManager("test-secret", time.Hour, "service-booking")
}

func register(t *testing.T, store *memstore.Store, in RegisterInput) *Session {
	t.Helper()

	s, err := NewRegister(store, newTokens(), nil).Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("register %s: %v", in.Email, err)
	}
	return s
}

func TestRegisterNormalizesEmailAndDefaultsRole(t *testing.T) {
	store := memstore.New()

	s := register(t, store, RegisterInput{
		Name:     "Ana",
		Email:    "  Ana@Example.COM ",
		Password: "secret123",
		Phone:    "555-0101",
	})

	if s.User.Email != "ana@example.com" {
		t.Fatalf("expected normalized email, got %q", s.User.Email)
	}
	if s.User.Role != "user" {
		t.Fatalf("expected default role user, got %q", s.User.Role)
	}
	if s.User.PasswordHash == "secret123" || s.User.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}

	claims, err := newTokens().Parse(s.Token)
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if id, _ := claims.UserID(); id != s.User.ID {
		t.Fatalf("expected subject %d, got %d", s.User.ID, id)
	}
}

func TestRegisterRejectsDuplicateEmailAnyCase(t *testing.T) {
	store := memstore.New()
	register(t, store, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})

	_, err := NewRegister(store, newTokens(), nil).Execute(context.Background(), RegisterInput{
		Name:     "Other",
		Email:    "ANA@example.com",
		Password: "another1",
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected email taken, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	store := memstore.New()
	uc := NewRegister(store, newTokens(), nil)

	if _, err := uc.Execute(context.Background(), RegisterInput{Email: "x@example.com", Password: "p"}); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected missing fields, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), RegisterInput{Name: "X", Email: "x@example.com", Password: "p", Role: "superuser"}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected invalid role, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	store := memstore.New()
	register(t, store, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})

	uc := NewLogin(store, newTokens())

	s, err := uc.Execute(context.Background(), " ANA@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if s.Token == "" {
		t.Fatalf("expected token")
	}

	_, wrongPass := uc.Execute(context.Background(), "ana@example.com", "nope")
	_, unknown := uc.Execute(context.Background(), "ghost@example.com", "secret123")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) || !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("expected identical invalid credentials, got %v / %v", wrongPass, unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("messages differ: %q vs %q", wrongPass.Error(), unknown.Error())
	}
}

func TestGetMe(t *testing.T) {
	store := memstore.New()
	s := register(t, store, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})

	u, err := NewGetMe(store).Execute(context.Background(), authz.Principal{UserID: s.User.ID, Role: authz.RoleUser})
	if err != nil || u.Email != "ana@example.com" {
		t.Fatalf("expected profile, got %+v (%v)", u, err)
	}
}

func TestUserAdministration(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	admin := register(t, store, RegisterInput{Name: "Root", Email: "root@example.com", Password: "secret123", Role: "admin"})
	ana := register(t, store, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})

	root := authz.Principal{UserID: admin.User.ID, Role: authz.RoleAdmin}
	plain := authz.Principal{UserID: ana.User.ID, Role: authz.RoleUser}

	if _, err := NewListUsers(store).Execute(ctx, plain); !errors.Is(err, authz.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	users, err := NewListUsers(store).Execute(ctx, root)
	if err != nil || len(users) != 2 {
		t.Fatalf("expected 2 users, got %d (%v)", len(users), err)
	}

	role := NewUpdateUserRole(store, nil)
	if _, err := role.Execute(ctx, root, ana.User.ID, "owner"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected invalid role, got %v", err)
	}
	if _, err := role.Execute(ctx, root, 9999, "admin"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	promoted, err := role.Execute(ctx, root, ana.User.ID, "admin")
	if err != nil || promoted.Role != "admin" {
		t.Fatalf("expected promotion, got %+v (%v)", promoted, err)
	}

	del := NewDeleteUser(store, nil)
	err = del.Execute(ctx, root, admin.User.ID)
	if !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected self delete guard, got %v", err)
	}
	if err.Error() != "Cannot delete your own account" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	if err := del.Execute(ctx, root, ana.User.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetUser(ctx, ana.User.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected user removed, got %v", err)
	}
}
