package user

import (
	"context"

	"github.com/BruksfildServices01/service-booking/internal/audit"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	domain "github.com/BruksfildServices01/service-booking/internal/domain/user"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(ctx context.Context, caller authz.Principal) ([]models.User, error) {
	if err := authz.Require(caller, authz.ManageUsers); err != nil {
		return nil, err
	}
	return uc.repo.ListUsers(ctx)
}

// ======================================================
// ROLE
// ======================================================

type UpdateUserRole struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateUserRole(repo domain.Repository, audit *audit.Dispatcher) *UpdateUserRole {
	return &UpdateUserRole{repo: repo, audit: audit}
}

func (uc *UpdateUserRole) Execute(
	ctx context.Context,
	caller authz.Principal,
	userID uint,
	role string,
) (*models.User, error) {

	if err := authz.Require(caller, authz.ManageUsers); err != nil {
		return nil, err
	}

	r, ok := authz.ParseRole(role)
	if !ok {
		return nil, domain.ErrInvalidRole
	}

	u, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	from := u.Role
	if err := uc.repo.UpdateUserRole(ctx, u.ID, string(r)); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "user_role_changed",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"from": from, "to": string(r)},
	})

	return uc.repo.GetUser(ctx, u.ID)
}

// ======================================================
// DELETE
// ======================================================

type DeleteUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteUser(repo domain.Repository, audit *audit.Dispatcher) *DeleteUser {
	return &DeleteUser{repo: repo, audit: audit}
}

func (uc *DeleteUser) Execute(
	ctx context.Context,
	caller authz.Principal,
	userID uint,
) error {

	if err := authz.Require(caller, authz.ManageUsers); err != nil {
		return err
	}

	u, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if u.ID == caller.UserID {
		return domain.ErrSelfDelete
	}

	if err := uc.repo.DeleteUser(ctx, u.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"email": u.Email},
	})

	return nil
}
