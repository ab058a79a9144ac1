package authz

import (
	"testing"

	"github.com/BruksfildServices01/service-booking/internal/httperr"
)

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("admin"); !ok || r != RoleAdmin {
		t.Fatalf("expected admin role")
	}
	if r, ok := ParseRole("user"); !ok || r != RoleUser {
		t.Fatalf("expected user role")
	}
	for _, bad := range []string{"", "Admin", "superuser", "owner"} {
		if _, ok := ParseRole(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestAdminHoldsEveryPermission(t *testing.T) {
	for perm := range permissionNames {
		if !Can(RoleAdmin, perm) {
			t.Fatalf("admin should hold %s", perm)
		}
		if Can(RoleUser, perm) {
			t.Fatalf("user should not hold %s", perm)
		}
	}
}

func TestRequire(t *testing.T) {
	admin := Principal{UserID: 1, Role: RoleAdmin}
	user := Principal{UserID: 2, Role: RoleUser}

	if err := Require(admin, DeleteBooking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := Require(user, DeleteBooking)
	if kind, _ := httperr.KindOf(err); kind != httperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}

	err = Require(Principal{}, DeleteBooking)
	if kind, _ := httperr.KindOf(err); kind != httperr.KindUnauthorized {
		t.Fatalf("expected unauthorized for anonymous caller, got %v", err)
	}
}

func TestCanDeleteReview(t *testing.T) {
	author := Principal{UserID: 7, Role: RoleUser}
	other := Principal{UserID: 8, Role: RoleUser}
	admin := Principal{UserID: 1, Role: RoleAdmin}

	if !CanDeleteReview(author, 7) {
		t.Fatalf("author should delete own review")
	}
	if CanDeleteReview(other, 7) {
		t.Fatalf("other users must not delete the review")
	}
	if !CanDeleteReview(admin, 7) {
		t.Fatalf("admin should delete any review")
	}
	if IsOwner(Principal{}, 0) {
		t.Fatalf("anonymous caller owns nothing")
	}
}
