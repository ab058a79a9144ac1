// Package authz is the single authorization gate: every mutating use case
// resolves the caller to a Principal and checks an enumerated Permission
// (or an ownership predicate) before touching the store.
package authz

import (
	"github.com/BruksfildServices01/service-booking/internal/httperr"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole accepts only the two known roles.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

type Permission int

const (
	ManageCatalog Permission = iota + 1
	ViewAllBookings
	UpdateBookingStatus
	DeleteBooking
	ManageUsers
	ModerateReviews
	ViewAuditLogs
)

var permissionNames = map[Permission]string{
	ManageCatalog:       "manage_catalog",
	ViewAllBookings:     "view_all_bookings",
	UpdateBookingStatus: "update_booking_status",
	DeleteBooking:       "delete_booking",
	ManageUsers:         "manage_users",
	ModerateReviews:     "moderate_reviews",
	ViewAuditLogs:       "view_audit_logs",
}

func (p Permission) String() string {
	if name, ok := permissionNames[p]; ok {
		return name
	}
	return "unknown"
}

// grants lists the permissions of each role. Ordinary users hold none of
// the enumerated permissions; what they may do is covered by ownership.
var grants = map[Role]map[Permission]bool{
	RoleAdmin: {
		ManageCatalog:       true,
		ViewAllBookings:     true,
		UpdateBookingStatus: true,
		DeleteBooking:       true,
		ManageUsers:         true,
		ModerateReviews:     true,
		ViewAuditLogs:       true,
	},
	RoleUser: {},
}

// Principal is the authenticated caller.
type Principal struct {
	UserID uint
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func Can(role Role, perm Permission) bool {
	return grants[role][perm]
}

var ErrForbidden = httperr.ErrForbidden("forbidden", "Not authorized as an admin")

// Require fails with a Forbidden business error unless p holds perm.
func Require(p Principal, perm Permission) error {
	if p.UserID == 0 {
		return httperr.ErrUnauthorized("not_authenticated", "Not authorized, no token")
	}
	if !Can(p.Role, perm) {
		return ErrForbidden
	}
	return nil
}

func IsOwner(p Principal, ownerID uint) bool {
	return p.UserID != 0 && p.UserID == ownerID
}

// CanDeleteReview allows the review's author and anyone who moderates reviews.
func CanDeleteReview(p Principal, authorID uint) bool {
	return IsOwner(p, authorID) || Can(p.Role, ModerateReviews)
}
