package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-booking/internal/auth"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	"github.com/BruksfildServices01/service-booking/internal/domain/user"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
)

const (
	ContextPrincipal = "principal"
)

// AuthMiddleware resolves the bearer token to a stored user. The role is
// taken from the store, not the token, so demotions apply immediately.
func AuthMiddleware(tokens *auth.Manager, users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Not authorized, no token")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Not authorized, no token")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Not authorized, token failed")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token_payload", "Not authorized, token failed")
			return
		}

		u, err := users.GetUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				httperr.Abort(c, http.StatusUnauthorized, "user_not_found", "Not authorized, user not found")
				return
			}
			httperr.Abort(c, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		role, ok := authz.ParseRole(u.Role)
		if !ok {
			role = authz.RoleUser
		}

		c.Set(ContextPrincipal, authz.Principal{UserID: u.ID, Role: role})
		c.Next()
	}
}

// PrincipalFrom returns the caller resolved by AuthMiddleware, or the zero
// Principal on public routes.
func PrincipalFrom(c *gin.Context) authz.Principal {
	if v, ok := c.Get(ContextPrincipal); ok {
		if p, ok := v.(authz.Principal); ok {
			return p
		}
	}
	return authz.Principal{}
}

// RequirePermission gates a route group on a single permission.
func RequirePermission(perm authz.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authz.Require(PrincipalFrom(c), perm); err != nil {
			httperr.Respond(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
