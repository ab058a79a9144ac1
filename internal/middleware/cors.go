package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-booking/internal/httperr"
)

const (
	corsAllowMethods  = "GET, POST, PUT, DELETE"
	corsAllowHeaders  = "Authorization, Content-Type, " + HeaderRequestID
	corsExposeHeaders = HeaderRequestID + ", Retry-After"
	corsMaxAge        = "600"
)

// CORSMiddleware admits browser calls from the frontend. allowedOrigins is
// "*" or a comma-separated list of origins. Sessions travel as bearer
// tokens, so credentialed requests are never enabled.
func CORSMiddleware(allowedOrigins string) gin.HandlerFunc {
	allowAll := strings.TrimSpace(allowedOrigins) == "*"

	origins := make(map[string]bool)
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins[o] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := origin != "" && (allowAll || origins[origin])

		if allowed {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
		}

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		if origin != "" && !allowed {
			httperr.Abort(c, http.StatusForbidden, "origin_not_allowed", "Origin not allowed")
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		h.Set("Access-Control-Max-Age", corsMaxAge)
		c.AbortWithStatus(http.StatusNoContent)
	}
}
