package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-booking/internal/httperr"
)

// --------------------------------------------------
// Request helpers
// --------------------------------------------------

// paramID reads a positive numeric path parameter. On failure it writes a
// 400 and reports false.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// queryID reads the first non-empty query parameter among names. A missing
// value yields nil; a malformed one writes a 400.
func queryID(c *gin.Context, names ...string) (*uint, bool) {
	for _, name := range names {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			httperr.BadRequest(c, "invalid_id", "Invalid "+name)
			return nil, false
		}
		v := uint(id)
		return &v, true
	}
	return nil, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return false
	}
	return true
}
