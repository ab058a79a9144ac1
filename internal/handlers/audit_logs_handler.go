package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-booking/internal/audit"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/httpresp"
	"github.com/BruksfildServices01/service-booking/internal/middleware"
	"github.com/BruksfildServices01/service-booking/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	list *audit.ListLogs
}

func NewAuditLogsHandler(list *audit.ListLogs) *AuditLogsHandler {
	return &AuditLogsHandler{list: list}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > audit.MaxLimit {
		limit = audit.DefaultLimit
	}

	filter := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	// --------------------------------------------------
	// Optional date window, "to" is inclusive
	// --------------------------------------------------

	if from, err := time.Parse(timezone.DateLayout, c.Query("from")); err == nil {
		filter.From = &from
	}
	if to, err := time.Parse(timezone.DateLayout, c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		filter.To = &end
	}

	logs, total, err := h.list.Execute(c.Request.Context(), middleware.PrincipalFrom(c), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, page, limit, total, logs)
}
