package audit

import (
	"context"

	"github.com/BruksfildServices01/service-booking/internal/authz"
	"github.com/BruksfildServices01/service-booking/internal/models"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type ListLogs struct {
	store Store
}

func NewListLogs(store Store) *ListLogs {
	return &ListLogs{store: store}
}

func (uc *ListLogs) Execute(
	ctx context.Context,
	caller authz.Principal,
	filter Filter,
) ([]models.AuditLog, int64, error) {

	if err := authz.Require(caller, authz.ViewAuditLogs); err != nil {
		return nil, 0, err
	}

	if filter.Limit <= 0 || filter.Limit > MaxLimit {
		filter.Limit = DefaultLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return uc.store.ListAuditLogs(ctx, filter)
}
