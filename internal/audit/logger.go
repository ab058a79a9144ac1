package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/service-booking/internal/models"
)

// Store persists audit entries and lists them back for admins.
type Store interface {
	CreateAuditLog(ctx context.Context, entry *models.AuditLog) error
	ListAuditLogs(ctx context.Context, filter Filter) ([]models.AuditLog, int64, error)
}

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(
	ctx context.Context,
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.store.CreateAuditLog(ctx, &entry)
}
