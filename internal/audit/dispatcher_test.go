package audit_test

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/service-booking/internal/audit"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/infra/events"
	"github.com/BruksfildServices01/service-booking/internal/infra/memstore"
)

func TestDispatcherWritesAndPublishes(t *testing.T) {
	store := memstore.New()
	rec := events.NewRecorder()
	d := audit.NewDispatcher(audit.New(store), rec, nil)

	uid := uint(7)
	d.Dispatch(audit.Event{UserID: &uid, Action: "booking_created", Entity: "booking", EntityID: &uid, Metadata: map[string]any{"status": "pending"}})
	d.Dispatch(audit.Event{UserID: &uid, Action: "booking_deleted", Entity: "booking", EntityID: &uid})
	d.Close()

	logs, total, err := store.ListAuditLogs(context.Background(), audit.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(logs) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", total)
	}
	if logs[0].Action != "booking_deleted" {
		t.Fatalf("expected newest first, got %s", logs[0].Action)
	}
	if logs[1].Metadata != `{"status":"pending"}` {
		t.Fatalf("unexpected metadata %q", logs[1].Metadata)
	}

	types := rec.Types()
	if len(types) != 2 || types[0] != "booking_created" {
		t.Fatalf("unexpected published events %v", types)
	}
}

func TestDispatchAfterCloseIsIgnored(t *testing.T) {
	store := memstore.New()
	d := audit.NewDispatcher(audit.New(store), nil, nil)
	d.Close()
	d.Close()

	d.Dispatch(audit.Event{Action: "user_registered", Entity: "user"})

	_, total, _ := store.ListAuditLogs(context.Background(), audit.Filter{})
	if total != 0 {
		t.Fatalf("expected no entries after close, got %d", total)
	}

	var nilDispatcher *audit.Dispatcher
	nilDispatcher.Dispatch(audit.Event{Action: "noop"})
	nilDispatcher.Close()
}

func TestListLogsRequiresAdmin(t *testing.T) {
	store := memstore.New()
	uc := audit.NewListLogs(store)

	_, _, err := uc.Execute(context.Background(), authz.Principal{UserID: 1, Role: authz.RoleUser}, audit.Filter{})
	if !httperr.IsBusiness(err, "forbidden") {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestListLogsFiltersAndPages(t *testing.T) {
	store := memstore.New()
	logger := audit.New(store)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_ = logger.Log(ctx, nil, "service_created", "service", nil, nil)
	}
	_ = logger.Log(ctx, nil, "user_deleted", "user", nil, nil)

	uc := audit.NewListLogs(store)
	admin := authz.Principal{UserID: 1, Role: authz.RoleAdmin}

	logs, total, err := uc.Execute(ctx, admin, audit.Filter{Entity: "service", Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 || len(logs) != 2 {
		t.Fatalf("expected page of 2 out of 5, got %d of %d", len(logs), total)
	}

	logs, _, _ = uc.Execute(ctx, admin, audit.Filter{Limit: 10000})
	if len(logs) != 6 {
		t.Fatalf("oversized limit should clamp to default, got %d", len(logs))
	}
}
