package review

import (
	"context"

	"github.com/BruksfildServices01/service-booking/internal/audit"
	"github.com/BruksfildServices01/service-booking/internal/authz"
	domain "github.com/BruksfildServices01/service-booking/internal/domain/review"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/infra/cache"
)

type DeleteReview struct {
	repo  domain.Repository
	cache cache.Cache
	audit *audit.Dispatcher
}

func NewDeleteReview(
	repo domain.Repository,
	c cache.Cache,
	audit *audit.Dispatcher,
) *DeleteReview {
	if c == nil {
		c = cache.NewNoop()
	}
	return &DeleteReview{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

// Execute removes a review. Only its author or a moderator may do so.
func (uc *DeleteReview) Execute(
	ctx context.Context,
	caller authz.Principal,
	reviewID uint,
) error {

	if caller.UserID == 0 {
		return httperr.ErrUnauthorized("not_authenticated", "Not authorized, no token")
	}

	r, err := uc.repo.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}

	if !authz.CanDeleteReview(caller, r.UserID) {
		return domain.ErrNotReviewAuthor
	}

	if err := uc.repo.DeleteReview(ctx, r.ID); err != nil {
		return err
	}

	_ = uc.cache.Delete(ctx, SummaryCacheKey(r.ServiceID))

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.UserID,
		Action:   "review_deleted",
		Entity:   "review",
		EntityID: &r.ID,
		Metadata: map[string]any{
			"author_id":  r.UserID,
			"service_id": r.ServiceID,
		},
	})

	return nil
}
