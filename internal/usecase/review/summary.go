package review

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/service-booking/internal/domain/review"
	"github.com/BruksfildServices01/service-booking/internal/infra/cache"
)

func SummaryCacheKey(serviceID uint) string {
	return fmt.Sprintf("reviews:summary:%d", serviceID)
}

type RatingSummary struct {
	repo  domain.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewRatingSummary(repo domain.Repository, c cache.Cache, ttl time.Duration) *RatingSummary {
	if c == nil {
		c = cache.NewNoop()
	}
	return &RatingSummary{repo: repo, cache: c, ttl: ttl}
}

func (uc *RatingSummary) Execute(ctx context.Context, serviceID uint) (domain.Summary, error) {
	key := SummaryCacheKey(serviceID)

	var cached domain.Summary
	if cache.GetJSON(ctx, uc.cache, key, &cached) {
		return cached, nil
	}

	count, sum, err := uc.repo.RatingTotals(ctx, serviceID)
	if err != nil {
		return domain.Summary{}, err
	}

	s := domain.NewSummary(serviceID, count, sum)
	cache.SetJSON(ctx, uc.cache, key, s, uc.ttl)
	return s, nil
}
