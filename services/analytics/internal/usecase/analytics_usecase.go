package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"content-analytics/pkg/cache"
	"content-analytics/pkg/logger"
	"content-analytics/services/analytics/internal/entity"
	"content-analytics/services/analytics/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

// Report names double as cache key suffixes and export object names.
const (
	ReportEngagementTrend      = "engagement-trend"
	ReportTopAuthors           = "top-authors"
	ReportEngagementPatterns   = "engagement-patterns"
	ReportLowEngagementAuthors = "low-engagement-authors"
	ReportEngagementOverTime   = "engagement-over-time"
)

// OverTimeWindowMonths is the trailing window of GetEngagementOverTime.
const OverTimeWindowMonths = 3

type AnalyticsUseCase interface {
	GetEngagementTrend(ctx context.Context) ([]*entity.EngagementTrend, error)
	GetTopAuthors(ctx context.Context) ([]*entity.AuthorEngagement, error)
	GetEngagementPatterns(ctx context.Context) ([]*entity.EngagementPattern, error)
	GetLowEngagementAuthors(ctx context.Context) ([]*entity.AuthorEfficiency, error)
	GetEngagementOverTime(ctx context.Context) ([]*entity.WeeklyAuthorCategory, error)
}

type analyticsUseCase struct {
	analyticsRepo persistent.AnalyticsRepository
	redisClient   *redis.Client
	cacheTTL      time.Duration
	clock         func() time.Time
	logger        *logger.Logger
}

// NewAnalyticsUseCase wires the reports. redisClient may be nil, in which case
// every call goes to the database. clock defaults to time.Now.
func NewAnalyticsUseCase(analyticsRepo persistent.AnalyticsRepository, redisClient *redis.Client, cacheTTL time.Duration, clock func() time.Time, logger *logger.Logger) AnalyticsUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &analyticsUseCase{
		analyticsRepo: analyticsRepo,
		redisClient:   redisClient,
		cacheTTL:      cacheTTL,
		clock:         clock,
		logger:        logger,
	}
}

func (uc *analyticsUseCase) GetEngagementTrend(ctx context.Context) ([]*entity.EngagementTrend, error) {
	return cached(ctx, uc, ReportEngagementTrend, func() ([]*entity.EngagementTrend, error) {
		return uc.analyticsRepo.GetEngagementTrend(ctx)
	})
}

func (uc *analyticsUseCase) GetTopAuthors(ctx context.Context) ([]*entity.AuthorEngagement, error) {
	return cached(ctx, uc, ReportTopAuthors, func() ([]*entity.AuthorEngagement, error) {
		return uc.analyticsRepo.GetTopAuthors(ctx)
	})
}

func (uc *analyticsUseCase) GetEngagementPatterns(ctx context.Context) ([]*entity.EngagementPattern, error) {
	return cached(ctx, uc, ReportEngagementPatterns, func() ([]*entity.EngagementPattern, error) {
		return uc.analyticsRepo.GetEngagementPatterns(ctx)
	})
}

func (uc *analyticsUseCase) GetLowEngagementAuthors(ctx context.Context) ([]*entity.AuthorEfficiency, error) {
	return cached(ctx, uc, ReportLowEngagementAuthors, func() ([]*entity.AuthorEfficiency, error) {
		return uc.analyticsRepo.GetLowEngagementAuthors(ctx)
	})
}

func (uc *analyticsUseCase) GetEngagementOverTime(ctx context.Context) ([]*entity.WeeklyAuthorCategory, error) {
	now := uc.clock().UTC()
	since := MonthsBefore(now, OverTimeWindowMonths)
	return cachedAs(ctx, uc, ReportEngagementOverTime, OverTimeCacheKey(since, now), func() ([]*entity.WeeklyAuthorCategory, error) {
		return uc.analyticsRepo.GetEngagementOverTime(ctx, since, now)
	})
}

// MonthsBefore subtracts whole months the way PostgreSQL interval arithmetic
// does: the day is clamped to the end of the target month (May 31 minus three
// months is Feb 29 in a leap year), where time.AddDate would overflow.
func MonthsBefore(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month-time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

// OverTimeCacheKey names the cached engagement-over-time result for one
// [since, until] window.
func OverTimeCacheKey(since, until time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s", cache.AnalyticsKeyPrefix, ReportEngagementOverTime,
		since.UTC().Format(time.RFC3339Nano), until.UTC().Format(time.RFC3339Nano))
}

func cached[T any](ctx context.Context, uc *analyticsUseCase, report string, load func() ([]*T, error)) ([]*T, error) {
	return cachedAs(ctx, uc, report, cache.AnalyticsKeyPrefix+report, load)
}

func cachedAs[T any](ctx context.Context, uc *analyticsUseCase, report, key string, load func() ([]*T, error)) ([]*T, error) {

	if uc.redisClient != nil {
		data, err := uc.redisClient.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var rows []*T
			if err := json.Unmarshal(data, &rows); err == nil && rows != nil {
				return rows, nil
			}
			uc.logger.Warn("Discarding unreadable cache entry %s", key)
		case !errors.Is(err, redis.Nil):
			uc.logger.Warn("Failed to read cache %s: %v", key, err)
		}
	}

	rows, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", report, err)
	}
	if rows == nil {
		rows = []*T{}
	}

	if uc.redisClient != nil && uc.cacheTTL > 0 {
		if data, err := json.Marshal(rows); err == nil {
			if err := uc.redisClient.Set(ctx, key, data, uc.cacheTTL).Err(); err != nil {
				uc.logger.Warn("Failed to write cache %s: %v", key, err)
			}
		}
	}

	return rows, nil
}
