package persistent

import (
	"context"
	"time"

	"content-analytics/pkg/models"
	"content-analytics/services/analytics/internal/entity"
	"content-analytics/services/analytics/internal/model"

	"gorm.io/gorm"
)

type AnalyticsRepository interface {
	GetEngagementTrend(ctx context.Context) ([]*entity.EngagementTrend, error)
	GetTopAuthors(ctx context.Context) ([]*entity.AuthorEngagement, error)
	GetEngagementPatterns(ctx context.Context) ([]*entity.EngagementPattern, error)
	GetLowEngagementAuthors(ctx context.Context) ([]*entity.AuthorEfficiency, error)
	GetEngagementOverTime(ctx context.Context, since, until time.Time) ([]*entity.WeeklyAuthorCategory, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetEngagementTrend(ctx context.Context) ([]*entity.EngagementTrend, error) {
	var rows []model.EngagementTrendModel
	err := r.db.WithContext(ctx).Model(&models.Engagement{}).
		Select("DATE(engaged_timestamp) AS engagement_date, COUNT(engagement_id) AS total_engagements").
		Group("engagement_date").
		Order("engagement_date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return ToEngagementTrendEntities(rows), nil
}

// GetTopAuthors only lists authors with at least one engagement. Equal counts
// are ordered by author id.
func (r *analyticsRepository) GetTopAuthors(ctx context.Context) ([]*entity.AuthorEngagement, error) {
	var rows []model.AuthorEngagementModel
	err := r.db.WithContext(ctx).Table("engagements e").
		Select("a.author_id, a.name, COUNT(e.engagement_id) AS total_engagements").
		Joins("JOIN posts p ON e.post_id = p.post_id").
		Joins("JOIN authors a ON p.author_id = a.author_id").
		Group("a.author_id, a.name").
		Order("total_engagements DESC, a.author_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return ToAuthorEngagementEntities(rows), nil
}

// GetEngagementPatterns uses PostgreSQL's DOW numbering, 0 = Sunday.
func (r *analyticsRepository) GetEngagementPatterns(ctx context.Context) ([]*entity.EngagementPattern, error) {
	var rows []model.EngagementPatternModel
	err := r.db.WithContext(ctx).Model(&models.Engagement{}).
		Select("EXTRACT(DOW FROM engaged_timestamp)::int AS day_of_week, " +
			"EXTRACT(HOUR FROM engaged_timestamp)::int AS hour_of_day, " +
			"COUNT(engagement_id) AS total_engagements").
		Group("day_of_week, hour_of_day").
		Order("day_of_week, hour_of_day").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return ToEngagementPatternEntities(rows), nil
}

const lowEngagementAuthorsQuery = `
	WITH author_stats AS (
		SELECT
			a.author_id,
			a.name,
			COUNT(DISTINCT p.post_id) AS post_count,
			COUNT(e.engagement_id) AS total_engagements
		FROM authors a
		LEFT JOIN posts p ON a.author_id = p.author_id
		LEFT JOIN engagements e ON p.post_id = e.post_id
		GROUP BY a.author_id, a.name
	)
	SELECT
		author_id,
		name,
		post_count,
		total_engagements,
		CASE
			WHEN post_count > 0 THEN total_engagements::FLOAT / post_count
			ELSE 0
		END AS engagement_per_post
	FROM author_stats
	ORDER BY post_count DESC, engagement_per_post ASC, author_id ASC`

// GetLowEngagementAuthors includes authors without posts, with a ratio of 0.
func (r *analyticsRepository) GetLowEngagementAuthors(ctx context.Context) ([]*entity.AuthorEfficiency, error) {
	var rows []model.AuthorEfficiencyModel
	if err := r.db.WithContext(ctx).Raw(lowEngagementAuthorsQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return ToAuthorEfficiencyEntities(rows), nil
}

const engagementOverTimeQuery = `
	SELECT
		DATE_TRUNC('week', e.engaged_timestamp)::DATE AS week,
		a.name AS author_name,
		p.category,
		COUNT(e.engagement_id) AS total_engagements
	FROM engagements e
	JOIN posts p ON e.post_id = p.post_id
	JOIN authors a ON p.author_id = a.author_id
	WHERE e.engaged_timestamp >= ? AND e.engaged_timestamp <= ?
	GROUP BY week, author_name, p.category
	ORDER BY week, author_name, p.category`

// GetEngagementOverTime buckets engagements in [since, until] by ISO week
// (Monday start), author and post category.
func (r *analyticsRepository) GetEngagementOverTime(ctx context.Context, since, until time.Time) ([]*entity.WeeklyAuthorCategory, error) {
	var rows []model.WeeklyAuthorCategoryModel
	err := r.db.WithContext(ctx).
		Raw(engagementOverTimeQuery, since.UTC(), until.UTC()).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return ToWeeklyAuthorCategoryEntities(rows), nil
}
