package persistent

import (
	"content-analytics/services/analytics/internal/entity"
	"content-analytics/services/analytics/internal/model"
)

const dateLayout = "2006-01-02"

// The To*Entities helpers always return a non-nil slice so an empty report
// serializes as [] rather than null.

func ToEngagementTrendEntities(models []model.EngagementTrendModel) []*entity.EngagementTrend {
	results := make([]*entity.EngagementTrend, len(models))
	for i, m := range models {
		results[i] = &entity.EngagementTrend{
			EngagementDate:   m.EngagementDate.Format(dateLayout),
			TotalEngagements: m.TotalEngagements,
		}
	}
	return results
}

func ToAuthorEngagementEntities(models []model.AuthorEngagementModel) []*entity.AuthorEngagement {
	results := make([]*entity.AuthorEngagement, len(models))
	for i, m := range models {
		results[i] = &entity.AuthorEngagement{
			AuthorID:         m.AuthorID,
			Name:             m.Name,
			TotalEngagements: m.TotalEngagements,
		}
	}
	return results
}

func ToEngagementPatternEntities(models []model.EngagementPatternModel) []*entity.EngagementPattern {
	results := make([]*entity.EngagementPattern, len(models))
	for i, m := range models {
		results[i] = &entity.EngagementPattern{
			DayOfWeek:        m.DayOfWeek,
			HourOfDay:        m.HourOfDay,
			TotalEngagements: m.TotalEngagements,
		}
	}
	return results
}

func ToAuthorEfficiencyEntities(models []model.AuthorEfficiencyModel) []*entity.AuthorEfficiency {
	results := make([]*entity.AuthorEfficiency, len(models))
	for i, m := range models {
		ratio := m.EngagementPerPost
		if m.PostCount == 0 {
			ratio = 0
		}
		results[i] = &entity.AuthorEfficiency{
			AuthorID:          m.AuthorID,
			Name:              m.Name,
			PostCount:         m.PostCount,
			TotalEngagements:  m.TotalEngagements,
			EngagementPerPost: ratio,
		}
	}
	return results
}

func ToWeeklyAuthorCategoryEntities(models []model.WeeklyAuthorCategoryModel) []*entity.WeeklyAuthorCategory {
	results := make([]*entity.WeeklyAuthorCategory, len(models))
	for i, m := range models {
		results[i] = &entity.WeeklyAuthorCategory{
			Week:             m.Week.Format(dateLayout),
			AuthorName:       m.AuthorName,
			Category:         m.Category,
			TotalEngagements: m.TotalEngagements,
		}
	}
	return results
}
