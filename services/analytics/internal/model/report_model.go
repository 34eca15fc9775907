package model

import "time"

type EngagementTrendModel struct {
	EngagementDate   time.Time `gorm:"column:engagement_date"`
	TotalEngagements int64     `gorm:"column:total_engagements"`
}

type AuthorEngagementModel struct {
	AuthorID         int    `gorm:"column:author_id"`
	Name             string `gorm:"column:name"`
	TotalEngagements int64  `gorm:"column:total_engagements"`
}

type EngagementPatternModel struct {
	DayOfWeek        int   `gorm:"column:day_of_week"`
	HourOfDay        int   `gorm:"column:hour_of_day"`
	TotalEngagements int64 `gorm:"column:total_engagements"`
}

type AuthorEfficiencyModel struct {
	AuthorID          int     `gorm:"column:author_id"`
	Name              string  `gorm:"column:name"`
	PostCount         int64   `gorm:"column:post_count"`
	TotalEngagements  int64   `gorm:"column:total_engagements"`
	EngagementPerPost float64 `gorm:"column:engagement_per_post"`
}

type WeeklyAuthorCategoryModel struct {
	Week             time.Time `gorm:"column:week"`
	AuthorName       string    `gorm:"column:author_name"`
	Category         string    `gorm:"column:category"`
	TotalEngagements int64     `gorm:"column:total_engagements"`
}
