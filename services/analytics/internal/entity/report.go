package entity

// EngagementTrend is the number of engagements on one calendar date.
type EngagementTrend struct {
	EngagementDate   string `json:"engagement_date"`
	TotalEngagements int64  `json:"total_engagements"`
}

type AuthorEngagement struct {
	AuthorID         int    `json:"author_id"`
	Name             string `json:"name"`
	TotalEngagements int64  `json:"total_engagements"`
}

// EngagementPattern is one heatmap cell. DayOfWeek runs 0 (Sunday) to 6
// (Saturday), HourOfDay 0 to 23.
type EngagementPattern struct {
	DayOfWeek        int   `json:"day_of_week"`
	HourOfDay        int   `json:"hour_of_day"`
	TotalEngagements int64 `json:"total_engagements"`
}

// AuthorEfficiency relates posting volume to engagement. EngagementPerPost is
// 0 for authors without posts.
type AuthorEfficiency struct {
	AuthorID          int     `json:"author_id"`
	Name              string  `json:"name"`
	PostCount         int64   `json:"post_count"`
	TotalEngagements  int64   `json:"total_engagements"`
	EngagementPerPost float64 `json:"engagement_per_post"`
}

// WeeklyAuthorCategory counts engagements for one author and post category
// within the ISO week (Monday start) beginning on Week.
type WeeklyAuthorCategory struct {
	Week             string `json:"week"`
	AuthorName       string `json:"author_name"`
	Category         string `json:"category"`
	TotalEngagements int64  `json:"total_engagements"`
}
