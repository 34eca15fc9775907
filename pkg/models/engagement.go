package models

import "time"

type EngagementType string

const (
	EngagementView    EngagementType = "view"
	EngagementLike    EngagementType = "like"
	EngagementComment EngagementType = "comment"
	EngagementShare   EngagementType = "share"
)

// EngagementTypes lists every value accepted by the engagements.type check constraint.
var EngagementTypes = []EngagementType{
	EngagementView,
	EngagementLike,
	EngagementComment,
	EngagementShare,
}

func (t EngagementType) Valid() bool {
	for _, v := range EngagementTypes {
		if v == t {
			return true
		}
	}
	return false
}

type Engagement struct {
	// Assigned by the engagements sequence on insert.
	EngagementID     int64          `gorm:"column:engagement_id;primaryKey;autoIncrement" json:"engagement_id"`
	PostID           int            `gorm:"column:post_id;not null" json:"post_id"`
	Type             EngagementType `gorm:"column:type;type:varchar(10)" json:"type"`
	UserID           int            `gorm:"column:user_id;not null" json:"user_id"`
	EngagedTimestamp time.Time      `gorm:"column:engaged_timestamp;type:timestamp" json:"engaged_timestamp"`
}

func (Engagement) TableName() string {
	return "engagements"
}
