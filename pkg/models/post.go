package models

import (
	"time"

	"github.com/lib/pq"
)

type Post struct {
	PostID           int       `gorm:"column:post_id;primaryKey;autoIncrement:false" json:"post_id"`
	AuthorID         int       `gorm:"column:author_id;not null" json:"author_id"`
	Category         string    `gorm:"column:category;type:varchar(50)" json:"category"`
	PublishTimestamp time.Time `gorm:"column:publish_timestamp;type:timestamp" json:"publish_timestamp"`
	Title            string    `gorm:"column:title;type:varchar(255)" json:"title"`
	ContentLength    int       `gorm:"column:content_length" json:"content_length"`
	HasMedia         bool      `gorm:"column:has_media" json:"has_media"`
}

func (Post) TableName() string {
	return "posts"
}

// PostMetadata is kept one-to-one with Post. Tags may repeat.
type PostMetadata struct {
	PostID     int            `gorm:"column:post_id;primaryKey;autoIncrement:false" json:"post_id"`
	Tags       pq.StringArray `gorm:"column:tags;type:text[]" json:"tags"`
	IsPromoted bool           `gorm:"column:is_promoted" json:"is_promoted"`
	Language   string         `gorm:"column:language;type:varchar(10)" json:"language"`
}

func (PostMetadata) TableName() string {
	return "post_metadata"
}
