package models

import "time"

type Author struct {
	AuthorID   int       `gorm:"column:author_id;primaryKey;autoIncrement:false" json:"author_id"`
	Name       string    `gorm:"column:name;type:varchar(255)" json:"name"`
	JoinedDate time.Time `gorm:"column:joined_date;type:date" json:"joined_date"`
	Category   string    `gorm:"column:author_category;type:varchar(50)" json:"author_category"`
}

func (Author) TableName() string {
	return "authors"
}
