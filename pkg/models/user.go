package models

import "time"

type User struct {
	UserID     int       `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	SignupDate time.Time `gorm:"column:signup_date;type:date" json:"signup_date"`
	Country    string    `gorm:"column:country;type:varchar(50)" json:"country"`
	Segment    string    `gorm:"column:user_segment;type:varchar(50)" json:"user_segment"`
}

func (User) TableName() string {
	return "users"
}
