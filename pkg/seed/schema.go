package seed

import (
	"fmt"

	"gorm.io/gorm"
)

// Drop order follows dependents first; CASCADE covers anything left over.
var dropOrder = []string{"users", "post_metadata", "engagements", "posts", "authors"}

var createStatements = []string{
	`CREATE TABLE authors (
		author_id INT PRIMARY KEY,
		name VARCHAR(255),
		joined_date DATE,
		author_category VARCHAR(50)
	)`,
	`CREATE TABLE posts (
		post_id INT PRIMARY KEY,
		author_id INT NOT NULL REFERENCES authors(author_id),
		category VARCHAR(50),
		publish_timestamp TIMESTAMP,
		title VARCHAR(255),
		content_length INT CHECK (content_length > 0),
		has_media BOOLEAN
	)`,
	`CREATE TABLE users (
		user_id INT PRIMARY KEY,
		signup_date DATE,
		country VARCHAR(50),
		user_segment VARCHAR(50)
	)`,
	`CREATE TABLE engagements (
		engagement_id BIGSERIAL PRIMARY KEY,
		post_id INT NOT NULL REFERENCES posts(post_id),
		type VARCHAR(10) CHECK (type IN ('view', 'like', 'comment', 'share')),
		user_id INT NOT NULL REFERENCES users(user_id),
		engaged_timestamp TIMESTAMP
	)`,
	`CREATE TABLE post_metadata (
		post_id INT PRIMARY KEY REFERENCES posts(post_id),
		tags TEXT[],
		is_promoted BOOLEAN,
		language VARCHAR(10)
	)`,
}

var indexStatements = []string{
	`CREATE INDEX idx_posts_author_id ON posts(author_id)`,
	`CREATE INDEX idx_engagements_post_id ON engagements(post_id)`,
	`CREATE INDEX idx_engagements_timestamp ON engagements(engaged_timestamp DESC)`,
}

// Tables lists the schema's tables in creation order.
func Tables() []string {
	return []string{"authors", "posts", "users", "engagements", "post_metadata"}
}

// DropSchema destroys all data. Tables that do not exist are skipped.
func DropSchema(tx *gorm.DB) error {
	for _, table := range dropOrder {
		if err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}

func CreateSchema(tx *gorm.DB) error {
	for _, stmt := range createStatements {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func CreateIndexes(tx *gorm.DB) error {
	for _, stmt := range indexStatements {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}
