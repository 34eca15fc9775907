package seed

import (
	"context"
	"fmt"
	"time"

	"content-analytics/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const batchSize = 1000

// Summary describes a committed rebuild.
type Summary struct {
	RunID       string    `json:"run_id"`
	Seed        uint64    `json:"seed"`
	Now         time.Time `json:"now"`
	Authors     int       `json:"authors"`
	Users       int       `json:"users"`
	Posts       int       `json:"posts"`
	Metadata    int       `json:"post_metadata"`
	Engagements int       `json:"engagements"`
	Duration    string    `json:"duration"`
}

// Rebuild generates a fresh dataset and replaces the schema and all rows in a
// single transaction. On error nothing is committed and the previous dataset
// stays in place.
func Rebuild(ctx context.Context, db *gorm.DB, gen *Generator, log *logger.Logger) (*Summary, error) {
	started := time.Now()

	dataset, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}

	summary := &Summary{
		RunID:       uuid.New().String(),
		Seed:        gen.Seed(),
		Now:         gen.Now(),
		Authors:     len(dataset.Authors),
		Users:       len(dataset.Users),
		Posts:       len(dataset.Posts),
		Metadata:    len(dataset.Metadata),
		Engagements: len(dataset.Engagements),
	}
	log.Info("Rebuild %s: generated dataset as of %s", summary.RunID, summary.Now.Format(time.RFC3339))

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		log.Info("Dropping existing tables...")
		if err := DropSchema(tx); err != nil {
			return err
		}

		log.Info("Creating tables...")
		if err := CreateSchema(tx); err != nil {
			return err
		}

		log.Info("Inserting data...")
		if err := insertBatches(tx, dataset.Authors); err != nil {
			return fmt.Errorf("failed to insert authors: %w", err)
		}
		log.Info("Inserted %d authors.", summary.Authors)

		if err := insertBatches(tx, dataset.Users); err != nil {
			return fmt.Errorf("failed to insert users: %w", err)
		}
		log.Info("Inserted %d users.", summary.Users)

		if err := insertBatches(tx, dataset.Posts); err != nil {
			return fmt.Errorf("failed to insert posts: %w", err)
		}
		if err := insertBatches(tx, dataset.Metadata); err != nil {
			return fmt.Errorf("failed to insert post metadata: %w", err)
		}
		log.Info("Inserted %d posts and metadata entries.", summary.Posts)

		if err := insertBatches(tx, dataset.Engagements); err != nil {
			return fmt.Errorf("failed to insert engagements: %w", err)
		}
		log.Info("Inserted %d engagements.", summary.Engagements)

		log.Info("Creating indexes for performance optimization...")
		return CreateIndexes(tx)
	})
	if err != nil {
		return nil, err
	}

	summary.Duration = time.Since(started).Round(time.Millisecond).String()
	log.Info("Database setup complete in %s.", summary.Duration)
	return summary, nil
}

func insertBatches[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(&rows, batchSize).Error
}
