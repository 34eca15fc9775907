package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"time"

	"content-analytics/pkg/logger"
	"content-analytics/services/analytics/internal/usecase"

	"github.com/google/uuid"
)

const (
	keyPrefix    = "reports"
	manifestName = "manifest.json"
	contentType  = "application/json"
)

// ObjectStore is the subset of the S3 client the exporter needs.
type ObjectStore interface {
	UploadFile(key string, body io.ReadSeeker, contentType string) (string, error)
	DeleteFile(key string) error
}

type ReportObject struct {
	Name string `json:"name"`
	Key  string `json:"key"`
	URL  string `json:"url"`
	Rows int    `json:"rows"`
}

type Manifest struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Reports     []ReportObject `json:"reports"`
	Key         string         `json:"-"`
	URL         string         `json:"-"`
}

type Exporter struct {
	analyticsUseCase usecase.AnalyticsUseCase
	store            ObjectStore
	clock            func() time.Time
	logger           *logger.Logger
}

func NewExporter(analyticsUseCase usecase.AnalyticsUseCase, store ObjectStore, clock func() time.Time, logger *logger.Logger) *Exporter {
	if clock == nil {
		clock = time.Now
	}
	return &Exporter{
		analyticsUseCase: analyticsUseCase,
		store:            store,
		clock:            clock,
		logger:           logger,
	}
}

type report struct {
	name string
	load func(ctx context.Context) (any, int, error)
}

func loader[T any](get func(context.Context) ([]*T, error)) func(ctx context.Context) (any, int, error) {
	return func(ctx context.Context) (any, int, error) {
		rows, err := get(ctx)
		if err != nil {
			return nil, 0, err
		}
		if rows == nil {
			rows = []*T{}
		}
		return rows, len(rows), nil
	}
}

func (e *Exporter) reports() []report {
	uc := e.analyticsUseCase
	return []report{
		{usecase.ReportEngagementTrend, loader(uc.GetEngagementTrend)},
		{usecase.ReportTopAuthors, loader(uc.GetTopAuthors)},
		{usecase.ReportEngagementPatterns, loader(uc.GetEngagementPatterns)},
		{usecase.ReportLowEngagementAuthors, loader(uc.GetLowEngagementAuthors)},
		{usecase.ReportEngagementOverTime, loader(uc.GetEngagementOverTime)},
	}
}

// Run uploads every report under reports/<run-id>/ followed by the manifest.
// If any step fails the objects already written for the run are removed.
func (e *Exporter) Run(ctx context.Context) (*Manifest, error) {
	manifest := &Manifest{
		RunID:       uuid.New().String(),
		GeneratedAt: e.clock().UTC(),
		Reports:     make([]ReportObject, 0, 5),
	}
	prefix := path.Join(keyPrefix, manifest.RunID)

	var uploaded []string
	fail := func(err error) (*Manifest, error) {
		for _, key := range uploaded {
			if derr := e.store.DeleteFile(key); derr != nil {
				e.logger.Warn("Failed to remove %s after aborted export: %v", key, derr)
			}
		}
		return nil, err
	}

	for _, r := range e.reports() {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		rows, n, err := r.load(ctx)
		if err != nil {
			return fail(fmt.Errorf("failed to export %s: %w", r.name, err))
		}

		key := path.Join(prefix, r.name+".json")
		url, err := e.upload(key, rows)
		if err != nil {
			return fail(fmt.Errorf("failed to export %s: %w", r.name, err))
		}
		uploaded = append(uploaded, key)

		manifest.Reports = append(manifest.Reports, ReportObject{Name: r.name, Key: key, URL: url, Rows: n})
		e.logger.Info("Exported %s (%d rows) to %s", r.name, n, key)
	}

	manifest.Key = path.Join(prefix, manifestName)
	url, err := e.upload(manifest.Key, manifest)
	if err != nil {
		return fail(fmt.Errorf("failed to export manifest: %w", err))
	}
	manifest.URL = url

	e.logger.Info("Export %s complete: %s", manifest.RunID, manifest.URL)
	return manifest, nil
}

func (e *Exporter) upload(key string, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return e.store.UploadFile(key, bytes.NewReader(data), contentType)
}
