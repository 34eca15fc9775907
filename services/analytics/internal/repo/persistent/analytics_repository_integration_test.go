//go:build integration

package persistent

import (
	"context"
	"io"
	"testing"
	"time"

	"content-analytics/pkg/logger"
	"content-analytics/pkg/models"
	"content-analytics/pkg/seed"
	"content-analytics/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixtureNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	t  *testing.T
	db *gorm.DB
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewPostgres(t)
	require.NoError(t, seed.CreateSchema(db))
	require.NoError(t, db.Create(&models.User{UserID: 1, SignupDate: fixtureNow, Country: "US", Segment: "free"}).Error)
	return &fixture{t: t, db: db}
}

func (f *fixture) author(id int, name string) {
	require.NoError(f.t, f.db.Create(&models.Author{AuthorID: id, Name: name, JoinedDate: fixtureNow, Category: "Tech"}).Error)
}

func (f *fixture) post(id, authorID int, category string) {
	require.NoError(f.t, f.db.Create(&models.Post{
		PostID:           id,
		AuthorID:         authorID,
		Category:         category,
		PublishTimestamp: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
		Title:            "Post",
		ContentLength:    500,
	}).Error)
}

func (f *fixture) engagements(postID, n int, at time.Time) {
	rows := make([]models.Engagement, n)
	for i := range rows {
		rows[i] = models.Engagement{PostID: postID, UserID: 1, Type: models.EngagementView, EngagedTimestamp: at}
	}
	require.NoError(f.t, f.db.Create(&rows).Error)
}

func TestGetTopAuthors_OrderedByCount(t *testing.T) {
	f := newFixture(t)
	f.author(1, "A")
	f.author(2, "B")
	f.post(1, 1, "Tech")
	f.post(2, 2, "Tech")
	f.engagements(1, 10, fixtureNow.AddDate(0, 0, -1))
	f.engagements(2, 25, fixtureNow.AddDate(0, 0, -1))

	repo := NewAnalyticsRepository(f.db)
	result, err := repo.GetTopAuthors(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "B", result[0].Name)
	assert.Equal(t, int64(25), result[0].TotalEngagements)
	assert.Equal(t, "A", result[1].Name)
	assert.Equal(t, int64(10), result[1].TotalEngagements)
}

func TestGetTopAuthors_TiesByAuthorID(t *testing.T) {
	f := newFixture(t)
	f.author(2, "Second")
	f.author(1, "First")
	f.author(3, "Silent")
	f.post(1, 2, "Tech")
	f.post(2, 1, "Tech")
	f.engagements(1, 5, fixtureNow)
	f.engagements(2, 5, fixtureNow)

	result, err := NewAnalyticsRepository(f.db).GetTopAuthors(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, 1, result[0].AuthorID)
	assert.Equal(t, 2, result[1].AuthorID)
}

func TestGetEngagementTrend_GroupsByDate(t *testing.T) {
	f := newFixture(t)
	f.author(1, "A")
	f.post(1, 1, "Tech")
	f.engagements(1, 1, time.Date(2024, time.January, 2, 23, 59, 0, 0, time.UTC))
	f.engagements(1, 2, time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC))
	f.engagements(1, 1, time.Date(2024, time.January, 1, 20, 0, 0, 0, time.UTC))

	result, err := NewAnalyticsRepository(f.db).GetEngagementTrend(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "2024-01-01", result[0].EngagementDate)
	assert.Equal(t, int64(3), result[0].TotalEngagements)
	assert.Equal(t, "2024-01-02", result[1].EngagementDate)
	assert.Equal(t, int64(1), result[1].TotalEngagements)
}

func TestGetEngagementPatterns_SundayIsZero(t *testing.T) {
	f := newFixture(t)
	f.author(1, "A")
	f.post(1, 1, "Tech")
	// 2024-01-07 is a Sunday, 2024-01-08 a Monday.
	f.engagements(1, 2, time.Date(2024, time.January, 8, 9, 15, 0, 0, time.UTC))
	f.engagements(1, 1, time.Date(2024, time.January, 7, 22, 0, 0, 0, time.UTC))
	f.engagements(1, 4, time.Date(2024, time.January, 7, 3, 30, 0, 0, time.UTC))

	result, err := NewAnalyticsRepository(f.db).GetEngagementPatterns(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 3)
	assert.Equal(t, [3]int64{0, 3, 4}, [3]int64{int64(result[0].DayOfWeek), int64(result[0].HourOfDay), result[0].TotalEngagements})
	assert.Equal(t, [3]int64{0, 22, 1}, [3]int64{int64(result[1].DayOfWeek), int64(result[1].HourOfDay), result[1].TotalEngagements})
	assert.Equal(t, [3]int64{1, 9, 2}, [3]int64{int64(result[2].DayOfWeek), int64(result[2].HourOfDay), result[2].TotalEngagements})
}

func TestGetLowEngagementAuthors_IncludesAuthorsWithoutPosts(t *testing.T) {
	f := newFixture(t)
	f.author(1, "Prolific")
	f.author(2, "Popular")
	f.author(3, "X")
	f.post(1, 1, "Tech")
	f.post(2, 1, "Tech")
	f.post(3, 1, "DIY")
	f.post(4, 2, "Tech")
	f.engagements(1, 3, fixtureNow)
	f.engagements(4, 9, fixtureNow)

	result, err := NewAnalyticsRepository(f.db).GetLowEngagementAuthors(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 3)
	assert.Equal(t, "Prolific", result[0].Name)
	assert.Equal(t, int64(3), result[0].PostCount)
	assert.Equal(t, int64(3), result[0].TotalEngagements)
	assert.InDelta(t, 1.0, result[0].EngagementPerPost, 1e-9)

	assert.Equal(t, "Popular", result[1].Name)
	assert.InDelta(t, 9.0, result[1].EngagementPerPost, 1e-9)

	assert.Equal(t, "X", result[2].Name)
	assert.Equal(t, int64(0), result[2].PostCount)
	assert.Equal(t, int64(0), result[2].TotalEngagements)
	assert.Equal(t, float64(0), result[2].EngagementPerPost)
}

func TestGetLowEngagementAuthors_RatioAscendingWithinPostCount(t *testing.T) {
	f := newFixture(t)
	f.author(1, "High")
	f.author(2, "Low")
	f.post(1, 1, "Tech")
	f.post(2, 2, "Tech")
	f.engagements(1, 20, fixtureNow)
	f.engagements(2, 2, fixtureNow)

	result, err := NewAnalyticsRepository(f.db).GetLowEngagementAuthors(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "Low", result[0].Name)
	assert.Equal(t, "High", result[1].Name)
}

func TestGetEngagementOverTime_WindowAndWeeks(t *testing.T) {
	f := newFixture(t)
	f.author(1, "Zed")
	f.author(2, "Amy")
	f.post(1, 1, "Tech")
	f.post(2, 2, "Travel")
	f.post(3, 2, "DIY")

	// fixtureNow is Saturday 2024-06-15; its ISO week starts Monday 2024-06-10.
	f.engagements(1, 2, time.Date(2024, time.June, 14, 10, 0, 0, 0, time.UTC))
	f.engagements(2, 1, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
	f.engagements(3, 4, time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC))
	f.engagements(2, 5, time.Date(2024, time.June, 9, 23, 0, 0, 0, time.UTC))
	// Outside the window on both sides.
	f.engagements(1, 7, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
	f.engagements(1, 7, fixtureNow.Add(time.Hour))

	since := fixtureNow.AddDate(0, -3, 0)
	result, err := NewAnalyticsRepository(f.db).GetEngagementOverTime(context.Background(), since, fixtureNow)
	require.NoError(t, err)

	require.Len(t, result, 4)
	assert.Equal(t, "2024-06-03", result[0].Week)
	assert.Equal(t, "Amy", result[0].AuthorName)
	assert.Equal(t, "Travel", result[0].Category)
	assert.Equal(t, int64(5), result[0].TotalEngagements)

	assert.Equal(t, "2024-06-10", result[1].Week)
	assert.Equal(t, "Amy", result[1].AuthorName)
	assert.Equal(t, "DIY", result[1].Category)
	assert.Equal(t, int64(4), result[1].TotalEngagements)

	assert.Equal(t, "2024-06-10", result[2].Week)
	assert.Equal(t, "Amy", result[2].AuthorName)
	assert.Equal(t, "Travel", result[2].Category)
	assert.Equal(t, int64(1), result[2].TotalEngagements)

	assert.Equal(t, "2024-06-10", result[3].Week)
	assert.Equal(t, "Zed", result[3].AuthorName)
	assert.Equal(t, int64(2), result[3].TotalEngagements)
}

func TestAggregations_EmptyDataset(t *testing.T) {
	f := newFixture(t)
	repo := NewAnalyticsRepository(f.db)
	ctx := context.Background()

	trend, err := repo.GetEngagementTrend(ctx)
	require.NoError(t, err)
	assert.NotNil(t, trend)
	assert.Empty(t, trend)

	top, err := repo.GetTopAuthors(ctx)
	require.NoError(t, err)
	assert.Empty(t, top)

	patterns, err := repo.GetEngagementPatterns(ctx)
	require.NoError(t, err)
	assert.Empty(t, patterns)

	low, err := repo.GetLowEngagementAuthors(ctx)
	require.NoError(t, err)
	assert.Empty(t, low)

	weekly, err := repo.GetEngagementOverTime(ctx, fixtureNow.AddDate(0, -3, 0), fixtureNow)
	require.NoError(t, err)
	assert.Empty(t, weekly)
}

func TestAggregations_RepeatableOnGeneratedDataset(t *testing.T) {
	db := testutil.NewPostgres(t)
	profile := seed.DefaultProfile()
	profile.Authors = 5
	profile.Users = 50
	profile.EngagementsPerPost = seed.Range{Min: 10, Max: 60}
	gen := seed.NewSeededGenerator(8, fixtureNow, profile)

	summary, err := seed.Rebuild(context.Background(), db, gen, logger.NewWithWriters(io.Discard, io.Discard))
	require.NoError(t, err)

	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	first, err := repo.GetTopAuthors(ctx)
	require.NoError(t, err)
	second, err := repo.GetTopAuthors(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	trend, err := repo.GetEngagementTrend(ctx)
	require.NoError(t, err)
	var total int64
	for _, row := range trend {
		total += row.TotalEngagements
	}
	assert.Equal(t, int64(summary.Engagements), total)

	low1, err := repo.GetLowEngagementAuthors(ctx)
	require.NoError(t, err)
	low2, err := repo.GetLowEngagementAuthors(ctx)
	require.NoError(t, err)
	assert.Equal(t, low1, low2)
	assert.Len(t, low1, profile.Authors)

	patterns, err := repo.GetEngagementPatterns(ctx)
	require.NoError(t, err)
	for _, p := range patterns {
		assert.GreaterOrEqual(t, p.DayOfWeek, 0)
		assert.LessOrEqual(t, p.DayOfWeek, 6)
		assert.GreaterOrEqual(t, p.HourOfDay, 0)
		assert.LessOrEqual(t, p.HourOfDay, 23)
	}
}
