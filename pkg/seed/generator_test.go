package seed

import (
	"math/rand/v2"
	"testing"
	"time"

	"content-analytics/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.June, 15, 12, 30, 45, 123456789, time.UTC)

func generate(t *testing.T, seed uint64) (*Generator, *Dataset) {
	t.Helper()
	gen := NewSeededGenerator(seed, testNow, DefaultProfile())
	ds, err := gen.Generate()
	require.NoError(t, err)
	return gen, ds
}

func TestNewGenerator_TruncatesNow(t *testing.T) {
	gen := NewSeededGenerator(1, testNow, DefaultProfile())
	assert.Equal(t, testNow.Truncate(time.Microsecond), gen.Now())
	assert.Zero(t, gen.Now().Nanosecond()%1000)
}

func TestGenerate_EntityCounts(t *testing.T) {
	gen, ds := generate(t, 42)

	assert.Len(t, ds.Authors, 20)
	assert.Len(t, ds.Users, 500)

	for i, a := range ds.Authors {
		assert.Equal(t, i+1, a.AuthorID)
		assert.Contains(t, AuthorCategories, a.Category)
		assert.False(t, a.JoinedDate.After(gen.Now()), "author %d joined after now", a.AuthorID)
		assert.False(t, a.JoinedDate.Before(DefaultProfile().AuthorsSince))
		assert.Equal(t, a.JoinedDate, a.JoinedDate.Truncate(24*time.Hour))
	}
	for i, u := range ds.Users {
		assert.Equal(t, i+1, u.UserID)
		assert.Contains(t, Countries, u.Country)
		assert.Contains(t, Segments, u.Segment)
		assert.False(t, u.SignupDate.After(gen.Now()))
		assert.False(t, u.SignupDate.Before(DefaultProfile().UsersSince))
	}
}

func TestGenerate_PostsPerAuthor(t *testing.T) {
	_, ds := generate(t, 7)

	perAuthor := make(map[int]int)
	for _, p := range ds.Posts {
		perAuthor[p.AuthorID]++
	}
	for _, a := range ds.Authors {
		n := perAuthor[a.AuthorID]
		assert.GreaterOrEqual(t, n, 5, "author %d", a.AuthorID)
		assert.LessOrEqual(t, n, 25, "author %d", a.AuthorID)
	}
	assert.Len(t, perAuthor, len(ds.Authors))
}

func TestGenerate_PostIDsIncreaseAndReferenceAuthors(t *testing.T) {
	gen, ds := generate(t, 11)

	authors := make(map[int]bool)
	for _, a := range ds.Authors {
		authors[a.AuthorID] = true
	}
	for i, p := range ds.Posts {
		assert.Equal(t, i+1, p.PostID)
		assert.True(t, authors[p.AuthorID], "post %d has unknown author %d", p.PostID, p.AuthorID)
		assert.Contains(t, PostCategories, p.Category)
		assert.GreaterOrEqual(t, p.ContentLength, 200)
		assert.LessOrEqual(t, p.ContentLength, 3000)
		assert.False(t, p.PublishTimestamp.After(gen.Now()))
		assert.False(t, p.PublishTimestamp.Before(DefaultProfile().PostsSince))
		assert.Equal(t, "Post Title ", p.Title[:len("Post Title ")])
	}
}

func TestGenerate_MetadataOnePerPost(t *testing.T) {
	_, ds := generate(t, 3)

	require.Len(t, ds.Metadata, len(ds.Posts))
	seen := make(map[int]int)
	for i, m := range ds.Metadata {
		seen[m.PostID]++
		assert.Equal(t, ds.Posts[i].PostID, m.PostID)
		assert.GreaterOrEqual(t, len(m.Tags), 1)
		assert.LessOrEqual(t, len(m.Tags), 4)
		for _, tag := range m.Tags {
			assert.Contains(t, Tags, tag)
		}
		assert.Equal(t, "en", m.Language)
	}
	for _, p := range ds.Posts {
		assert.Equal(t, 1, seen[p.PostID], "post %d", p.PostID)
	}
}

func TestGenerate_EngagementsWithinPostLifetime(t *testing.T) {
	gen, ds := generate(t, 99)

	posts := make(map[int]models.Post, len(ds.Posts))
	for _, p := range ds.Posts {
		posts[p.PostID] = p
	}

	perPost := make(map[int]int)
	for _, e := range ds.Engagements {
		post, ok := posts[e.PostID]
		require.True(t, ok, "engagement references unknown post %d", e.PostID)
		perPost[e.PostID]++

		assert.False(t, e.EngagedTimestamp.Before(post.PublishTimestamp),
			"engagement at %s precedes post %d published %s", e.EngagedTimestamp, post.PostID, post.PublishTimestamp)
		assert.False(t, e.EngagedTimestamp.After(gen.Now()))
		assert.True(t, e.Type.Valid())
		assert.GreaterOrEqual(t, e.UserID, 1)
		assert.LessOrEqual(t, e.UserID, len(ds.Users))
		assert.Zero(t, e.EngagementID)
	}
	for _, p := range ds.Posts {
		assert.GreaterOrEqual(t, perPost[p.PostID], 10)
		assert.LessOrEqual(t, perPost[p.PostID], 500)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	_, first := generate(t, 2024)
	_, second := generate(t, 2024)
	assert.Equal(t, first, second)

	_, other := generate(t, 2025)
	assert.NotEqual(t, first.Engagements, other.Engagements)
}

func TestGenerate_PostPublishedAtNow(t *testing.T) {
	profile := DefaultProfile()
	profile.PostsSince = testNow.Truncate(time.Microsecond)
	gen := NewSeededGenerator(5, testNow, profile)

	ds, err := gen.Generate()
	require.NoError(t, err)
	for _, e := range ds.Engagements {
		assert.Equal(t, gen.Now(), e.EngagedTimestamp)
	}
}

func TestGenerate_WindowAfterNow(t *testing.T) {
	profile := DefaultProfile()
	profile.PostsSince = testNow.AddDate(0, 0, 1)

	_, err := NewSeededGenerator(1, testNow, profile).Generate()
	assert.ErrorContains(t, err, "posts_since")
}

func TestGenerate_WindowsAfterNowReportedInOrder(t *testing.T) {
	profile := DefaultProfile()
	profile.UsersSince = testNow.AddDate(0, 0, 1)
	profile.PostsSince = testNow.AddDate(0, 0, 1)

	for i := 0; i < 20; i++ {
		_, err := NewSeededGenerator(1, testNow, profile).Generate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "users_since")
		assert.NotContains(t, err.Error(), "posts_since")
	}
}

func TestGenerate_InvalidProfile(t *testing.T) {
	profile := DefaultProfile()
	profile.Users = 0

	_, err := NewSeededGenerator(1, testNow, profile).Generate()
	assert.Error(t, err)
}

func TestRandomInstant_Bounds(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewPCG(1, 2)), testNow, DefaultProfile())
	start := testNow.Add(-time.Hour).Truncate(time.Microsecond)

	for i := 0; i < 1000; i++ {
		ts := gen.randomInstant(start, gen.Now())
		assert.False(t, ts.Before(start))
		assert.False(t, ts.After(gen.Now()))
	}
	assert.Equal(t, start, gen.randomInstant(start, start))
}

func TestRandomInt_Inclusive(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewPCG(3, 4)), testNow, DefaultProfile())

	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		n := gen.randomInt(Range{Min: 1, Max: 4})
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 4)
		seen[n] = true
	}
	assert.Len(t, seen, 4)
}

func TestNewSeededGenerator_RecordsSeed(t *testing.T) {
	assert.Equal(t, uint64(42), NewSeededGenerator(42, testNow, DefaultProfile()).Seed())
	assert.Zero(t, NewGenerator(rand.New(rand.NewPCG(1, 2)), testNow, DefaultProfile()).Seed())
}
