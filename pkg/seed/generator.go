package seed

import (
	"fmt"
	"math/rand/v2"
	"time"

	"content-analytics/pkg/models"
)

// Dataset is one complete, referentially consistent generation result.
type Dataset struct {
	Authors     []models.Author
	Users       []models.User
	Posts       []models.Post
	Metadata    []models.PostMetadata
	Engagements []models.Engagement
}

// Generator draws every random value from a single injected source, so the
// same seed, now and profile always yield the same Dataset.
type Generator struct {
	rng     *rand.Rand
	seed    uint64
	now     time.Time
	profile Profile
}

// NewGenerator pins now to microsecond precision, the resolution PostgreSQL
// stores timestamps at.
func NewGenerator(rng *rand.Rand, now time.Time, profile Profile) *Generator {
	return &Generator{
		rng:     rng,
		now:     now.UTC().Truncate(time.Microsecond),
		profile: profile,
	}
}

// NewSeededGenerator is NewGenerator over a PCG source built from seed.
func NewSeededGenerator(seed uint64, now time.Time, profile Profile) *Generator {
	g := NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), now, profile)
	g.seed = seed
	return g
}

// Seed is the seed given to NewSeededGenerator, or 0 for an injected source.
func (g *Generator) Seed() uint64 {
	return g.seed
}

func (g *Generator) Now() time.Time {
	return g.now
}

func (g *Generator) Profile() Profile {
	return g.profile
}

// Generate runs the entity, post and engagement stages in dependency order.
func (g *Generator) Generate() (*Dataset, error) {
	if err := g.profile.Validate(); err != nil {
		return nil, err
	}
	windows := []struct {
		name  string
		since time.Time
	}{
		{"authors_since", g.profile.AuthorsSince},
		{"users_since", g.profile.UsersSince},
		{"posts_since", g.profile.PostsSince},
	}
	for _, w := range windows {
		if w.since.After(g.now) {
			return nil, fmt.Errorf("%s %s is after now %s", w.name, w.since.Format(time.RFC3339), g.now.Format(time.RFC3339))
		}
	}

	ds := &Dataset{
		Authors: g.GenerateAuthors(),
		Users:   g.GenerateUsers(),
	}
	ds.Posts, ds.Metadata = g.GeneratePosts(ds.Authors)
	ds.Engagements = g.GenerateEngagements(ds.Posts, len(ds.Users))
	return ds, nil
}

func (g *Generator) GenerateAuthors() []models.Author {
	authors := make([]models.Author, g.profile.Authors)
	for i := range authors {
		id := i + 1
		authors[i] = models.Author{
			AuthorID:   id,
			Name:       fmt.Sprintf("Author %d", id),
			JoinedDate: g.randomDate(g.profile.AuthorsSince, g.now),
			Category:   pick(g.rng, AuthorCategories),
		}
	}
	return authors
}

func (g *Generator) GenerateUsers() []models.User {
	users := make([]models.User, g.profile.Users)
	for i := range users {
		users[i] = models.User{
			UserID:     i + 1,
			SignupDate: g.randomDate(g.profile.UsersSince, g.now),
			Country:    pick(g.rng, Countries),
			Segment:    pick(g.rng, Segments),
		}
	}
	return users
}

// GeneratePosts emits posts with strictly increasing ids, author by author,
// and exactly one metadata row per post.
func (g *Generator) GeneratePosts(authors []models.Author) ([]models.Post, []models.PostMetadata) {
	var (
		posts    []models.Post
		metadata []models.PostMetadata
	)
	postID := 1
	for _, author := range authors {
		n := g.randomInt(g.profile.PostsPerAuthor)
		for j := 0; j < n; j++ {
			posts = append(posts, models.Post{
				PostID:           postID,
				AuthorID:         author.AuthorID,
				Category:         pick(g.rng, PostCategories),
				PublishTimestamp: g.randomInstant(g.profile.PostsSince, g.now),
				Title:            fmt.Sprintf("Post Title %d", postID),
				ContentLength:    g.randomInt(g.profile.ContentLength),
				HasMedia:         g.rng.Float64() < g.profile.MediaProbability,
			})

			tags := make([]string, g.randomInt(g.profile.TagsPerPost))
			for k := range tags {
				tags[k] = pick(g.rng, Tags)
			}
			metadata = append(metadata, models.PostMetadata{
				PostID:     postID,
				Tags:       tags,
				IsPromoted: g.rng.Float64() < g.profile.PromotedProbability,
				Language:   g.profile.Language,
			})

			postID++
		}
	}
	return posts, metadata
}

// GenerateEngagements never places an engagement before the publish time of
// its post, nor after now. Ids are left for the database sequence.
func (g *Generator) GenerateEngagements(posts []models.Post, userCount int) []models.Engagement {
	var engagements []models.Engagement
	for _, post := range posts {
		n := g.randomInt(g.profile.EngagementsPerPost)
		for i := 0; i < n; i++ {
			engagements = append(engagements, models.Engagement{
				PostID:           post.PostID,
				Type:             pick(g.rng, models.EngagementTypes),
				UserID:           1 + g.rng.IntN(userCount),
				EngagedTimestamp: g.randomInstant(post.PublishTimestamp, g.now),
			})
		}
	}
	return engagements
}

func (g *Generator) randomInt(r Range) int {
	return r.Min + g.rng.IntN(r.Max-r.Min+1)
}

// randomInstant is uniform over [start, end] on a microsecond grid.
func (g *Generator) randomInstant(start, end time.Time) time.Time {
	start = start.UTC().Truncate(time.Microsecond)
	if !end.After(start) {
		return start
	}
	span := int64(end.Sub(start) / time.Microsecond)
	return start.Add(time.Duration(g.rng.Int64N(span+1)) * time.Microsecond)
}

func (g *Generator) randomDate(start, end time.Time) time.Time {
	t := g.randomInstant(start, end)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.IntN(len(values))]
}
