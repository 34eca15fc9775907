package seed

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r Range) validate(name string, floor int) error {
	if r.Min < floor {
		return fmt.Errorf("%s.min must be >= %d, got %d", name, floor, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s.max (%d) must be >= %s.min (%d)", name, r.Max, name, r.Min)
	}
	return nil
}

// Profile holds the knobs of a generation run. The zero value is not usable;
// start from DefaultProfile.
type Profile struct {
	Authors             int     `yaml:"authors"`
	Users               int     `yaml:"users"`
	PostsPerAuthor      Range   `yaml:"posts_per_author"`
	EngagementsPerPost  Range   `yaml:"engagements_per_post"`
	ContentLength       Range   `yaml:"content_length"`
	TagsPerPost         Range   `yaml:"tags_per_post"`
	MediaProbability    float64 `yaml:"media_probability"`
	PromotedProbability float64 `yaml:"promoted_probability"`
	Language            string  `yaml:"language"`

	AuthorsSince time.Time `yaml:"authors_since"`
	UsersSince   time.Time `yaml:"users_since"`
	PostsSince   time.Time `yaml:"posts_since"`
}

func DefaultProfile() Profile {
	return Profile{
		Authors:             20,
		Users:               500,
		PostsPerAuthor:      Range{Min: 5, Max: 25},
		EngagementsPerPost:  Range{Min: 10, Max: 500},
		ContentLength:       Range{Min: 200, Max: 3000},
		TagsPerPost:         Range{Min: 1, Max: 4},
		MediaProbability:    0.5,
		PromotedProbability: 0.2,
		Language:            "en",
		AuthorsSince:        time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC),
		UsersSince:          time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
		PostsSince:          time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// LoadProfile reads a YAML profile on top of DefaultProfile, so a file only
// needs the fields it changes.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()

	b, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("unmarshal profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("validate profile: %w", err)
	}
	return p, nil
}

func (p Profile) Validate() error {
	if p.Authors <= 0 {
		return fmt.Errorf("authors must be > 0, got %d", p.Authors)
	}
	if p.Users <= 0 {
		return fmt.Errorf("users must be > 0, got %d", p.Users)
	}
	if err := p.PostsPerAuthor.validate("posts_per_author", 0); err != nil {
		return err
	}
	if err := p.EngagementsPerPost.validate("engagements_per_post", 0); err != nil {
		return err
	}
	if err := p.ContentLength.validate("content_length", 1); err != nil {
		return err
	}
	if err := p.TagsPerPost.validate("tags_per_post", 1); err != nil {
		return err
	}
	if p.MediaProbability < 0 || p.MediaProbability > 1 {
		return fmt.Errorf("media_probability must be within [0, 1], got %v", p.MediaProbability)
	}
	if p.PromotedProbability < 0 || p.PromotedProbability > 1 {
		return fmt.Errorf("promoted_probability must be within [0, 1], got %v", p.PromotedProbability)
	}
	if p.Language == "" || len(p.Language) > 10 {
		return fmt.Errorf("language must be 1-10 characters, got %q", p.Language)
	}
	if p.AuthorsSince.IsZero() || p.UsersSince.IsZero() || p.PostsSince.IsZero() {
		return errors.New("authors_since, users_since and posts_since are required")
	}
	return nil
}
