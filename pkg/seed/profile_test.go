package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultProfile_Valid(t *testing.T) {
	assert.NoError(t, DefaultProfile().Validate())
}

func TestLoadProfile_OverridesOnlyGivenFields(t *testing.T) {
	path := writeProfile(t, `
authors: 3
posts_per_author:
  min: 1
  max: 2
posts_since: 2024-05-01
`)

	p, err := LoadProfile(path)
	require.NoError(t, err)

	assert.Equal(t, 3, p.Authors)
	assert.Equal(t, Range{Min: 1, Max: 2}, p.PostsPerAuthor)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), p.PostsSince.UTC())

	def := DefaultProfile()
	assert.Equal(t, def.Users, p.Users)
	assert.Equal(t, def.EngagementsPerPost, p.EngagementsPerPost)
	assert.Equal(t, def.Language, p.Language)
}

func TestLoadProfile_Invalid(t *testing.T) {
	cases := map[string]string{
		"inverted range":    "engagements_per_post:\n  min: 10\n  max: 5\n",
		"zero tags":         "tags_per_post:\n  min: 0\n  max: 4\n",
		"negative authors":  "authors: -1\n",
		"probability > 1":   "promoted_probability: 1.5\n",
		"language too long": "language: english-united-states\n",
		"not yaml":          "authors: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadProfile(writeProfile(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read profile")
}
