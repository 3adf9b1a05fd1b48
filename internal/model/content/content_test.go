package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedLoadsBundledContent(t *testing.T) {
	site := Seed()

	assert.Equal(t, "SHRIRAM", site.Profile.Brand)
	assert.Equal(t, "Shriram Ponnengala", site.Profile.FullName())
	assert.Len(t, site.Nav, 6)
	assert.Len(t, site.Hero.Stats, 3)
	assert.Len(t, site.About.Skills, 4)
	assert.Len(t, site.Experience.Items, 1)
	assert.Len(t, site.Achievements.Competitive, 5)
	assert.Len(t, site.Achievements.Teaching, 4)
	assert.Len(t, site.Testimonials.Items, 4)
	assert.Len(t, site.Social.Links, 5)
	assert.Len(t, site.Contact.Details, 3)
	assert.Equal(t, "https://ratings.fide.com/profile/45044538", site.Profile.FIDEProfileURL)
}

func TestTestimonialHelpers(t *testing.T) {
	tm := Testimonial{Name: "meera Krishnan", Rating: 5}
	assert.Equal(t, "M", tm.Initial())
	assert.Len(t, tm.Stars(), 5)

	assert.Equal(t, "?", Testimonial{}.Initial())
	assert.Nil(t, Testimonial{Rating: 0}.Stars())
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("profile:\n  brand: X\n  firstName: Y\n  nickname: Z\n"))
	assert.Error(t, err)
}

func TestParseRejectsBadSocialURL(t *testing.T) {
	doc := `
profile: {brand: X, firstName: Y}
social:
  links:
    - {name: Lichess, url: "lichess.org/@/someone"}
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "social.links[0]")
}

func TestParseRejectsMissingBrand(t *testing.T) {
	_, err := Parse([]byte("profile: {firstName: Y}\n"))
	assert.ErrorContains(t, err, "profile.brand")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: {brand: ACME, firstName: Ada}\n"), 0o600))

	site, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ACME", site.Profile.Brand)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bundled, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "SHRIRAM", bundled.Profile.Brand)
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider(Seed())
	var _ Provider = p
	assert.Equal(t, "SHRIRAM", p.Site().Profile.Brand)
}
