package gdelt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeenDate(t *testing.T) {
	expected := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	t.Run("compact form", func(t *testing.T) {
		assert.Equal(t, expected, parseSeenDate("20250314092653"))
	})

	t.Run("T separated with Z suffix", func(t *testing.T) {
		assert.Equal(t, expected, parseSeenDate("20250314T092653Z"))
	})

	t.Run("T separated with positive offset", func(t *testing.T) {
		assert.Equal(t, expected, parseSeenDate("20250314T092653+0300"))
	})

	t.Run("date only pads to midnight", func(t *testing.T) {
		assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), parseSeenDate("20250314"))
	})

	t.Run("garbage falls back to now", func(t *testing.T) {
		before := time.Now().UTC()
		got := parseSeenDate("not-a-date")
		assert.False(t, got.Before(before))
	})

	t.Run("empty falls back to now", func(t *testing.T) {
		before := time.Now().UTC()
		got := parseSeenDate("")
		assert.False(t, got.Before(before))
	})
}

func TestArticleAccessors(t *testing.T) {
	t.Run("link prefers canonical url", func(t *testing.T) {
		article := Article{URL: "https://example.com/a", URLMobile: "https://m.example.com/a"}
		assert.Equal(t, "https://example.com/a", article.Link())
		assert.Equal(t, "https://m.example.com/a", Article{URLMobile: "https://m.example.com/a"}.Link())
	})

	t.Run("display title never empty", func(t *testing.T) {
		assert.Equal(t, "Untitled", Article{Title: "   "}.DisplayTitle())
		assert.Equal(t, "Solar news", Article{Title: "Solar news"}.DisplayTitle())
	})

	t.Run("best summary rejects stubs shorter than ten characters", func(t *testing.T) {
		article := Article{Title: "Wind auction results announced", Snippet: "  ok  "}
		assert.Equal(t, "Wind auction results announced", article.BestSummary())
	})

	t.Run("best summary prefers snippet over summary", func(t *testing.T) {
		article := Article{Snippet: "snippet text here", Summary: "summary text here"}
		assert.Equal(t, "snippet text here", article.BestSummary())
	})

	t.Run("source domain falls back to source field", func(t *testing.T) {
		assert.Equal(t, "example.com", Article{Source: "example.com"}.SourceDomain())
		assert.Equal(t, "primary.com", Article{Domain: "primary.com", Source: "other.com"}.SourceDomain())
	})
}

func TestInferImpactType(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"policy keyword", "New renewable energy policy announced", "policy"},
		{"regulation keyword", "Grid code update for wind farms", "regulation"},
		{"project keyword", "500 MW solar pilot launched", "project"},
		{"achievement keyword", "Milestone reached in hydro capacity", "achievement"},
		{"default is policy", "Quarterly electricity report", "policy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferImpactType(tt.title, ""))
		})
	}
}

func TestMapArticle(t *testing.T) {
	t.Run("maps all fields", func(t *testing.T) {
		countryID := 4
		item := MapArticle(Article{
			URL:      "https://energy.example.kz/solar",
			Title:    "Kazakhstan opens solar auction",
			Snippet:  "The ministry announced a 300 MW solar auction.",
			Domain:   "energy.example.kz",
			Language: "English",
			SeenDate: "20250314092653",
		}, &countryID)

		require.NotNil(t, item.CountryID)
		assert.Equal(t, 4, *item.CountryID)
		assert.Equal(t, "Kazakhstan opens solar auction", item.Title)
		assert.Equal(t, "The ministry announced a 300 MW solar auction.", item.Summary)
		require.NotNil(t, item.Tags)
		assert.Equal(t, "energy_example_kz,English,solar", *item.Tags)
		require.NotNil(t, item.SourceName)
		assert.Equal(t, "Energy", *item.SourceName)
		require.NotNil(t, item.SourceURL)
		assert.Equal(t, "https://energy.example.kz/solar", *item.SourceURL)
		assert.Equal(t, time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC), item.PublishedAt)
		assert.Equal(t, "policy", item.ImpactType)
		assert.Positive(t, item.ImpactScore)
	})

	t.Run("global article has nil country and no url", func(t *testing.T) {
		item := MapArticle(Article{Title: "Clean energy outlook"}, nil)
		assert.Nil(t, item.CountryID)
		assert.Nil(t, item.SourceURL)
		assert.Nil(t, item.ImageURL)
		require.NotNil(t, item.SourceName)
		assert.Equal(t, "GDELT", *item.SourceName)
	})

	t.Run("social image becomes the image url", func(t *testing.T) {
		item := MapArticle(Article{
			Title:       "Wind farm commissioned",
			SocialImage: "https://example.com/img.jpg",
		}, nil)
		require.NotNil(t, item.ImageURL)
		assert.Equal(t, "https://example.com/img.jpg", *item.ImageURL)
	})

	t.Run("long titles are truncated", func(t *testing.T) {
		item := MapArticle(Article{Title: strings.Repeat("a", 500)}, nil)
		assert.Len(t, item.Title, 220)
	})

	t.Run("default tags when nothing is known", func(t *testing.T) {
		item := MapArticle(Article{Title: "Electricity market report for the quarter"}, nil)
		require.NotNil(t, item.Tags)
		assert.Equal(t, "gdelt,clean energy", *item.Tags)
	})
}
