package gdelt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cececo-dev/cececo-hub/database/models"
)

func testCountries() []models.Country {
	return []models.Country{
		{Model: models.Model{ID: 1}, Name: "Türkiye", ISO2: "TR"},
		{Model: models.Model{ID: 2}, Name: "Azerbaijan", ISO2: "AZ"},
		{Model: models.Model{ID: 3}, Name: "Pakistan", ISO2: "PK"},
		{Model: models.Model{ID: 4}, Name: "Kazakhstan", ISO2: "KZ"},
		{Model: models.Model{ID: 5}, Name: "Uzbekistan", ISO2: "UZ"},
		{Model: models.Model{ID: 6}, Name: "Kyrgyzstan", ISO2: "KG"},
	}
}

func TestResolveCountry(t *testing.T) {
	countries := testCountries()

	t.Run("sourcecountry field wins", func(t *testing.T) {
		attribution := ResolveCountry(Article{SourceCountry: "tr"}, countries)
		require.NotNil(t, attribution.CountryID)
		assert.Equal(t, 1, *attribution.CountryID)
		assert.Equal(t, "Türkiye", attribution.CountryName)
		require.NotNil(t, attribution.ISO2)
		assert.Equal(t, "TR", *attribution.ISO2)
	})

	t.Run("country name field matches variants", func(t *testing.T) {
		attribution := ResolveCountry(Article{Country: "Kazakh Republic"}, countries)
		require.NotNil(t, attribution.CountryID)
		assert.Equal(t, 4, *attribution.CountryID)
	})

	t.Run("country name field matches substring both ways", func(t *testing.T) {
		attribution := ResolveCountry(Article{Country: "Republic of Uzbekistan"}, countries)
		require.NotNil(t, attribution.CountryID)
		assert.Equal(t, 5, *attribution.CountryID)
	})

	t.Run("alternate iso2 fields are consulted", func(t *testing.T) {
		attribution := ResolveCountry(Article{CountryCodeAlt: "pk"}, countries)
		require.NotNil(t, attribution.CountryID)
		assert.Equal(t, 3, *attribution.CountryID)
	})

	t.Run("content scan requires word boundaries", func(t *testing.T) {
		attribution := ResolveCountry(Article{
			Title:   "Solar tender announced in Azerbaijan",
			Snippet: "The ministry opened bids for 200 MW.",
		}, countries)
		require.NotNil(t, attribution.CountryID)
		assert.Equal(t, 2, *attribution.CountryID)

		// \bPAKISTAN\b does not match "Pakistani", the PAKISTANI variant does
		attribution = ResolveCountry(Article{Title: "Pakistani grid operator signs PPA"}, countries)
		require.NotNil(t, attribution.CountryID)
		assert.Equal(t, 3, *attribution.CountryID)
	})

	t.Run("content scan falls back to summary field", func(t *testing.T) {
		attribution := ResolveCountry(Article{Summary: "Wind farms across Kyrgyzstan gain momentum."}, countries)
		require.NotNil(t, attribution.CountryID)
		assert.Equal(t, 6, *attribution.CountryID)
	})

	t.Run("ccTLD of the source domain is the last resort", func(t *testing.T) {
		attribution := ResolveCountry(Article{Domain: "energy.news.kz"}, countries)
		require.NotNil(t, attribution.CountryID)
		assert.Equal(t, 4, *attribution.CountryID)
	})

	t.Run("no signal means global", func(t *testing.T) {
		attribution := ResolveCountry(Article{
			Title:  "Global renewables outlook improves",
			Domain: "example.com",
		}, countries)
		assert.Nil(t, attribution.CountryID)
		assert.Equal(t, "Global", attribution.CountryName)
		assert.Nil(t, attribution.ISO2)
	})

	t.Run("resolution is deterministic", func(t *testing.T) {
		article := Article{Title: "Turkey and Pakistan sign energy cooperation deal"}
		first := ResolveCountry(article, countries)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, ResolveCountry(article, countries))
		}
	})
}
