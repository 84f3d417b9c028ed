package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cececo-dev/cececo-hub/database/models"
)

type fakeCountryRepository struct {
	countries []models.Country
}

func (f *fakeCountryRepository) All() ([]models.Country, error) {
	return f.countries, nil
}

func (f *fakeCountryRepository) Read(id int) (models.Country, error) {
	for _, c := range f.countries {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Country{}, assert.AnError
}

func (f *fakeCountryRepository) FindByIDs(ids []int) ([]models.Country, error) {
	var out []models.Country
	for _, c := range f.countries {
		for _, id := range ids {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (f *fakeCountryRepository) FindByName(name string) (models.Country, error) {
	for _, c := range f.countries {
		if c.Name == name {
			return c, nil
		}
	}
	return models.Country{}, assert.AnError
}

type fakeIndicatorRepository struct {
	indicators []models.CountryIndicator
}

func (f *fakeIndicatorRepository) All() ([]models.CountryIndicator, error) {
	return f.indicators, nil
}

func indicator(countryID int, key string, value float64) models.CountryIndicator {
	return models.CountryIndicator{CountryID: countryID, Key: key, Value: value}
}

func TestRankingService(t *testing.T) {
	countries := &fakeCountryRepository{countries: []models.Country{
		{Model: models.Model{ID: 1}, Name: "Kazakhstan", ISO2: "KZ"},
		{Model: models.Model{ID: 2}, Name: "Pakistan", ISO2: "PK"},
		{Model: models.Model{ID: 3}, Name: "Kyrgyzstan", ISO2: "KG"},
	}}

	t.Run("weights are renormalized over present indicators", func(t *testing.T) {
		indicators := &fakeIndicatorRepository{indicators: []models.CountryIndicator{
			indicator(1, "resource_potential", 0.8),
			indicator(1, "policy_readiness", 0.6),
			// country 2 only reports a single indicator
			indicator(2, "grid_readiness", 0.5),
		}}

		rankings, err := NewRankingService(countries, indicators).Rank()
		require.NoError(t, err)
		require.Len(t, rankings, 3)

		// country 1: (0.25*0.8 + 0.25*0.6) / 0.5 = 0.7 -> 70
		assert.Equal(t, 1, rankings[0].CountryID)
		assert.Equal(t, 70, rankings[0].Score)

		// country 2: 0.5 regardless of its low weight -> 50
		assert.Equal(t, 2, rankings[1].CountryID)
		assert.Equal(t, 50, rankings[1].Score)

		// country 3 has no indicators at all
		assert.Equal(t, 3, rankings[2].CountryID)
		assert.Equal(t, 0, rankings[2].Score)
	})

	t.Run("breakdown lists every weight with nil for missing values", func(t *testing.T) {
		indicators := &fakeIndicatorRepository{indicators: []models.CountryIndicator{
			indicator(1, "talent_base", 0.9),
		}}

		rankings, err := NewRankingService(countries, indicators).Rank()
		require.NoError(t, err)

		var found bool
		for _, ranking := range rankings {
			if ranking.CountryID != 1 {
				continue
			}
			found = true
			require.Len(t, ranking.Breakdown, 5)
			for _, entry := range ranking.Breakdown {
				if entry.Key == "talent_base" {
					require.NotNil(t, entry.Value)
					assert.InDelta(t, 0.9, *entry.Value, 1e-9)
				} else {
					assert.Nil(t, entry.Value)
				}
			}
		}
		assert.True(t, found)
	})

	t.Run("equal scores break the tie on country id", func(t *testing.T) {
		// repository order deliberately descending to prove the tie-break
		reversed := &fakeCountryRepository{countries: []models.Country{
			{Model: models.Model{ID: 3}, Name: "Kyrgyzstan", ISO2: "KG"},
			{Model: models.Model{ID: 2}, Name: "Pakistan", ISO2: "PK"},
			{Model: models.Model{ID: 1}, Name: "Kazakhstan", ISO2: "KZ"},
		}}
		indicators := &fakeIndicatorRepository{indicators: []models.CountryIndicator{
			indicator(1, "resource_potential", 0.5),
			indicator(2, "resource_potential", 0.5),
			indicator(3, "resource_potential", 0.5),
		}}

		rankings, err := NewRankingService(reversed, indicators).Rank()
		require.NoError(t, err)
		require.Len(t, rankings, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{rankings[0].CountryID, rankings[1].CountryID, rankings[2].CountryID})
	})

	t.Run("sorted by score descending", func(t *testing.T) {
		indicators := &fakeIndicatorRepository{indicators: []models.CountryIndicator{
			indicator(1, "resource_potential", 0.2),
			indicator(2, "resource_potential", 0.9),
			indicator(3, "resource_potential", 0.5),
		}}

		rankings, err := NewRankingService(countries, indicators).Rank()
		require.NoError(t, err)

		assert.Equal(t, []int{2, 3, 1}, []int{rankings[0].CountryID, rankings[1].CountryID, rankings[2].CountryID})
	})
}
