package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/utils"
)

func testProject() models.Project {
	return models.Project{
		Model:     models.Model{ID: 1},
		Kind:      models.ProjectKindProject,
		CountryID: 3,
		Title:     "Rooftop Solar Acceleration",
		Sector:    utils.Ptr("Solar"),
		Stage:     utils.Ptr("Growth"),
	}
}

func testInvestor(id int, countryIDs []int, sectors, stages string) models.Investor {
	investor := models.Investor{
		Model:        models.Model{ID: id},
		Name:         "Investor",
		InvestorType: models.InvestorTypeFund,
		FocusSectors: utils.EmptyThenNil(sectors),
		Stages:       utils.EmptyThenNil(stages),
	}
	for _, countryID := range countryIDs {
		investor.Countries = append(investor.Countries, models.Country{Model: models.Model{ID: countryID}})
	}
	return investor
}

func TestScoreInvestorForProject(t *testing.T) {
	t.Run("full match scores 100", func(t *testing.T) {
		match := ScoreInvestorForProject(testProject(), testInvestor(1, []int{3}, "Solar,Wind", "Growth"))

		assert.Equal(t, 100, match.Score100)
		assert.Equal(t, 5, match.Score)
		assert.Equal(t, 40, match.Breakdown.Country)
		assert.Equal(t, 40, match.Breakdown.Sector)
		assert.Equal(t, 20, match.Breakdown.Stage)
		assert.Equal(t, []string{"Country match", "Sector match: Solar", "Stage match: Growth"}, match.Reasons)
		assert.Equal(t, []string{"Strong geo fit", "Sector match", "Stage aligned"}, match.Badges)
		assert.Equal(t, "Recommended due to strong sector alignment, geo fit, and stage fit.", match.Why)
	})

	t.Run("sector matching is case insensitive and trims whitespace", func(t *testing.T) {
		match := ScoreInvestorForProject(testProject(), testInvestor(1, nil, " solar , hydro", ""))

		assert.Equal(t, 40, match.Score100)
		assert.Equal(t, 2, match.Score)
		assert.Equal(t, "Recommended due to strong sector alignment.", match.Why)
	})

	t.Run("two part why sentence skips the oxford comma", func(t *testing.T) {
		match := ScoreInvestorForProject(testProject(), testInvestor(1, []int{3}, "Solar", ""))

		assert.Equal(t, 80, match.Score100)
		assert.Equal(t, "Recommended due to strong sector alignment and geo fit.", match.Why)
	})

	t.Run("no match falls back to the weak match texts", func(t *testing.T) {
		match := ScoreInvestorForProject(testProject(), testInvestor(1, []int{9}, "Hydro", "Seed"))

		assert.Equal(t, 0, match.Score100)
		assert.Equal(t, 0, match.Score)
		assert.Equal(t, []string{"No direct country/sector/stage match (MVP)"}, match.Reasons)
		assert.Equal(t, []string{"Weak match"}, match.Badges)
		assert.Empty(t, match.ReasonPoints)
		assert.Equal(t, "Limited direct alignment; included for broader ecosystem visibility (MVP).", match.Why)
	})

	t.Run("project without sector or stage only scores the country", func(t *testing.T) {
		project := testProject()
		project.Sector = nil
		project.Stage = nil

		match := ScoreInvestorForProject(project, testInvestor(1, []int{3}, "Solar", "Growth"))

		assert.Equal(t, 40, match.Score100)
		assert.Equal(t, "Recommended due to strong geo fit.", match.Why)
	})

	t.Run("score is always one of the six bucket sums", func(t *testing.T) {
		investors := []models.Investor{
			testInvestor(1, nil, "", ""),
			testInvestor(2, []int{3}, "", ""),
			testInvestor(3, nil, "Solar", ""),
			testInvestor(4, nil, "", "Growth"),
			testInvestor(5, []int{3}, "Solar", ""),
			testInvestor(6, []int{3}, "", "Growth"),
			testInvestor(7, nil, "Solar", "Growth"),
			testInvestor(8, []int{3}, "Solar", "Growth"),
		}
		for _, investor := range investors {
			match := ScoreInvestorForProject(testProject(), investor)
			assert.Contains(t, []int{0, 20, 40, 60, 80, 100}, match.Score100)
		}
	})
}

func TestBuildMatches(t *testing.T) {
	project := testProject()
	investors := []models.Investor{
		testInvestor(1, nil, "Hydro", ""),
		testInvestor(2, []int{3}, "Solar", "Growth"),
		testInvestor(3, []int{3}, "Solar", ""),
		testInvestor(4, []int{3}, "Solar", "Growth"),
	}

	t.Run("orders by score then investor id descending", func(t *testing.T) {
		matches := BuildMatches(project, investors, MatchOptions{})

		ids := make([]int, len(matches))
		for i, match := range matches {
			ids[i] = match.Investor.ID
		}
		assert.Equal(t, []int{4, 2, 3, 1}, ids)
	})

	t.Run("is independent of the input order", func(t *testing.T) {
		reversed := []models.Investor{investors[3], investors[2], investors[1], investors[0]}
		matches := BuildMatches(project, reversed, MatchOptions{})

		ids := make([]int, len(matches))
		for i, match := range matches {
			ids[i] = match.Investor.ID
		}
		assert.Equal(t, []int{4, 2, 3, 1}, ids)
	})

	t.Run("strict country drops investors without a footprint", func(t *testing.T) {
		matches := BuildMatches(project, investors, MatchOptions{StrictCountry: true})

		assert.Len(t, matches, 3)
		for _, match := range matches {
			assert.NotEqual(t, 1, match.Investor.ID)
		}
	})

	t.Run("limit caps the result after sorting", func(t *testing.T) {
		matches := BuildMatches(project, investors, MatchOptions{Limit: utils.Ptr(2)})

		assert.Len(t, matches, 2)
		assert.Equal(t, 4, matches[0].Investor.ID)
		assert.Equal(t, 2, matches[1].Investor.ID)
	})

	t.Run("a non positive limit still returns one match", func(t *testing.T) {
		matches := BuildMatches(project, investors, MatchOptions{Limit: utils.Ptr(0)})

		assert.Len(t, matches, 1)
		assert.Equal(t, 4, matches[0].Investor.ID)
	})
}
