package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
	"github.com/cececo-dev/cececo-hub/utils"
)

const (
	countryPoints = 40
	sectorPoints  = 40
	stagePoints   = 20
)

// MatchOptions controls filtering and truncation of a match run.
type MatchOptions struct {
	StrictCountry bool
	Limit         *int
}

// Match is the scored pairing of one investor with one project.
type Match struct {
	Investor     models.Investor
	Score        int
	Score100     int
	Why          string
	Breakdown    dtos.ScoreBreakdown
	ReasonPoints []dtos.ReasonPoint
	Reasons      []string
	Badges       []string
}

func investorCoversCountry(investor models.Investor, countryID int) bool {
	for _, c := range investor.Countries {
		if c.ID == countryID {
			return true
		}
	}
	return false
}

// ScoreInvestorForProject computes the affinity between an investor and a
// project. The result is deterministic and depends only on the two records.
func ScoreInvestorForProject(project models.Project, investor models.Investor) Match {
	m := Match{Investor: investor}

	countryHit := investorCoversCountry(investor, project.CountryID)

	sectorHit := false
	if project.Sector != nil {
		_, sectorHit = utils.ListToSet(utils.SafeDereference(investor.FocusSectors))[strings.ToLower(strings.TrimSpace(*project.Sector))]
	}
	stageHit := false
	if project.Stage != nil {
		_, stageHit = utils.ListToSet(utils.SafeDereference(investor.Stages))[strings.ToLower(strings.TrimSpace(*project.Stage))]
	}

	if countryHit {
		m.Breakdown.Country = countryPoints
		m.Score += 2
		m.Reasons = append(m.Reasons, "Country match")
		m.Badges = append(m.Badges, "Strong geo fit")
		m.ReasonPoints = append(m.ReasonPoints, dtos.ReasonPoint{Label: "Country match", Points: countryPoints})
	}
	if sectorHit {
		m.Breakdown.Sector = sectorPoints
		m.Score += 2
		label := fmt.Sprintf("Sector match: %s", *project.Sector)
		m.Reasons = append(m.Reasons, label)
		m.Badges = append(m.Badges, "Sector match")
		m.ReasonPoints = append(m.ReasonPoints, dtos.ReasonPoint{Label: label, Points: sectorPoints})
	}
	if stageHit {
		m.Breakdown.Stage = stagePoints
		m.Score += 1
		label := fmt.Sprintf("Stage match: %s", *project.Stage)
		m.Reasons = append(m.Reasons, label)
		m.Badges = append(m.Badges, "Stage aligned")
		m.ReasonPoints = append(m.ReasonPoints, dtos.ReasonPoint{Label: label, Points: stagePoints})
	}

	m.Score100 = m.Breakdown.Total()
	if m.Score100 == 0 {
		m.Reasons = append(m.Reasons, "No direct country/sector/stage match (MVP)")
		m.Badges = append(m.Badges, "Weak match")
	}

	m.Why = buildWhy(sectorHit, countryHit, stageHit)
	return m
}

func buildWhy(sectorHit, countryHit, stageHit bool) string {
	var parts []string
	if sectorHit {
		parts = append(parts, "sector alignment")
	}
	if countryHit {
		parts = append(parts, "geo fit")
	}
	if stageHit {
		parts = append(parts, "stage fit")
	}
	switch len(parts) {
	case 0:
		return "Limited direct alignment; included for broader ecosystem visibility (MVP)."
	case 1:
		return fmt.Sprintf("Recommended due to strong %s.", parts[0])
	case 2:
		return fmt.Sprintf("Recommended due to strong %s and %s.", parts[0], parts[1])
	default:
		return fmt.Sprintf("Recommended due to strong %s, %s, and %s.", parts[0], parts[1], parts[2])
	}
}

// BuildMatches scores every investor against the project, orders the result
// by score (investor id breaks ties) and applies the optional limit.
func BuildMatches(project models.Project, investors []models.Investor, opts MatchOptions) []Match {
	matches := make([]Match, 0, len(investors))
	for _, investor := range investors {
		if opts.StrictCountry && !investorCoversCountry(investor, project.CountryID) {
			continue
		}
		matches = append(matches, ScoreInvestorForProject(project, investor))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score100 != matches[j].Score100 {
			return matches[i].Score100 > matches[j].Score100
		}
		return matches[i].Investor.ID > matches[j].Investor.ID
	})

	if opts.Limit != nil {
		limit := max(1, *opts.Limit)
		if len(matches) > limit {
			matches = matches[:limit]
		}
	}
	return matches
}
