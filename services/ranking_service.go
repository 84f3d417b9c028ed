package services

import (
	"math"
	"sort"

	"github.com/cececo-dev/cececo-hub/dtos"
	"github.com/cececo-dev/cececo-hub/shared"
)

type indicatorWeight struct {
	key    string
	weight float64
}

// rankingWeights define the investment-attractiveness model. Weights are
// renormalized over the indicators a country actually reports, so a missing
// indicator never drags the score to zero.
var rankingWeights = []indicatorWeight{
	{"resource_potential", 0.25},
	{"policy_readiness", 0.25},
	{"grid_readiness", 0.20},
	{"investment_climate", 0.20},
	{"talent_base", 0.10},
}

type rankingService struct {
	countryRepository   shared.CountryRepository
	indicatorRepository shared.CountryIndicatorRepository
}

func NewRankingService(countryRepository shared.CountryRepository, indicatorRepository shared.CountryIndicatorRepository) *rankingService {
	return &rankingService{
		countryRepository:   countryRepository,
		indicatorRepository: indicatorRepository,
	}
}

func (s *rankingService) Rank() ([]dtos.CountryRanking, error) {
	countries, err := s.countryRepository.All()
	if err != nil {
		return nil, err
	}
	indicators, err := s.indicatorRepository.All()
	if err != nil {
		return nil, err
	}

	byCountry := make(map[int]map[string]float64)
	for _, indicator := range indicators {
		if byCountry[indicator.CountryID] == nil {
			byCountry[indicator.CountryID] = make(map[string]float64)
		}
		byCountry[indicator.CountryID][indicator.Key] = indicator.Value
	}

	rankings := make([]dtos.CountryRanking, 0, len(countries))
	for _, country := range countries {
		values := byCountry[country.ID]

		var weightedSum, weightSum float64
		breakdown := make([]dtos.IndicatorScore, 0, len(rankingWeights))
		for _, iw := range rankingWeights {
			entry := dtos.IndicatorScore{Key: iw.key, Weight: iw.weight}
			if value, ok := values[iw.key]; ok {
				v := value
				entry.Value = &v
				weightedSum += iw.weight * value
				weightSum += iw.weight
			}
			breakdown = append(breakdown, entry)
		}

		score := 0
		if weightSum > 0 {
			score = int(math.Round(weightedSum / weightSum * 100))
		}

		rankings = append(rankings, dtos.CountryRanking{
			CountryID:   country.ID,
			CountryName: country.Name,
			ISO2:        country.ISO2,
			Score:       score,
			Breakdown:   breakdown,
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		if rankings[i].Score != rankings[j].Score {
			return rankings[i].Score > rankings[j].Score
		}
		return rankings[i].CountryID < rankings[j].CountryID
	})
	return rankings, nil
}
