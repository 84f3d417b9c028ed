package transformer

import (
	"github.com/cececo-dev/cececo-hub/dtos"
	"github.com/cececo-dev/cececo-hub/services"
)

func MatchToResponse(match services.Match) dtos.InvestorMatchResponse {
	return dtos.InvestorMatchResponse{
		Score:          match.Score,
		Score100:       match.Score100,
		Why:            match.Why,
		ScoreBreakdown: match.Breakdown,
		ReasonPoints:   match.ReasonPoints,
		Reasons:        match.Reasons,
		Badges:         match.Badges,
		Investor:       match.Investor,
	}
}

func MatchesToResponses(matches []services.Match) []dtos.InvestorMatchResponse {
	responses := make([]dtos.InvestorMatchResponse, len(matches))
	for i, match := range matches {
		responses[i] = MatchToResponse(match)
	}
	return responses
}
