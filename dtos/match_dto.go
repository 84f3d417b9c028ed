package dtos

import "github.com/cececo-dev/cececo-hub/database/models"

// ScoreBreakdown carries the three boolean-gated point buckets of the
// affinity score. Country and sector contribute up to 40 each, stage up to
// 20, so the total is always one of 0, 20, 40, 60, 80, 100.
type ScoreBreakdown struct {
	Country int `json:"country"`
	Sector  int `json:"sector"`
	Stage   int `json:"stage"`
}

func (b ScoreBreakdown) Total() int {
	return b.Country + b.Sector + b.Stage
}

type ReasonPoint struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

type InvestorMatchResponse struct {
	// Score is the legacy 0-5 weighted count kept for older consumers;
	// Score100 is the canonical value.
	Score          int             `json:"score"`
	Score100       int             `json:"score_100"`
	Why            string          `json:"why"`
	ScoreBreakdown ScoreBreakdown  `json:"score_breakdown"`
	ReasonPoints   []ReasonPoint   `json:"reason_points"`
	Reasons        []string        `json:"reasons"`
	Badges         []string        `json:"badges"`
	Investor       models.Investor `json:"investor"`
}
