package services

import "strings"

// keyword weights applied on top of the base score. Matching is a plain
// substring check over the lowercased concatenation of type, tags, title
// and summary, so multi-word phrases must stay lowercase here.
var impactBoosts = []struct {
	keyword string
	points  int
}{
	{"net metering", 18},
	{"auction", 16},
	{"ppa", 16},
	{"grid code", 14},
	{"incentive", 12},
	{"target", 10},
	{"standard", 10},
	{"tender", 10},
	{"procurement", 10},
	{"financing", 8},
}

var impactPenalties = []struct {
	keyword string
	points  int
}{
	{"rollback", 18},
	{"subsidy removed", 16},
	{"uncertainty", 12},
	{"delay", 10},
	{"canceled", 14},
	{"restriction", 10},
}

var impactTypeBaselines = map[string]int{
	"policy":      15,
	"regulation":  12,
	"project":     8,
	"achievement": 6,
}

// ScoreNewsImpact estimates how investment-relevant a news item is on a
// 0..100 scale. Purely lexical, no external calls.
func ScoreNewsImpact(impactType, tags, title, summary string) int {
	score := 10
	text := strings.ToLower(strings.Join([]string{impactType, tags, title, summary}, " "))

	for _, b := range impactBoosts {
		if strings.Contains(text, b.keyword) {
			score += b.points
		}
	}
	for _, p := range impactPenalties {
		if strings.Contains(text, p.keyword) {
			score -= p.points
		}
	}
	score += impactTypeBaselines[strings.ToLower(strings.TrimSpace(impactType))]

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
