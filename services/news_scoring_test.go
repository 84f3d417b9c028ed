package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreNewsImpact(t *testing.T) {
	t.Run("unknown type with no keywords keeps the base score", func(t *testing.T) {
		assert.Equal(t, 10, ScoreNewsImpact("other", "", "quarterly report", "nothing of note"))
	})

	t.Run("type baseline is added on top of the base", func(t *testing.T) {
		// 10 base + 15 policy baseline
		assert.Equal(t, 25, ScoreNewsImpact("policy", "", "new energy framework", "announced today"))
	})

	t.Run("boosts and penalties accumulate", func(t *testing.T) {
		// 10 base + 16 auction + 16 ppa - 10 delay
		assert.Equal(t, 32, ScoreNewsImpact("other", "", "auction delay", "ppa signing postponed"))
	})

	t.Run("keywords match across type tags title and summary", func(t *testing.T) {
		// 10 base + 18 net metering + 12 regulation baseline + 14 grid code
		assert.Equal(t, 54, ScoreNewsImpact("regulation", "net metering", "grid code update", ""))
	})

	t.Run("score never exceeds 100", func(t *testing.T) {
		text := strings.Join([]string{
			"net metering", "auction", "ppa", "grid code", "incentive",
			"target", "standard", "tender", "procurement", "financing",
		}, " ")
		assert.Equal(t, 100, ScoreNewsImpact("policy", "", text, text))
	})

	t.Run("score never drops below zero", func(t *testing.T) {
		text := "rollback subsidy removed uncertainty delay canceled restriction"
		assert.Equal(t, 0, ScoreNewsImpact("other", "", text, ""))
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		assert.Equal(t, ScoreNewsImpact("other", "", "solar AUCTION", ""), ScoreNewsImpact("other", "", "solar auction", ""))
	})
}
