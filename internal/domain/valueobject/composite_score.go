// Package valueobject contains domain value objects for the Finsight system.
package valueobject

import (
	"math"

	"github.com/finsight/backend/internal/domain/entity"
)

// ClampScore bounds a factor score to the [0,100] scale. Every factor is
// clamped before weighting so no single factor can push a composite
// outside the scale.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// CompositeScore reduces a list of weighted factors to a single rounded
// 0-100 score. Factor scores are clamped in place so callers see the
// values that actually entered the sum. Weights are expected to sum to
// 1.0; the composite is clamped as a final guard.
func CompositeScore(factors []entity.ScoreFactor) int {
	var weighted float64
	for i := range factors {
		factors[i].Score = ClampScore(factors[i].Score)
		weighted += factors[i].Score * factors[i].Weight
	}
	return int(math.Round(ClampScore(weighted)))
}
