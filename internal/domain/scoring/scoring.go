// Package scoring turns one player's raw metrics into weighted category
// scores for a role profile.
package scoring

import (
	"math"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/profile"
)

// Scores maps category name to its weighted, not yet normalized, score.
type Scores map[string]float64

// CategoryScores scores every category of rp for p. Every category of the
// profile is present in the result, including ones the player has no data
// for.
func CategoryScores(p model.Player, rp profile.RoleProfile) Scores {
	out := make(Scores, len(rp.Categories))
	for _, cat := range rp.Categories {
		out[cat.Name] = Category(p, cat)
	}
	return out
}

// Category returns Σ(value·weight) / Σ|weight| over the metrics p has.
// Absent metrics are left out of both sums, so a player is scored on what
// was recorded. With nothing recorded the score is exactly 0.
func Category(p model.Player, cat profile.Category) float64 {
	var score, total float64
	for _, w := range cat.Weights {
		v, ok := p.Metric(w.Metric)
		if !ok {
			continue
		}
		score += v * w.Weight
		total += math.Abs(w.Weight)
	}
	if total > 0 {
		return score / total
	}
	return 0
}
