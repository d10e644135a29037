// Package profile holds the static role configuration: for each role and
// display language, the ordered categories and the signed metric weights
// that make up each category score.
package profile

import (
	"github.com/okian/scout/internal/domain/model"
)

// Weight is one signed metric contribution to a category. A negative weight
// means the metric pulls the category down (e.g. goals conceded).
type Weight struct {
	Metric string  `koanf:"metric"`
	Weight float64 `koanf:"weight"`
}

// Category is a named, ordered group of weights.
type Category struct {
	Name    string   `koanf:"name"`
	Weights []Weight `koanf:"weights"`
}

// RoleProfile is the validated, immutable view of one role in one language.
type RoleProfile struct {
	Role       string
	Language   string
	Categories []Category
	positions  map[string]struct{}
}

// CategoryNames returns category names in configuration order.
func (p RoleProfile) CategoryNames() []string {
	names := make([]string, len(p.Categories))
	for i, c := range p.Categories {
		names[i] = c.Name
	}
	return names
}

// Metrics returns every distinct metric referenced by the profile, in
// first-seen order.
func (p RoleProfile) Metrics() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range p.Categories {
		for _, w := range c.Weights {
			if _, ok := seen[w.Metric]; ok {
				continue
			}
			seen[w.Metric] = struct{}{}
			out = append(out, w.Metric)
		}
	}
	return out
}

// Eligible reports whether any of the player's position codes belongs to
// the role. Players without a position are never eligible.
func (p RoleProfile) Eligible(pl model.Player) bool {
	for _, code := range pl.Positions() {
		if _, ok := p.positions[code]; ok {
			return true
		}
	}
	return false
}
