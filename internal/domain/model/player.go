// Package model contains domain models passed between layers.
package model

import (
	"math"
	"strings"
	"time"
)

// Player is one row of the scouting dataset. Metric values are optional:
// a metric that was not recorded is absent, which is not the same as zero.
type Player struct {
	Name        string
	Club        string
	Position    string    // comma separated position codes, e.g. "LCB, RCB"
	Nationality string    // birth country as exported by the provider
	Age         int       // 0 when unknown
	Minutes     int       // minutes played, 0 when unknown
	Contract    time.Time // contract expiry, zero when unknown

	metrics map[string]float64
}

// NewPlayer builds a Player with the given metric values. Non-finite values
// are dropped so they read as absent.
func NewPlayer(name string, metrics map[string]float64) Player {
	p := Player{Name: name}
	for k, v := range metrics {
		p.SetMetric(k, v)
	}
	return p
}

// Metric returns the value for name and whether it was recorded.
func (p Player) Metric(name string) (float64, bool) {
	v, ok := p.metrics[name]
	return v, ok
}

// SetMetric records a metric value. NaN and infinities are ignored.
func (p *Player) SetMetric(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	if p.metrics == nil {
		p.metrics = make(map[string]float64)
	}
	p.metrics[name] = v
}

// MetricCount reports how many metrics are recorded for the player.
func (p Player) MetricCount() int { return len(p.metrics) }

// Positions splits the position string into trimmed, upper-cased codes.
func (p Player) Positions() []string {
	if strings.TrimSpace(p.Position) == "" {
		return nil
	}
	parts := strings.Split(p.Position, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if code := strings.ToUpper(strings.TrimSpace(part)); code != "" {
			out = append(out, code)
		}
	}
	return out
}
