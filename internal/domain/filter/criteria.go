package filter

import (
	"strings"
	"time"

	"github.com/okian/scout/internal/domain/model"
)

// Criteria are the user-facing filters of the scouting screen. Zero values
// disable a criterion.
type Criteria struct {
	MinMinutes     int
	MinAge         int
	MaxAge         int
	Countries      []string  // birth countries, case-insensitive
	Clubs          []string  // case-insensitive
	ContractBefore time.Time // contract expires on or before this date
}

// Match reports whether p passes every enabled criterion. Players with an
// unknown age, minutes or contract fail criteria that need them.
func (c Criteria) Match(p model.Player) bool {
	if c.MinMinutes > 0 && p.Minutes < c.MinMinutes {
		return false
	}
	if c.MinAge > 0 && (p.Age == 0 || p.Age < c.MinAge) {
		return false
	}
	if c.MaxAge > 0 && (p.Age == 0 || p.Age > c.MaxAge) {
		return false
	}
	if len(c.Countries) > 0 && !containsFold(c.Countries, p.Nationality) {
		return false
	}
	if len(c.Clubs) > 0 && !containsFold(c.Clubs, p.Club) {
		return false
	}
	if !c.ContractBefore.IsZero() && (p.Contract.IsZero() || p.Contract.After(c.ContractBefore)) {
		return false
	}
	return true
}

// IsZero reports whether no criterion is enabled.
func (c Criteria) IsZero() bool {
	return c.MinMinutes <= 0 && c.MinAge <= 0 && c.MaxAge <= 0 &&
		len(c.Countries) == 0 && len(c.Clubs) == 0 && c.ContractBefore.IsZero()
}

func containsFold(list []string, s string) bool {
	s = strings.TrimSpace(s)
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), s) {
			return true
		}
	}
	return false
}
