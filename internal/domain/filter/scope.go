// Package filter decides which players form the comparison population and
// which ranked players are shown.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/profile"
)

// ErrUnknownScope is returned by ParseScope.
var ErrUnknownScope = errors.New("unknown population scope")

// Scope names the comparison population percentiles are computed over.
type Scope string

const (
	// ScopeFullDataset ranks against every loaded row, whatever its position.
	ScopeFullDataset Scope = "full_dataset"
	// ScopeRoleEligible ranks against every player eligible for the role;
	// user criteria only pick which ranked players are shown.
	ScopeRoleEligible Scope = "role_eligible"
	// ScopeUserFiltered ranks against role-eligible players that also match
	// the user criteria.
	ScopeUserFiltered Scope = "user_filtered"
)

// DefaultScope is used when a request does not name one.
const DefaultScope = ScopeRoleEligible

// ParseScope accepts the scope names with '_' or '-'; empty means DefaultScope.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")) {
	case "":
		return DefaultScope, nil
	case ScopeFullDataset:
		return ScopeFullDataset, nil
	case ScopeRoleEligible:
		return ScopeRoleEligible, nil
	case ScopeUserFiltered:
		return ScopeUserFiltered, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScope, s)
	}
}

// Selection is the outcome of applying a scope: the population to
// normalize over and the predicate for rows to show.
type Selection struct {
	Scope      Scope
	Population []model.Player
	Show       func(model.Player) bool
}

// Select splits players for rp under scope and criteria. Every returned row
// that is shown is role-eligible and matches the criteria, regardless of
// scope; only the population differs.
func Select(players []model.Player, rp profile.RoleProfile, scope Scope, c Criteria) Selection {
	show := func(p model.Player) bool { return rp.Eligible(p) && c.Match(p) }

	var population []model.Player
	switch scope {
	case ScopeFullDataset:
		population = players
	case ScopeUserFiltered:
		population = keep(players, show)
	default:
		scope = ScopeRoleEligible
		population = keep(players, rp.Eligible)
	}
	return Selection{Scope: scope, Population: population, Show: show}
}

func keep(players []model.Player, pred func(model.Player) bool) []model.Player {
	out := make([]model.Player, 0, len(players))
	for _, p := range players {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
