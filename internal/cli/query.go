package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/domain/filter"
	"github.com/okian/scout/internal/domain/model"
)

// queryFlags are the ranking flags shared by rank, radar and export.
type queryFlags struct {
	role           string
	scope          string
	identity       string
	noDedupe       bool
	top            int
	minMinutes     int
	minAge         int
	maxAge         int
	countries      []string
	clubs          []string
	contractBefore string
}

func (qf *queryFlags) bind(cmd *cobra.Command, withTop bool) {
	f := cmd.Flags()
	f.StringVar(&qf.role, "role", "", "role to rank (see 'radar roles')")
	f.StringVar(&qf.scope, "scope", "", "comparison population: full_dataset, role_eligible or user_filtered")
	f.StringVar(&qf.identity, "identity", "", "player identity key: name or name_club")
	f.BoolVar(&qf.noDedupe, "no-dedupe", false, "keep repeated players")
	if withTop {
		f.IntVar(&qf.top, "top", service.DefaultTopN, "number of players to show")
	}
	f.IntVar(&qf.minMinutes, "min-minutes", 0, "minimum minutes played")
	f.IntVar(&qf.minAge, "min-age", 0, "minimum age")
	f.IntVar(&qf.maxAge, "max-age", 0, "maximum age")
	f.StringSliceVar(&qf.countries, "country", nil, "birth country (repeatable)")
	f.StringSliceVar(&qf.clubs, "club", nil, "club (repeatable)")
	f.StringVar(&qf.contractBefore, "contract-before", "", "contract expires on or before YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("role")
}

func (qf *queryFlags) query(lang string) (service.Query, error) {
	q := service.Query{
		Role:     qf.role,
		Language: lang,
		TopN:     qf.top,
		Criteria: filter.Criteria{
			MinMinutes: qf.minMinutes,
			MinAge:     qf.minAge,
			MaxAge:     qf.maxAge,
			Countries:  qf.countries,
			Clubs:      qf.clubs,
		},
	}

	var err error
	if q.Scope, err = filter.ParseScope(qf.scope); err != nil {
		return q, err
	}
	if qf.identity != "" {
		if q.Identity, err = model.ParseIdentityKey(qf.identity); err != nil {
			return q, err
		}
	}
	if qf.noDedupe {
		off := false
		q.Dedupe = &off
	}
	if qf.minMinutes < 0 || qf.minAge < 0 || qf.maxAge < 0 {
		return q, errors.New("minutes and ages must not be negative")
	}
	if qf.contractBefore != "" {
		t, err := time.Parse(time.DateOnly, qf.contractBefore)
		if err != nil {
			return q, fmt.Errorf("--contract-before must be YYYY-MM-DD: %w", err)
		}
		q.Criteria.ContractBefore = t
	}
	return q, nil
}
