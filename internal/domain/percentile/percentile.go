// Package percentile rescales category scores into percentile ranks within
// a comparison population.
//
// A percentile is only meaningful relative to the population it was
// computed over: the same player gets different numbers against the full
// dataset, the role-eligible players or a filtered subset. Callers choose
// the population; this package never filters.
package percentile

import (
	"context"

	"gonum.org/v1/gonum/stat"

	"github.com/okian/scout/internal/domain/dedupe"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/profile"
	"github.com/okian/scout/internal/domain/scoring"
)

// Row is one identity's entry in a Table.
type Row struct {
	Identity    string
	Player      model.Player
	Scores      scoring.Scores     // raw weighted category scores
	Percentiles map[string]float64 // category -> 0..100
	Overall     float64            // mean of Percentiles
}

// Table is the percentile view of one population under one role profile.
// Rows keep population order.
type Table struct {
	Categories []string
	Rows       []Row

	index map[string]int
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Lookup returns the first row for identity.
func (t *Table) Lookup(identity string) (Row, bool) {
	i, ok := t.index[identity]
	if !ok {
		return Row{}, false
	}
	return t.Rows[i], true
}

// Normalize scores every player of population with rp and converts each
// category column to average-rank percentiles. An empty population yields
// an empty table with the profile's categories.
func Normalize(ctx context.Context, population []model.Player, rp profile.RoleProfile, opts ...Option) *Table {
	o := newOptions(opts...)

	if o.deduplicate {
		var dopts []dedupe.Option
		if o.foldCase {
			dopts = append(dopts, dedupe.WithCaseFolding())
		}
		population = dedupe.FirstByIdentity(ctx, population, o.identity, dopts...)
	}

	t := &Table{
		Categories: rp.CategoryNames(),
		Rows:       make([]Row, len(population)),
		index:      make(map[string]int, len(population)),
	}
	if len(population) == 0 {
		return t
	}

	for i, p := range population {
		id := o.identity.Identity(p)
		t.Rows[i] = Row{
			Identity:    id,
			Player:      p,
			Scores:      scoring.CategoryScores(p, rp),
			Percentiles: make(map[string]float64, len(t.Categories)),
		}
		if _, ok := t.index[id]; !ok {
			t.index[id] = i
		}
	}

	column := make([]float64, len(t.Rows))
	for _, cat := range t.Categories {
		for i := range t.Rows {
			column[i] = t.Rows[i].Scores[cat]
		}
		for i, pct := range Percentiles(column) {
			t.Rows[i].Percentiles[cat] = pct
		}
	}

	values := make([]float64, len(t.Categories))
	for i := range t.Rows {
		for j, cat := range t.Categories {
			values[j] = t.Rows[i].Percentiles[cat]
		}
		t.Rows[i].Overall = overall(values)
	}
	return t
}

func overall(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}
