package service

import (
	"github.com/okian/scout/internal/domain/percentile"
	"github.com/okian/scout/internal/domain/types"
)

// ToTable converts a Result to the table payload.
func ToTable(res Result) types.Table {
	rows := make([]types.PlayerRow, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = toPlayerRow(r)
	}
	return types.Table{
		Role:           res.Role,
		Language:       res.Language,
		Scope:          string(res.Scope),
		Categories:     res.Categories,
		PopulationSize: res.PopulationSize,
		Rows:           rows,
	}
}

// ToRadar converts the top rows of a Result to the chart payload.
func ToRadar(res Result) types.Radar {
	series := make([]types.Series, len(res.Top))
	for i, r := range res.Top {
		values := make([]float64, len(res.Categories))
		for j, c := range res.Categories {
			values[j] = r.Percentiles[c]
		}
		series[i] = types.Series{
			Label:    types.Label(r.Player.Name, r.Player.Nationality),
			Identity: r.Identity,
			Color:    types.SeriesColor(i),
			Values:   values,
			Overall:  r.Overall,
		}
	}
	return types.Radar{
		Title:          types.RadarTitle(res.Language, res.TopN, res.Role),
		Role:           res.Role,
		Language:       res.Language,
		Scope:          string(res.Scope),
		Categories:     res.Categories,
		PopulationSize: res.PopulationSize,
		Series:         series,
	}
}

// TopRows converts the top rows of a Result, with 1-based ranks.
func TopRows(res Result) []types.PlayerRow {
	rows := make([]types.PlayerRow, len(res.Top))
	for i, r := range res.Top {
		rows[i] = toPlayerRow(r)
		rows[i].Rank = i + 1
	}
	return rows
}

func toPlayerRow(r percentile.Row) types.PlayerRow {
	return types.PlayerRow{
		Identity:    r.Identity,
		Name:        r.Player.Name,
		Club:        r.Player.Club,
		Position:    r.Player.Position,
		Nationality: r.Player.Nationality,
		Age:         r.Player.Age,
		Minutes:     r.Player.Minutes,
		Scores:      r.Scores,
		Percentiles: r.Percentiles,
		Overall:     r.Overall,
	}
}
