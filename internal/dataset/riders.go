package dataset

import (
	"context"
	"fmt"

	"github.com/fantasymotogp/fantasy-data/internal/model"
	"github.com/fantasymotogp/fantasy-data/internal/table"
)

// Riders is the dataset facade for the riders feed.
type Riders struct {
	records []model.Rider
	views
	basicInfo *table.Table
}

// NewRiders loads today's riders snapshot and builds every view.
func NewRiders(ctx context.Context, store Getter, endpoint string) (*Riders, error) {
	raw, err := store.Get(ctx, endpoint, "rider")
	if err != nil {
		return nil, fmt.Errorf("load riders dataset: %w", err)
	}
	records, err := model.ParseRiders(raw)
	if err != nil {
		return nil, fmt.Errorf("parse riders dataset: %w", err)
	}

	info := table.New(
		"Rider", "Name", "Surname", "Cost $M", "From", "#", "Status",
		"constructor_id", "squad_id", "team_id",
	)
	statsRaw := table.New(
		"avg_points", "podium", "last_event", "last_3_events", "last_5_events",
		"season_points", "starts", "avg_qualifying_pos", "is_prev_season",
		"cost_dynamic", "total_points", "avg_grid_pos", "avg_finishing_pos",
	)
	historyRaw := table.New(
		"grid_position", "q1_position", "q2_position", "sprint_position",
		"final_position", "q1_points", "q2_points", "sprint_points",
		"final_points", "qualifying_vs_final_position",
		"qualifying_vs_final_position_points", "event_num", "points",
		"fastest_lap", "race_time", "race_time_float", "finished",
		"had_fastest_lap",
	)

	for _, r := range records {
		info.Append(r.ID, map[string]any{
			"Rider":          r.ShortName,
			"Name":           r.FirstName,
			"Surname":        r.LastName,
			"Cost $M":        r.Cost,
			"From":           r.Country,
			"#":              r.Number,
			"Status":         r.Status,
			"constructor_id": r.ConstructorID,
			"squad_id":       r.SquadID,
			"team_id":        r.TeamID,
		})
		s := r.Stats
		statsRaw.Append(r.ID, map[string]any{
			"avg_points":         s.AvgPoints,
			"podium":             s.Podium,
			"last_event":         s.LastEvent,
			"last_3_events":      s.Last3Events,
			"last_5_events":      s.Last5Events,
			"season_points":      s.SeasonPoints,
			"starts":             s.Starts,
			"avg_qualifying_pos": s.AvgQualifyingPos,
			"is_prev_season":     s.IsPrevSeason,
			"cost_dynamic":       s.CostDynamic,
			"total_points":       s.TotalPoints,
			"avg_grid_pos":       s.AvgGridPos,
			"avg_finishing_pos":  s.AvgFinishingPos,
		})
		for _, ev := range s.Events {
			historyRaw.Append(r.ID, map[string]any{
				"grid_position":                       ev.GridPosition,
				"q1_position":                         ev.Q1Position,
				"q2_position":                         ev.Q2Position,
				"sprint_position":                     ev.SprintPosition,
				"final_position":                      ev.FinalPosition,
				"q1_points":                           ev.Q1Points,
				"q2_points":                           ev.Q2Points,
				"sprint_points":                       ev.SprintPoints,
				"final_points":                        ev.FinalPoints,
				"qualifying_vs_final_position":        ev.QualifyingVsFinalPosition,
				"qualifying_vs_final_position_points": ev.QualifyingVsFinalPositionPoints,
				"event_num":                           ev.EventNum,
				"points":                              ev.Points,
				"fastest_lap":                         ev.FastestLap,
				"race_time":                           ev.RaceTime,
				"race_time_float":                     ev.RaceTimeFloat,
				"finished":                            ev.Finished,
				"had_fastest_lap":                     ev.HadFastestLap,
			})
		}
	}

	d := &Riders{records: records, views: buildViews(info, statsRaw, historyRaw, "Rider")}

	// basic: costliest first, relational ids dropped, Rider column leading.
	d.basicInfo = info.Clone().
		SortBy("Cost $M", true).
		Drop("constructor_id", "squad_id", "team_id").
		HumanizeColumns(table.Humanize).
		Reorder("Rider")

	return d, nil
}

// Records returns the normalized rider records.
func (d *Riders) Records() []model.Rider { return d.records }

// Info is the per-rider table with display column labels.
func (d *Riders) Info() *table.Table { return d.info }

// BasicInfo is Info without the relational id columns, costliest rider first.
func (d *Riders) BasicInfo() *table.Table { return d.basicInfo }

// Stats is the flattened season stats view, best total first.
func (d *Riders) Stats() *table.Table { return d.stats }

// History is the long-form per-event view, event order ascending.
func (d *Riders) History() *table.Table { return d.history }

// AllData is Info left-joined with Stats and History.
func (d *Riders) AllData() *table.Table { return d.allData }

// View resolves a view by its route name.
func (d *Riders) View(name string) (*table.Table, bool) {
	switch name {
	case ViewInfo:
		return d.info, true
	case ViewBasic:
		return d.basicInfo, true
	case ViewStats:
		return d.stats, true
	case ViewHistory:
		return d.history, true
	case ViewAll:
		return d.allData, true
	default:
		return nil, false
	}
}
