package dataset

import (
	"context"
	"encoding/json"

	"github.com/fantasymotogp/fantasy-data/internal/model"
	"github.com/fantasymotogp/fantasy-data/internal/table"
)

// Getter hands out today's raw snapshot for a dataset. Satisfied by
// *snapshot.Store.
type Getter interface {
	Get(ctx context.Context, endpoint, dataset string) (json.RawMessage, error)
}

// appendSharedStats fills the raw stats and history tables for one
// constructor/team record.
func appendSharedStats(statsRaw, historyRaw *table.Table, id int64, s model.Stats) {
	statsRaw.Append(id, map[string]any{
		"podiums":              s.Podiums,
		"num_riders":           s.NumRiders,
		"avg_grid_pos":         s.AvgGridPos,
		"avg_finishing_pos":    s.AvgFinishingPos,
		"total_fantasy_points": s.TotalFantasyPoints,
		"fantasy_pos":          s.FantasyPos,
		"total_gp_points":      s.TotalGPPoints,
		"gp_pos":               s.GPPos,
		"total_points":         s.TotalPoints,
	})
	for _, ev := range s.Events {
		historyRaw.Append(id, map[string]any{
			"event_num":        ev.EventNum,
			"points":           ev.Points,
			"highest_position": ev.HighestPosition,
			"fastest_lap":      ev.FastestLap,
			"race_time":        ev.RaceTime,
			"race_time_float":  ev.RaceTimeFloat,
			"finished":         ev.Finished,
			"had_fastest_lap":  ev.HadFastestLap,
		})
	}
}

func newSharedStatsTables() (statsRaw, historyRaw *table.Table) {
	statsRaw = table.New(
		"podiums", "num_riders", "avg_grid_pos", "avg_finishing_pos",
		"total_fantasy_points", "fantasy_pos", "total_gp_points", "gp_pos",
		"total_points",
	)
	historyRaw = table.New(
		"event_num", "points", "highest_position", "fastest_lap",
		"race_time", "race_time_float", "finished", "had_fastest_lap",
	)
	return statsRaw, historyRaw
}
