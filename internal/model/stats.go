package model

import "encoding/json"

// PositionDidNotScore is the sentinel the feed's consumers use for a final
// position with no points scored. The raw final_position value is unreliable
// for unfinished efforts, so a zero points total overrides it with this.
const PositionDidNotScore = -99

// --------------------------------------------------------------------------
// Shared season stats (constructors and teams)
// --------------------------------------------------------------------------

// Stats holds the aggregate season metrics shared by constructors and teams.
type Stats struct {
	Podiums            int
	NumRiders          int
	AvgGridPos         float64
	AvgFinishingPos    float64
	TotalFantasyPoints float64
	FantasyPos         float64
	TotalGPPoints      float64
	GPPos              int
	TotalPoints        float64
	Prices             []int64
	Events             []EventStats
}

// EventStats is one constructor/team entry per race event.
type EventStats struct {
	EventNum        int
	Points          float64
	HighestPosition int
	FastestLap      int
	RaceTime        string
	RaceTimeFloat   float64
	Finished        bool
	HadFastestLap   bool
}

type statsWire struct {
	Podiums            int                        `json:"podiums"`
	NumRiders          int                        `json:"num_riders"`
	AvgGridPos         float64                    `json:"avg_grid_pos"`
	AvgFinishingPos    float64                    `json:"avg_finishing_pos"`
	TotalFantasyPoints float64                    `json:"total_fantasy_points"`
	FantasyPos         float64                    `json:"fantasy_pos"`
	TotalGPPoints      float64                    `json:"total_gp_points"`
	GPPos              int                        `json:"gp_pos"`
	TotalPoints        float64                    `json:"total_points"`
	Prices             map[string]json.RawMessage `json:"prices"`
	Events             map[string]json.RawMessage `json:"events"`
}

type eventStatsWire struct {
	Points          float64 `json:"points"`
	HighestPosition int     `json:"highest_position"`
	FastestLap      int     `json:"fastest_lap"`
	RaceTime        string  `json:"race_time"`
	RaceTimeFloat   float64 `json:"race_time_float"`
}

func newStats(w statsWire) Stats {
	items := sparseItems(w.Events)
	events := make([]EventStats, 0, len(items))
	for i, raw := range items {
		var ew eventStatsWire
		// Tolerant binding: a malformed entry contributes neutral values.
		_ = json.Unmarshal(raw, &ew)
		events = append(events, newEventStats(ew, i+1))
	}
	return Stats{
		Podiums:            w.Podiums,
		NumRiders:          w.NumRiders,
		AvgGridPos:         w.AvgGridPos,
		AvgFinishingPos:    w.AvgFinishingPos,
		TotalFantasyPoints: w.TotalFantasyPoints,
		FantasyPos:         w.FantasyPos,
		TotalGPPoints:      w.TotalGPPoints,
		GPPos:              w.GPPos,
		TotalPoints:        w.TotalPoints,
		Prices:             sparsePrices(w.Prices),
		Events:             events,
	}
}

func newEventStats(w eventStatsWire, eventNum int) EventStats {
	return EventStats{
		EventNum:        eventNum,
		Points:          w.Points,
		HighestPosition: w.HighestPosition,
		FastestLap:      w.FastestLap,
		RaceTime:        w.RaceTime,
		RaceTimeFloat:   w.RaceTimeFloat,
		Finished:        w.Points != 0,
		HadFastestLap:   w.FastestLap > 0,
	}
}
