package model

import (
	"encoding/json"
	"strings"
)

// Rider is one entrant in the fantasy game.
type Rider struct {
	ID            int64
	FirstName     string
	LastName      string
	ShortName     string // display identifier, e.g. "M MAR"
	Country       string
	Number        int
	Status        string
	CostMicros    int64
	Cost          float64 // CostMicros in millions, 2dp
	ConstructorID int64
	SquadID       int64
	TeamID        int64 // alias of SquadID; the feed renamed squads to teams mid-season
	Stats         RiderStats
}

// RiderStats holds one rider's aggregate season metrics plus the
// reconstructed price and event histories.
type RiderStats struct {
	AvgPoints        float64
	Podium           int
	LastEvent        float64
	Last3Events      float64
	Last5Events      float64
	SeasonPoints     float64
	Starts           int
	AvgQualifyingPos float64
	IsPrevSeason     int
	CostDynamic      int64
	TotalPoints      float64
	AvgGridPos       float64
	AvgFinishingPos  float64
	Prices           []int64
	Events           []RiderEventStats
}

// RiderEventStats is one rider entry per race event.
type RiderEventStats struct {
	EventNum                        int
	GridPosition                    int
	Q1Position                      int
	Q2Position                      int
	SprintPosition                  int
	FinalPosition                   int
	Q1Points                        float64
	Q2Points                        float64
	SprintPoints                    float64
	FinalPoints                     float64
	QualifyingVsFinalPosition       int
	QualifyingVsFinalPositionPoints float64
	Points                          float64
	FastestLap                      int
	RaceTime                        string
	RaceTimeFloat                   float64
	Finished                        bool
	HadFastestLap                   bool
}

type riderWire struct {
	ID            int64          `json:"id"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Cost          int64          `json:"cost"`
	Country       string         `json:"country"`
	Number        int            `json:"number"`
	Status        string         `json:"status"`
	ConstructorID int64          `json:"constructor_id"`
	SquadID       int64          `json:"squad_id"`
	Stats         riderStatsWire `json:"stats"`
}

type riderStatsWire struct {
	AvgPoints        float64                    `json:"avg_points"`
	Podium           int                        `json:"podium"`
	LastEvent        float64                    `json:"last_event"`
	Last3Events      float64                    `json:"last_3_events"`
	Last5Events      float64                    `json:"last_5_events"`
	SeasonPoints     float64                    `json:"season_points"`
	Starts           int                        `json:"starts"`
	AvgQualifyingPos float64                    `json:"avg_qualifying_pos"`
	IsPrevSeason     int                        `json:"is_prev_season"`
	CostDynamic      int64                      `json:"cost_dynamic"`
	TotalPoints      float64                    `json:"total_points"`
	AvgGridPos       float64                    `json:"avg_grid_pos"`
	AvgFinishingPos  float64                    `json:"avg_finishing_pos"`
	Prices           map[string]json.RawMessage `json:"prices"`
	Events           map[string]json.RawMessage `json:"events"`
}

type riderEventWire struct {
	GridPosition                    int     `json:"grid_position"`
	Q1Position                      int     `json:"q1_position"`
	Q2Position                      int     `json:"q2_position"`
	SprintPosition                  int     `json:"sprint_position"`
	FinalPosition                   int     `json:"final_position"`
	Q1Points                        float64 `json:"q1_points"`
	Q2Points                        float64 `json:"q2_points"`
	SprintPoints                    float64 `json:"sprint_points"`
	FinalPoints                     float64 `json:"final_points"`
	QualifyingVsFinalPosition       int     `json:"qualifying_vs_final_position"`
	QualifyingVsFinalPositionPoints float64 `json:"qualifying_vs_final_position_points"`
	Points                          float64 `json:"points"`
	FastestLap                      int     `json:"fastest_lap"`
	RaceTime                        string  `json:"race_time"`
	RaceTimeFloat                   float64 `json:"race_time_float"`
}

// ParseRiders builds rider records from a raw riders feed payload.
func ParseRiders(data json.RawMessage) ([]Rider, error) {
	raws, err := decodeList(data, "riders")
	if err != nil {
		return nil, err
	}
	riders := make([]Rider, 0, len(raws))
	for _, raw := range raws {
		var w riderWire
		if err := decodeObject(raw, "riders", &w); err != nil {
			return nil, err
		}
		riders = append(riders, newRider(w))
	}
	return riders, nil
}

func newRider(w riderWire) Rider {
	return Rider{
		ID:            w.ID,
		FirstName:     w.FirstName,
		LastName:      w.LastName,
		ShortName:     riderShortName(w.FirstName, w.LastName),
		Country:       w.Country,
		Number:        w.Number,
		Status:        w.Status,
		CostMicros:    w.Cost,
		Cost:          CostMillions(w.Cost),
		ConstructorID: w.ConstructorID,
		SquadID:       w.SquadID,
		TeamID:        w.SquadID,
		Stats:         newRiderStats(w.Stats),
	}
}

// riderShortName builds the display identifier: first initial plus the first
// three letters of the surname, upper-cased. Slicing is by rune, not byte;
// accented names ("Álex Márquez") must stay valid UTF-8.
func riderShortName(first, last string) string {
	initial := []rune(first)
	if len(initial) > 1 {
		initial = initial[:1]
	}
	surname := []rune(last)
	if len(surname) > 3 {
		surname = surname[:3]
	}
	return strings.ToUpper(strings.TrimSpace(string(initial) + " " + string(surname)))
}

func newRiderStats(w riderStatsWire) RiderStats {
	items := sparseItems(w.Events)
	events := make([]RiderEventStats, 0, len(items))
	for i, raw := range items {
		var ew riderEventWire
		_ = json.Unmarshal(raw, &ew)
		events = append(events, newRiderEventStats(ew, i+1))
	}
	return RiderStats{
		AvgPoints:        w.AvgPoints,
		Podium:           w.Podium,
		LastEvent:        w.LastEvent,
		Last3Events:      w.Last3Events,
		Last5Events:      w.Last5Events,
		SeasonPoints:     w.SeasonPoints,
		Starts:           w.Starts,
		AvgQualifyingPos: w.AvgQualifyingPos,
		IsPrevSeason:     w.IsPrevSeason,
		CostDynamic:      w.CostDynamic,
		TotalPoints:      w.TotalPoints,
		AvgGridPos:       w.AvgGridPos,
		AvgFinishingPos:  w.AvgFinishingPos,
		Prices:           sparsePrices(w.Prices),
		Events:           events,
	}
}

func newRiderEventStats(w riderEventWire, eventNum int) RiderEventStats {
	finalPos := w.FinalPosition
	if w.FinalPoints == 0 {
		// The raw final_position is unreliable when nothing was scored.
		finalPos = PositionDidNotScore
	}
	return RiderEventStats{
		EventNum:                        eventNum,
		GridPosition:                    w.GridPosition,
		Q1Position:                      w.Q1Position,
		Q2Position:                      w.Q2Position,
		SprintPosition:                  w.SprintPosition,
		FinalPosition:                   finalPos,
		Q1Points:                        w.Q1Points,
		Q2Points:                        w.Q2Points,
		SprintPoints:                    w.SprintPoints,
		FinalPoints:                     w.FinalPoints,
		QualifyingVsFinalPosition:       w.QualifyingVsFinalPosition,
		QualifyingVsFinalPositionPoints: w.QualifyingVsFinalPositionPoints,
		Points:                          w.Points,
		FastestLap:                      w.FastestLap,
		RaceTime:                        w.RaceTime,
		RaceTimeFloat:                   w.RaceTimeFloat,
		Finished:                        w.FinalPoints != 0,
		HadFastestLap:                   w.FastestLap > 0,
	}
}
