package model

import (
	"encoding/json"
	"time"
)

// Weekend is one race weekend on the season calendar.
type Weekend struct {
	ID            int64
	Name          string
	Circuit       string
	DisplayedName string
	ShortName     string
	Position      int // schedule position within the season
	Status        string
	Start         time.Time
	End           time.Time
	Weather       map[string]any
	Races         []Event
}

// Event is one race session within a weekend.
type Event struct {
	ID      int64
	Type    string
	Status  string
	IsRace2 bool
	Start   time.Time
	End     time.Time
}

type weekendWire struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Circuit       string         `json:"circuit"`
	DisplayedName string         `json:"displayed_name"`
	ShortName     string         `json:"short_name"`
	Position      int            `json:"position"`
	Status        string         `json:"status"`
	Start         string         `json:"start"`
	End           string         `json:"end"`
	Races         []eventWire    `json:"races"`
	Weather       map[string]any `json:"weather"`
}

type eventWire struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Status  string `json:"status"`
	IsRace2 int    `json:"is_race2"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// ParseWeekends builds weekend records from a raw events feed payload.
func ParseWeekends(data json.RawMessage) ([]Weekend, error) {
	raws, err := decodeList(data, "weekends")
	if err != nil {
		return nil, err
	}
	weekends := make([]Weekend, 0, len(raws))
	for _, raw := range raws {
		var w weekendWire
		if err := decodeObject(raw, "weekends", &w); err != nil {
			return nil, err
		}
		races := make([]Event, 0, len(w.Races))
		for _, rw := range w.Races {
			races = append(races, Event{
				ID:      rw.ID,
				Type:    rw.Type,
				Status:  rw.Status,
				IsRace2: rw.IsRace2 != 0,
				Start:   ParseISOTime(rw.Start),
				End:     ParseISOTime(rw.End),
			})
		}
		weekends = append(weekends, Weekend{
			ID:            w.ID,
			Name:          w.Name,
			Circuit:       w.Circuit,
			DisplayedName: w.DisplayedName,
			ShortName:     w.ShortName,
			Position:      w.Position,
			Status:        w.Status,
			Start:         ParseISOTime(w.Start),
			End:           ParseISOTime(w.End),
			Weather:       w.Weather,
			Races:         races,
		})
	}
	return weekends, nil
}
