package model

import "encoding/json"

// Team is one squad in the fantasy game. The feed calls these "squads"; the
// game's UI calls them teams.
type Team struct {
	ID         int64
	Name       string
	NumRiders  int
	IsWildcard bool // nonzero wildcard flag in the feed
	CostMicros int64
	Cost       float64
	Stats      Stats
}

type teamWire struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	NumRiders  int       `json:"num_riders"`
	IsWildcard int       `json:"is_wildcard"`
	Cost       int64     `json:"cost"`
	Stats      statsWire `json:"stats"`
}

// ParseTeams builds team records from a raw squads feed payload.
func ParseTeams(data json.RawMessage) ([]Team, error) {
	raws, err := decodeList(data, "teams")
	if err != nil {
		return nil, err
	}
	teams := make([]Team, 0, len(raws))
	for _, raw := range raws {
		var w teamWire
		if err := decodeObject(raw, "teams", &w); err != nil {
			return nil, err
		}
		teams = append(teams, Team{
			ID:         w.ID,
			Name:       w.Name,
			NumRiders:  w.NumRiders,
			IsWildcard: w.IsWildcard != 0,
			CostMicros: w.Cost,
			Cost:       CostMillions(w.Cost),
			Stats:      newStats(w.Stats),
		})
	}
	return teams, nil
}
