package model

import "encoding/json"

// Constructor is one bike manufacturer in the fantasy game.
type Constructor struct {
	ID         int64
	Name       string
	NumRiders  int
	CostMicros int64
	Cost       float64
	Stats      Stats
}

type constructorWire struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Cost      int64     `json:"cost"`
	NumRiders int       `json:"num_riders"`
	Stats     statsWire `json:"stats"`
}

// ParseConstructors builds constructor records from a raw constructors feed
// payload.
func ParseConstructors(data json.RawMessage) ([]Constructor, error) {
	raws, err := decodeList(data, "constructors")
	if err != nil {
		return nil, err
	}
	constructors := make([]Constructor, 0, len(raws))
	for _, raw := range raws {
		var w constructorWire
		if err := decodeObject(raw, "constructors", &w); err != nil {
			return nil, err
		}
		constructors = append(constructors, Constructor{
			ID:         w.ID,
			Name:       w.Name,
			NumRiders:  w.NumRiders,
			CostMicros: w.Cost,
			Cost:       CostMillions(w.Cost),
			Stats:      newStats(w.Stats),
		})
	}
	return constructors, nil
}
