package dataset

import (
	"context"
	"fmt"
	"sort"

	"github.com/fantasymotogp/fantasy-data/internal/model"
	"github.com/fantasymotogp/fantasy-data/internal/table"
)

// Weekends is the dataset facade for the race-weekend feed. Its views differ
// from the stats-bearing datasets: info is the season schedule, events the
// per-session breakdown.
type Weekends struct {
	records []model.Weekend
	info    *table.Table
	events  *table.Table
	allData *table.Table
}

// NewWeekends loads today's events snapshot and builds every view.
func NewWeekends(ctx context.Context, store Getter, endpoint string) (*Weekends, error) {
	raw, err := store.Get(ctx, endpoint, "weekend")
	if err != nil {
		return nil, fmt.Errorf("load weekends dataset: %w", err)
	}
	records, err := model.ParseWeekends(raw)
	if err != nil {
		return nil, fmt.Errorf("parse weekends dataset: %w", err)
	}

	// The weather mapping is free-form; flatten the union of its keys into
	// schedule columns, alphabetically for a stable layout.
	weatherCols := weatherColumns(records)

	info := table.New(append([]string{
		"name", "circuit", "displayed_name", "short_name", "number",
		"status", "start", "end",
	}, weatherCols...)...)
	events := table.New(
		"event_id", "type", "status", "is_race2", "start", "end",
		"weekend_event",
	)

	for _, wk := range records {
		cells := map[string]any{
			"name":           wk.Name,
			"circuit":        wk.Circuit,
			"displayed_name": wk.DisplayedName,
			"short_name":     wk.ShortName,
			"number":         wk.Position,
			"status":         wk.Status,
			"start":          wk.Start,
			"end":            wk.End,
		}
		for k, v := range wk.Weather {
			cells[k] = v
		}
		info.Append(wk.ID, cells)

		for i, race := range wk.Races {
			events.Append(wk.ID, map[string]any{
				"event_id":      race.ID,
				"type":          race.Type,
				"status":        race.Status,
				"is_race2":      race.IsRace2,
				"start":         race.Start,
				"end":           race.End,
				"weekend_event": i + 1, // 1-based sequence within the weekend
			})
		}
	}
	events.SortBy("event_id", false)

	allData := info.Clone().LeftJoin(events, "_of_event")

	return &Weekends{records: records, info: info, events: events, allData: allData}, nil
}

func weatherColumns(records []model.Weekend) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, wk := range records {
		for k := range wk.Weather {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

// Records returns the normalized weekend records.
func (d *Weekends) Records() []model.Weekend { return d.records }

// Info is the season schedule with flattened weather columns.
func (d *Weekends) Info() *table.Table { return d.info }

// Events is the per-race-session table, event id ascending.
func (d *Weekends) Events() *table.Table { return d.events }

// AllData is Info left-joined with Events, clashing event columns suffixed
// with "_of_event".
func (d *Weekends) AllData() *table.Table { return d.allData }

// View resolves a view by its route name.
func (d *Weekends) View(name string) (*table.Table, bool) {
	switch name {
	case ViewInfo:
		return d.info, true
	case ViewEvents:
		return d.events, true
	case ViewAll:
		return d.allData, true
	default:
		return nil, false
	}
}
