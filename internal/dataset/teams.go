package dataset

import (
	"context"
	"fmt"

	"github.com/fantasymotogp/fantasy-data/internal/model"
	"github.com/fantasymotogp/fantasy-data/internal/table"
)

// Teams is the dataset facade for the squads feed.
type Teams struct {
	records []model.Team
	views
	basicInfo *table.Table
}

// NewTeams loads today's squads snapshot and builds every view.
func NewTeams(ctx context.Context, store Getter, endpoint string) (*Teams, error) {
	raw, err := store.Get(ctx, endpoint, "team")
	if err != nil {
		return nil, fmt.Errorf("load teams dataset: %w", err)
	}
	records, err := model.ParseTeams(raw)
	if err != nil {
		return nil, fmt.Errorf("parse teams dataset: %w", err)
	}

	info := table.New("Name", "Riders", "is_wildcard", "Cost $M")
	statsRaw, historyRaw := newSharedStatsTables()
	for _, tm := range records {
		info.Append(tm.ID, map[string]any{
			"Name":        tm.Name,
			"Riders":      tm.NumRiders,
			"is_wildcard": tm.IsWildcard,
			"Cost $M":     tm.Cost,
		})
		appendSharedStats(statsRaw, historyRaw, tm.ID, tm.Stats)
	}

	d := &Teams{records: records, views: buildViews(info, statsRaw, historyRaw, "Name")}

	// basic: costliest first, wildcard flag under its display label.
	d.basicInfo = info.Clone().
		SortBy("Cost $M", true).
		Rename(map[string]string{"is_wildcard": "wildcard"}).
		HumanizeColumns(table.Humanize)

	return d, nil
}

// Records returns the normalized team records.
func (d *Teams) Records() []model.Team { return d.records }

func (d *Teams) Info() *table.Table      { return d.info }
func (d *Teams) BasicInfo() *table.Table { return d.basicInfo }
func (d *Teams) Stats() *table.Table     { return d.stats }
func (d *Teams) History() *table.Table   { return d.history }
func (d *Teams) AllData() *table.Table   { return d.allData }

// View resolves a view by its route name.
func (d *Teams) View(name string) (*table.Table, bool) {
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
