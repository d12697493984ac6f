package dataset

import (
	"context"
	"fmt"

	"github.com/fantasymotogp/fantasy-data/internal/model"
	"github.com/fantasymotogp/fantasy-data/internal/table"
)

// Constructors is the dataset facade for the constructors feed.
type Constructors struct {
	records []model.Constructor
	views
}

// NewConstructors loads today's constructors snapshot and builds every view.
func NewConstructors(ctx context.Context, store Getter, endpoint string) (*Constructors, error) {
	raw, err := store.Get(ctx, endpoint, "constructor")
	if err != nil {
		return nil, fmt.Errorf("load constructors dataset: %w", err)
	}
	records, err := model.ParseConstructors(raw)
	if err != nil {
		return nil, fmt.Errorf("parse constructors dataset: %w", err)
	}

	info := table.New("Name", "Cost $M", "Riders")
	statsRaw, historyRaw := newSharedStatsTables()
	for _, c := range records {
		info.Append(c.ID, map[string]any{
			"Name":    c.Name,
			"Cost $M": c.Cost,
			"Riders":  c.NumRiders,
		})
		appendSharedStats(statsRaw, historyRaw, c.ID, c.Stats)
	}

	return &Constructors{
		records: records,
		views:   buildViews(info, statsRaw, historyRaw, "Name"),
	}, nil
}

// Records returns the normalized constructor records.
func (d *Constructors) Records() []model.Constructor { return d.records }

func (d *Constructors) Info() *table.Table    { return d.info }
func (d *Constructors) Stats() *table.Table   { return d.stats }
func (d *Constructors) History() *table.Table { return d.history }
func (d *Constructors) AllData() *table.Table { return d.allData }

// View resolves a view by its route name.
func (d *Constructors) View(name string) (*table.Table, bool) {
	switch name {
	case ViewInfo:
		return d.info, true
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
