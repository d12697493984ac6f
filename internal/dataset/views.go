// Package dataset composes the snapshot store, the record normalizer, and
// the table projector into one facade per dataset (riders, constructors,
// teams, weekends), plus the lazily-built aggregate Service the presentation
// layer talks to.
package dataset

import (
	"github.com/fantasymotogp/fantasy-data/internal/table"
)

// Standard view names, shared by the API routes and the CLI.
const (
	ViewInfo    = "info"
	ViewBasic   = "basic"
	ViewStats   = "stats"
	ViewHistory = "history"
	ViewEvents  = "events"
	ViewAll     = "all"
)

// views bundles the four shared projections of a stats-bearing dataset.
type views struct {
	info    *table.Table
	stats   *table.Table
	history *table.Table
	allData *table.Table
}

// buildViews derives the stats/history/all_data projections from an info
// table, a raw (snake-cased) per-record stats table and a raw long-form
// event-history table. identifier names the info column that tags stats and
// history rows ("Rider" for riders, "Name" otherwise).
func buildViews(info, statsRaw, historyRaw *table.Table, identifier string) views {
	// stats: identifier + cost joined to the flattened season stats,
	// humanized, with the generic total surfaced as Total Fantasy Points,
	// best first. Ties keep feed order (stable sort).
	stats := table.New(identifier, "Cost $M")
	for _, row := range info.Rows {
		stats.Append(row.ID, map[string]any{
			identifier: row.Cells[identifier],
			"Cost $M":  row.Cells["Cost $M"],
		})
	}
	stats.LeftJoin(statsRaw, "").
		HumanizeColumns(table.HumanizeGP).
		Drop("Total Fantasy Points").
		Rename(map[string]string{"Total Points": "Total Fantasy Points"}).
		SortBy("Total Fantasy Points", true)

	// history: one row per (record, event), tagged with the identifier,
	// event order ascending.
	history := historyRaw.Clone().HumanizeColumns(table.Humanize)
	history.Columns = append([]string{identifier}, history.Columns...)
	for i := range history.Rows {
		if src, ok := info.RowByID(history.Rows[i].ID); ok {
			history.Rows[i].Cells[identifier] = src.Cells[identifier]
		}
	}
	history.SortBy("Event Num", false)

	// all_data: info ⟕ stats ⟕ history. Duplicated identifier/cost columns
	// on the right side are dropped, rows without history keep only
	// info+stats cells.
	allData := info.Clone().
		LeftJoin(stats, "").
		LeftJoin(history, "").
		SortBy("Event Num", false)

	return views{info: info, stats: stats, history: history, allData: allData}
}
