// Package table implements the small ordered columnar table the dataset
// views are built from: rows indexed by entity id, columns in display order,
// with the drop/rename/sort/join operations the projector needs. Tables are
// built once per facade and treated as read-only afterwards.
package table

import (
	"encoding/json"
	"time"
)

// Row is one table row, keyed by the owning entity's id.
type Row struct {
	ID    int64
	Cells map[string]any
}

// Table is an ordered set of rows sharing one column list. Cell maps may be
// sparse: a missing cell means the column does not apply to that row.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Append adds one row.
func (t *Table) Append(id int64, cells map[string]any) {
	t.Rows = append(t.Rows, Row{ID: id, Cells: cells})
}

// Clone returns a deep copy; derived views mutate the copy, not the source.
func (t *Table) Clone() *Table {
	out := New(t.Columns...)
	out.Rows = make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		cells := make(map[string]any, len(row.Cells))
		for k, v := range row.Cells {
			cells[k] = v
		}
		out.Rows[i] = Row{ID: row.ID, Cells: cells}
	}
	return out
}

// HasColumn reports whether the table declares a column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// RowByID returns the first row with the given id.
func (t *Table) RowByID(id int64) (Row, bool) {
	for _, row := range t.Rows {
		if row.ID == id {
			return row, true
		}
	}
	return Row{}, false
}

// Drop removes columns (and their cells). Unknown names are ignored.
func (t *Table) Drop(names ...string) *Table {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	kept := t.Columns[:0]
	for _, c := range t.Columns {
		if !drop[c] {
			kept = append(kept, c)
		}
	}
	t.Columns = kept
	for _, row := range t.Rows {
		for n := range drop {
			delete(row.Cells, n)
		}
	}
	return t
}

// Rename relabels columns in place, preserving order. Unknown keys are
// ignored.
func (t *Table) Rename(mapping map[string]string) *Table {
	for i, c := range t.Columns {
		if to, ok := mapping[c]; ok {
			t.Columns[i] = to
		}
	}
	for _, row := range t.Rows {
		for from, to := range mapping {
			if v, ok := row.Cells[from]; ok {
				delete(row.Cells, from)
				row.Cells[to] = v
			}
		}
	}
	return t
}

// Reorder moves the named columns (those present) to the front, keeping the
// relative order of the rest.
func (t *Table) Reorder(first ...string) *Table {
	want := make(map[string]bool, len(first))
	ordered := make([]string, 0, len(t.Columns))
	for _, n := range first {
		if t.HasColumn(n) {
			want[n] = true
			ordered = append(ordered, n)
		}
	}
	for _, c := range t.Columns {
		if !want[c] {
			ordered = append(ordered, c)
		}
	}
	t.Columns = ordered
	return t
}

// MarshalJSON encodes the table as {"columns": [...], "rows": [...]} with
// each row carrying its id alongside the cells.
func (t *Table) MarshalJSON() ([]byte, error) {
	rows := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		obj := make(map[string]any, len(row.Cells)+1)
		obj["id"] = row.ID
		for k, v := range row.Cells {
			if ts, ok := v.(time.Time); ok && ts.IsZero() {
				obj[k] = nil
				continue
			}
			obj[k] = v
		}
		rows = append(rows, obj)
	}
	return json.Marshal(map[string]any{
		"columns": t.Columns,
		"rows":    rows,
	})
}
