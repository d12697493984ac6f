package table

import (
	"sort"
	"time"
)

// SortBy orders rows by one column. The sort is stable: ties keep source
// order. Rows missing the column sort last in either direction.
func (t *Table) SortBy(column string, descending bool) *Table {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		a, aok := t.Rows[i].Cells[column]
		b, bok := t.Rows[j].Cells[column]
		if !aok || !bok {
			return aok && !bok
		}
		if descending {
			return cellLess(b, a)
		}
		return cellLess(a, b)
	})
	return t
}

// LeftJoin joins right rows onto this table by row id. Every left row
// appears at least once; a left row with n matches on the right expands to n
// rows, and one with no matches keeps only its own cells. Right columns that
// clash with existing ones are renamed with the suffix, or skipped when the
// suffix is empty.
func (t *Table) LeftJoin(right *Table, suffix string) *Table {
	clash := make(map[string]string)
	for _, c := range right.Columns {
		if !t.HasColumn(c) {
			t.Columns = append(t.Columns, c)
			continue
		}
		if suffix != "" {
			renamed := c + suffix
			clash[c] = renamed
			t.Columns = append(t.Columns, renamed)
		} else {
			clash[c] = "" // left wins, right cell dropped
		}
	}

	byID := make(map[int64][]Row, len(right.Rows))
	for _, row := range right.Rows {
		byID[row.ID] = append(byID[row.ID], row)
	}

	joined := make([]Row, 0, len(t.Rows))
	for _, left := range t.Rows {
		matches := byID[left.ID]
		if len(matches) == 0 {
			joined = append(joined, left)
			continue
		}
		for _, match := range matches {
			cells := make(map[string]any, len(left.Cells)+len(match.Cells))
			for k, v := range left.Cells {
				cells[k] = v
			}
			for k, v := range match.Cells {
				if renamed, ok := clash[k]; ok {
					if renamed == "" {
						continue
					}
					k = renamed
				}
				cells[k] = v
			}
			joined = append(joined, Row{ID: left.ID, Cells: cells})
		}
	}
	t.Rows = joined
	return t
}

// cellLess compares two cell values: numerically when both are numbers,
// chronologically for times, lexically otherwise.
func cellLess(a, b any) bool {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af < bf
		}
	}
	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			return at.Before(bt)
		}
	}
	return toString(a) < toString(b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if st, ok := v.(interface{ String() string }); ok {
		return st.String()
	}
	return ""
}
