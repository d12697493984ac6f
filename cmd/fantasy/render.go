package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	pretty "github.com/jedib0t/go-pretty/v6/table"

	"github.com/fantasymotogp/fantasy-data/internal/table"
)

// renderTable prints a dataset view as an ASCII table, id column first.
func renderTable(t *table.Table, limit int) {
	w := pretty.NewWriter()
	w.SetOutputMirror(os.Stdout)
	w.SetStyle(pretty.StyleRounded)

	header := pretty.Row{"Id"}
	for _, c := range t.Columns {
		header = append(header, c)
	}
	w.AppendHeader(header)

	for i, row := range t.Rows {
		if limit > 0 && i >= limit {
			break
		}
		cells := make(pretty.Row, 0, len(t.Columns)+1)
		cells = append(cells, row.ID)
		for _, c := range t.Columns {
			cells = append(cells, formatCell(row.Cells[c]))
		}
		w.AppendRow(cells)
	}

	w.Render()
	if limit > 0 && len(t.Rows) > limit {
		fmt.Printf("(%d of %d rows)\n", limit, len(t.Rows))
	}
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format("2006-01-02 15:04")
	default:
		return fmt.Sprintf("%v", val)
	}
}
