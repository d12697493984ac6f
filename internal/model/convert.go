package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// CostMillions converts an integer micros cost to the display value the game
// shows: millions, rounded to two decimals. Full precision stays in the
// record's CostMicros field; rounding happens only here.
func CostMillions(micros int64) float64 {
	return math.Round(float64(micros)/1_000_000*100) / 100
}

// sparseItems walks a map keyed "1","2",... and returns the present values in
// key order, stopping at the first absent (or null) key. Keys beyond a gap
// are ignored; the truncation is part of the feed's contract, not a defect.
// Zero and empty-object values are kept: only absence or null ends the
// series, a deliberate tightening of the feed consumers' historical
// stop-at-falsy rule.
func sparseItems(m map[string]json.RawMessage) []json.RawMessage {
	var items []json.RawMessage
	for i := 1; ; i++ {
		raw, ok := m[strconv.Itoa(i)]
		if !ok || isJSONNull(raw) {
			break
		}
		items = append(items, raw)
	}
	return items
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// sparsePrices rebuilds a price history list from its sparse map form.
func sparsePrices(m map[string]json.RawMessage) []int64 {
	items := sparseItems(m)
	prices := make([]int64, 0, len(items))
	for _, raw := range items {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			prices = append(prices, 0)
			continue
		}
		if v, err := n.Int64(); err == nil {
			prices = append(prices, v)
		} else if f, err := n.Float64(); err == nil {
			prices = append(prices, int64(f))
		} else {
			prices = append(prices, 0)
		}
	}
	return prices
}

// isoLayouts covers the timestamp shapes the feeds have been seen to emit.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseISOTime parses an ISO-8601-ish timestamp string. An empty or
// unparseable value yields the zero time rather than an error.
func ParseISOTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
