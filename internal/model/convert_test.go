package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCostMillions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		micros int64
		want   float64
	}{
		{"whole millions", 5_000_000, 5.0},
		{"two decimals", 2_550_000, 2.55},
		{"rounds up", 1_555_000, 1.56},
		{"rounds down", 1_554_000, 1.55},
		{"zero", 0, 0},
		{"sub-cent truncated", 1_004_999, 1.0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CostMillions(tt.micros); got != tt.want {
				t.Errorf("CostMillions(%d) = %v, want %v", tt.micros, got, tt.want)
			}
		})
	}
}

func TestSparseItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{"contiguous", `{"1":10,"2":20,"3":30}`, 3},
		{"stops at gap", `{"1":10,"2":20,"4":40}`, 2},
		{"null terminates", `{"1":10,"2":null,"3":30}`, 1},
		{"zero value kept", `{"1":10,"2":0,"3":30}`, 3},
		{"empty object kept", `{"1":{},"2":{"points":5}}`, 2},
		{"no key one", `{"2":20}`, 0},
		{"empty", `{}`, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var m map[string]json.RawMessage
			if err := json.Unmarshal([]byte(tt.in), &m); err != nil {
				t.Fatalf("bad fixture: %v", err)
			}
			if got := sparseItems(m); len(got) != tt.want {
				t.Errorf("sparseItems(%s) returned %d items, want %d", tt.in, len(got), tt.want)
			}
		})
	}
}

func TestSparsePrices(t *testing.T) {
	t.Parallel()

	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(`{"1":100,"2":150,"3":2.5e6}`), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	got := sparsePrices(m)
	want := []int64{100, 150, 2_500_000}
	if len(got) != len(want) {
		t.Fatalf("got %d prices, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("price[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseISOTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", "2026-03-08T14:00:00Z", time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC)},
		{"no zone", "2026-03-08T14:00:00", time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC)},
		{"space separated", "2026-03-08 14:00:00", time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC)},
		{"date only", "2026-03-08", time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)},
		{"empty", "", time.Time{}},
		{"garbage", "next tuesday", time.Time{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseISOTime(tt.in); !got.Equal(tt.want) {
				t.Errorf("ParseISOTime(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
