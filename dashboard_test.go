package caja

import (
	"encoding/json"
	"testing"

	"github.com/cajaferia/caja/date"
)

func TestNewDayReport(t *testing.T) {
	l := NewLedger()
	today := date.New(2026, 8, 27)
	l.Append(sellOn(today, 6, 3, Cash))
	l.Append(sellOn(today, 2, 1, Transfer))
	l.Append(sellOn(today.Add(-1), 100, 50, Cash)) // another day, ignored

	r := NewDayReport(l, today)

	if r.Count != 2 {
		t.Errorf("Count = %d, want 2", r.Count)
	}
	if want := M(8, "EUR"); !r.Total.Equal(want) {
		t.Errorf("Total = %s, want %s", r.Total, want)
	}
	if want := M(4, "EUR"); !r.Profit.Equal(want) {
		t.Errorf("Profit = %s, want %s", r.Profit, want)
	}
	if want := M(6, "EUR"); !r.Cash.Equal(want) {
		t.Errorf("Cash = %s, want %s", r.Cash, want)
	}
	if want := M(2, "EUR"); !r.Transfer.Equal(want) {
		t.Errorf("Transfer = %s, want %s", r.Transfer, want)
	}
}

// The report is recomputed from the ledger: voiding a sale changes the
// day's numbers immediately.
func TestNewDayReport_ReflectsVoids(t *testing.T) {
	l := NewLedger()
	today := date.New(2026, 8, 27)
	l.Append(sellOn(today, 6, 3, Cash))
	l.Append(sellOn(today, 2, 1, Cash))

	l.Remove(0)

	r := NewDayReport(l, today)
	if r.Count != 1 {
		t.Errorf("Count after void = %d, want 1", r.Count)
	}
	if want := M(2, "EUR"); !r.Total.Equal(want) {
		t.Errorf("Total after void = %s, want %s", r.Total, want)
	}
}

func TestNewDayReport_EmptyDay(t *testing.T) {
	r := NewDayReport(NewLedger(), date.New(2026, 8, 27))
	if r.Count != 0 {
		t.Errorf("Count = %d, want 0", r.Count)
	}
	if !r.Total.IsZero() || !r.Profit.IsZero() {
		t.Errorf("empty day totals = %s / %s, want zero", r.Total, r.Profit)
	}
}

func TestDayReport_MarshalJSON(t *testing.T) {
	l := NewLedger()
	today := date.New(2026, 8, 27)
	l.Append(sellOn(today, 6, 3, Cash))

	tests := []struct {
		name string
		r    DayReport
		want string
	}{
		{
			name: "cash only day omits transfer",
			r:    NewDayReport(l, today),
			want: `{"date":"2026-08-27","sales":1,"total":6,"profit":3,"cash":6}`,
		},
		{
			name: "empty day",
			r:    NewDayReport(NewLedger(), today),
			want: `{"date":"2026-08-27","sales":0,"total":0,"profit":0}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.r)
			if err != nil {
				t.Fatalf("Marshal() failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}
