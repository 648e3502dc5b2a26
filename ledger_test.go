package caja

import (
	"errors"
	"testing"

	"github.com/cajaferia/caja/date"
)

// sellOn builds a minimal committed sale for ledger tests.
func sellOn(day date.Date, total, cost float64, pay PayMethod) Sale {
	return Sale{
		Items: []SaleItem{{Product: "Bread", ProductID: "b", Qty: 1}},
		Total: M(total, "EUR"),
		Cost:  M(cost, "EUR"),
		Pay:   pay,
		Date:  day,
	}
}

func TestLedger_AppendRemove(t *testing.T) {
	l := NewLedger()
	d := date.New(2026, 8, 27)
	l.Append(sellOn(d, 6, 3, Cash))
	l.Append(sellOn(d, 2, 1, Transfer))

	if l.Len() != 2 {
		t.Fatalf("ledger has %d sales, want 2", l.Len())
	}

	if err := l.Remove(0); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("ledger has %d sales after removal, want 1", l.Len())
	}
	s, err := l.Sale(0)
	if err != nil {
		t.Fatalf("Sale(0) failed: %v", err)
	}
	if s.Pay != Transfer {
		t.Error("Remove() deleted the wrong sale")
	}

	if err := l.Remove(5); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(5) = %v, want ErrNotFound", err)
	}
	if _, err := l.Sale(-1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Sale(-1) = %v, want ErrNotFound", err)
	}
}

// SalesOn is a lazy view: it can be ranged over repeatedly and always
// reflects the current ledger state.
func TestLedger_SalesOn(t *testing.T) {
	l := NewLedger()
	today := date.New(2026, 8, 27)
	yesterday := today.Add(-1)
	l.Append(sellOn(yesterday, 10, 5, Cash))
	l.Append(sellOn(today, 6, 3, Cash))
	l.Append(sellOn(today, 2, 1, Transfer))

	view := l.SalesOn(today)

	count := func() int {
		n := 0
		for range view {
			n++
		}
		return n
	}

	if got := count(); got != 2 {
		t.Errorf("SalesOn(today) yields %d sales, want 2", got)
	}
	// ranging a second time over the same view starts over.
	if got := count(); got != 2 {
		t.Errorf("second pass yields %d sales, want 2", got)
	}

	// the view is live: appending shows up without rebuilding it.
	l.Append(sellOn(today, 1, 0.5, Cash))
	if got := count(); got != 3 {
		t.Errorf("after append the view yields %d sales, want 3", got)
	}
}

func TestLedger_SalesIn(t *testing.T) {
	l := NewLedger()
	// a Monday, and sales spread around that week.
	monday := date.New(2026, 8, 24)
	l.Append(sellOn(monday.Add(-1), 1, 0, Cash)) // sunday before
	l.Append(sellOn(monday, 2, 0, Cash))
	l.Append(sellOn(monday.Add(6), 3, 0, Cash)) // sunday, last day of the week
	l.Append(sellOn(monday.Add(7), 4, 0, Cash)) // next monday

	var got []int
	for i := range l.SalesIn(date.NewRange(monday.Add(2), date.Weekly)) {
		got = append(got, i)
	}
	want := []int{1, 2}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("SalesIn(week) yields %v, want %v", got, want)
	}
}
