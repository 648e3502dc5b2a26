package caja

import (
	"fmt"
	"iter"

	"github.com/cajaferia/caja/date"
)

// Ledger is the append-only history of committed sales, in commit order.
//
// Entries are immutable; the only mutation besides appending is whole-entry
// removal, used to void a mistaken sale. Removal does not restore catalog
// stock: a void is a ledger correction, not a refund.
type Ledger struct {
	sales []Sale
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{sales: make([]Sale, 0)}
}

// Len returns the number of sales in the ledger.
func (l *Ledger) Len() int { return len(l.sales) }

// Sale returns the sale at the given position.
func (l *Ledger) Sale(i int) (Sale, error) {
	if i < 0 || i >= len(l.sales) {
		return Sale{}, fmt.Errorf("ledger: %w: no sale %d", ErrNotFound, i)
	}
	return l.sales[i], nil
}

// Append appends a committed sale to the ledger.
func (l *Ledger) Append(s Sale) {
	l.sales = append(l.sales, s)
}

// Remove deletes the sale at the given position.
func (l *Ledger) Remove(i int) error {
	if i < 0 || i >= len(l.sales) {
		return fmt.Errorf("void sale: %w: no sale %d", ErrNotFound, i)
	}
	l.sales = append(l.sales[:i], l.sales[i+1:]...)
	return nil
}

// insertAt puts a sale back at a given position, undoing a removal whose
// persistence failed.
func (l *Ledger) insertAt(i int, s Sale) {
	l.sales = append(l.sales[:i], append([]Sale{s}, l.sales[i:]...)...)
}

// Sales returns an iterator that yields each sale in commit order.
func (l *Ledger) Sales() iter.Seq2[int, Sale] {
	return func(yield func(int, Sale) bool) {
		for i, s := range l.sales {
			if !yield(i, s) {
				return
			}
		}
	}
}

// SalesOn returns a lazy view of the sales committed on the given day.
// The view is restartable: it can be ranged over any number of times and
// always reflects the current ledger state.
func (l *Ledger) SalesOn(day date.Date) iter.Seq[Sale] {
	return func(yield func(Sale) bool) {
		for _, s := range l.sales {
			if s.Date != day {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// SalesIn returns an iterator over the sales whose day falls within the
// given range, boundaries included.
func (l *Ledger) SalesIn(r date.Range) iter.Seq2[int, Sale] {
	return func(yield func(int, Sale) bool) {
		for i, s := range l.sales {
			if !r.Contains(s.Date) {
				continue
			}
			if !yield(i, s) {
				return
			}
		}
	}
}
