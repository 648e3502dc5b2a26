package caja

import (
	"github.com/cajaferia/caja/date"
)

// DayReport is the daily cash summary: how many sales were committed on a
// day, the revenue they brought in, the profit left after cost, and the
// breakdown per pay method.
//
// A report holds no state of its own; it is recomputed from the ledger on
// every read.
type DayReport struct {
	Day      date.Date
	Count    int
	Total    Money
	Profit   Money
	Cash     Money
	Transfer Money
}

// NewDayReport aggregates the ledger's sales for the given day.
func NewDayReport(l *Ledger, day date.Date) DayReport {
	r := DayReport{Day: day}
	for s := range l.SalesOn(day) {
		r.Count++
		r.Total = r.Total.Add(s.Total)
		r.Profit = r.Profit.Add(s.Profit())
		switch s.Pay {
		case Cash:
			r.Cash = r.Cash.Add(s.Total)
		case Transfer:
			r.Transfer = r.Transfer.Add(s.Total)
		}
	}
	return r
}

// MarshalJSON renders the report for machine consumption, omitting the pay
// methods that saw no sales.
func (r DayReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", r.Day.String())
	w.Append("sales", r.Count)
	w.Append("total", r.Total)
	w.Append("profit", r.Profit)
	var cash, transfer any
	if !r.Cash.IsZero() {
		cash = r.Cash
	}
	if !r.Transfer.IsZero() {
		transfer = r.Transfer
	}
	w.Optional("cash", cash)
	w.Optional("transfer", transfer)
	return w.MarshalJSON()
}
