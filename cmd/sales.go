package cmd

import (
	"context"
	"flag"

	"github.com/cajaferia/caja/date"
	"github.com/cajaferia/caja/renderer"
	"github.com/google/subcommands"
)

// salesCmd holds the flags for the 'sales' subcommand.
type salesCmd struct {
	date   string
	period string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "display the sales history" }
func (*salesCmd) Usage() string {
	return `caja sales [-d <date>] [-p <period>]

  Displays the ledger of committed sales. With -d, only the sales of
  that day; with -p (day, week, month, year), the period containing -d.
  Each row shows the number that 'caja void' takes.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date to filter on (defaults to today)")
	f.StringVar(&c.period, "p", "", "Period around -d: day, week, month or year")
}

func (c *salesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := openRegister()
	if err != nil {
		return errorf("%v", err)
	}

	entries := make([]renderer.SaleEntry, 0, r.Ledger().Len())
	if c.date == "" && c.period == "" {
		// no filter, the whole history.
		for i, s := range r.Ledger().Sales() {
			entries = append(entries, renderer.SaleEntry{Index: i, Sale: s})
		}
	} else {
		day := date.Today()
		if c.date != "" {
			if day, err = date.Parse(c.date); err != nil {
				return errorf("invalid -d: %v", err)
			}
		}
		period := date.Daily
		if c.period != "" {
			if period, err = date.ParsePeriod(c.period); err != nil {
				return errorf("invalid -p: %v", err)
			}
		}
		for i, s := range r.Ledger().SalesIn(date.NewRange(day, period)) {
			entries = append(entries, renderer.SaleEntry{Index: i, Sale: s})
		}
	}

	printMarkdown(renderer.SalesMarkdown(entries))
	return subcommands.ExitSuccess
}
