package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/cajaferia/caja/date"
	"github.com/cajaferia/caja/renderer"
	"github.com/google/subcommands"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct {
	date string
	json bool
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the daily summary" }
func (*dailyCmd) Usage() string {
	return `caja daily [-d <date>] [-json]

  Displays the summary of a single day: number of sales, revenue,
  profit and the cash/transfer split. The summary is recomputed from
  the ledger on every read.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the summary (defaults to today)")
	f.BoolVar(&c.json, "json", false, "Print the summary as JSON")
}

func (c *dailyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := date.Today()
	var err error
	if c.date != "" {
		if day, err = date.Parse(c.date); err != nil {
			return errorf("invalid -d: %v", err)
		}
	}

	r, err := openRegister()
	if err != nil {
		return errorf("%v", err)
	}
	report := r.Report(day)

	if c.json {
		data, err := json.Marshal(report)
		if err != nil {
			return errorf("cannot marshal report: %v", err)
		}
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.DailyMarkdown(report))
	return subcommands.ExitSuccess
}

// closeCmd holds the flags for the 'close' subcommand.
type closeCmd struct {
	date string
}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "display the close-of-day report" }
func (*closeCmd) Usage() string {
	return `caja close [-d <date>]

  Displays the close-of-day report: the daily summary plus the drawer
  reconciliation note. Closing is a report, not a state change; the day
  is not locked.
`
}

func (c *closeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date to close (defaults to today)")
}

func (c *closeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := date.Today()
	var err error
	if c.date != "" {
		if day, err = date.Parse(c.date); err != nil {
			return errorf("invalid -d: %v", err)
		}
	}

	r, err := openRegister()
	if err != nil {
		return errorf("%v", err)
	}
	printMarkdown(renderer.CloseMarkdown(r.Report(day)))
	return subcommands.ExitSuccess
}
