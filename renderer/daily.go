package renderer

import (
	"github.com/cajaferia/caja"
)

// dayView is the template-friendly projection of a caja.DayReport.
type dayView struct {
	Day      string
	Count    int
	Total    string
	Profit   string
	Cash     string
	Transfer string
}

func newDayView(r caja.DayReport) dayView {
	v := dayView{
		Day:    r.Day.String(),
		Count:  r.Count,
		Total:  r.Total.String(),
		Profit: r.Profit.String(),
	}
	if !r.Cash.IsZero() {
		v.Cash = r.Cash.String()
	}
	if !r.Transfer.IsZero() {
		v.Transfer = r.Transfer.String()
	}
	return v
}

// DailyMarkdown renders the daily cash summary.
func DailyMarkdown(r caja.DayReport) string {
	partials := map[string]string{
		"day_summary": "day_summary.md",
	}
	return renderTemplate("daily", "daily.md", partials, newDayView(r))
}

// CloseMarkdown renders the close-of-day report: the same summary plus the
// drawer reconciliation note.
func CloseMarkdown(r caja.DayReport) string {
	partials := map[string]string{
		"day_summary": "day_summary.md",
	}
	return renderTemplate("close", "close.md", partials, newDayView(r))
}
