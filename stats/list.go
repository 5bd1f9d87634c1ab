package stats

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focustrack/internal/session"
	"github.com/ayoisaiah/focustrack/internal/ui"
)

const (
	dateFormat12 = "January 02, 2006 03:04 PM"
	dateFormat24 = "January 02, 2006 15:04"
)

// PrintSessions prints a table of records in the order given.
func PrintSessions(w io.Writer, records []session.Record, twentyFourHour bool) error {
	if len(records) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	format := dateFormat12
	if twentyFourHour {
		format = dateFormat24
	}

	data := [][]string{
		{"#", "CATEGORY", "START DATE", "END DATE", "MINUTES", "DISTRACTIONS"},
	}

	for i := range records {
		rec := &records[i]

		endDate := rec.EndTime.Local().Format(format)
		if rec.EndTime.IsZero() {
			endDate = ""
		}

		distractions := ui.Green(rec.DistractionCount)
		if rec.DistractionCount > 0 {
			distractions = ui.Red(rec.DistractionCount)
		}

		data = append(data, []string{
			fmt.Sprintf("%d", rec.ID),
			ui.Hex(CategoryColor(string(rec.Category)), rec.Category),
			rec.StartTime.Local().Format(format),
			endDate,
			fmt.Sprintf("%d", rec.DurationMinutes),
			distractions,
		})
	}

	return ui.PrintTable(data, w)
}
