package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focustrack/internal/timeutil"
	"github.com/ayoisaiah/focustrack/internal/ui"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No sessions recorded yet"
)

// Render writes the report to w as coloured terminal output.
func (s *Stats) Render(w io.Writer) error {
	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Focus report: %s", s.GeneratedAt.Format("January 02, 2006"))

	if len(s.Sessions) == 0 {
		_, err := fmt.Fprintln(w, header+"\n"+noSessionsMsg)
		return err
	}

	chart, err := s.barChart()
	if err != nil {
		return err
	}

	categories, err := s.categoryTable()
	if err != nil {
		return err
	}

	output := fmt.Sprint(
		header,
		s.summary(),
		chart,
		categories,
	)

	_, err = fmt.Fprintln(w, strings.TrimSpace(output))

	return err
}

func (s *Stats) summary() string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	today := fmt.Sprintf(
		"Today: %s\n",
		ui.Green(timeutil.FormatMinutes(s.Summary.TodayTotalMinutes)),
	)

	allTime := fmt.Sprintf(
		"All time: %s\n",
		ui.Green(timeutil.FormatMinutes(s.Summary.AllTimeTotalMinutes)),
	)

	distractionText := ui.Green(s.Summary.TotalDistractions)
	if s.Summary.TotalDistractions > 0 {
		distractionText = ui.Yellow(s.Summary.TotalDistractions)
	}

	distractions := fmt.Sprintln("Distractions:", distractionText)

	return header + today + allTime + distractions
}

func (s *Stats) barChart() (string, error) {
	header := ui.Blue(fmt.Sprintf("\nLast %d days (minutes)", len(s.Days)))

	// the styled chart starts on a new line but the raw one does not
	if pterm.RawOutput {
		header += "\n"
	}

	bars := make(pterm.Bars, 0, len(s.Days))

	for _, d := range s.Days {
		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("%s %02d", d.Label, d.Date.Day()),
			Value: d.Minutes,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		return "", fmt.Errorf("rendering bar chart: %w", err)
	}

	return header + chart, nil
}

func (s *Stats) categoryTable() (string, error) {
	var total int
	for _, c := range s.Categories {
		total += c.Minutes
	}

	data := [][]string{
		{"CATEGORY", "TIME", "SHARE"},
	}

	for _, c := range s.Categories {
		share := 0.0
		if total > 0 {
			share = float64(c.Minutes) * 100 / float64(total)
		}

		data = append(data, []string{
			ui.Hex(c.Color, c.Name),
			timeutil.FormatMinutes(c.Minutes),
			fmt.Sprintf("%.0f%%", share),
		})
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Categories")))

	if err := ui.PrintTable(data, &b); err != nil {
		return "", err
	}

	return b.String(), nil
}
