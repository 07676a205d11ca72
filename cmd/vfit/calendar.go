package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vfit-app/vfit/internal/gymstats/calendar"
)

var (
	outOfMonthColor = color.New(color.Faint)
	eventDayColor   = color.New(color.Bold, color.FgGreen)
	headerColor     = color.New(color.Bold)
)

func NewCalendarCommand() *cobra.Command {
	var (
		date         string
		schedulePath string
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the workout calendar for a month",
		Long: `Print the workout calendar for a month.

The month of --date is shown as six full weeks starting on Sunday. Days from
the neighbouring months are dimmed, days with a scheduled event are
highlighted and listed below the grid.`,
		Example: "  vfit calendar --date 2024-03-15 --schedule schedule.csv",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := time.Now()
			if date != "" {
				parsed, err := time.ParseInLocation(calendar.DateLayout, date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
				}
				ref = parsed
			}

			schedule := calendar.Schedule{}
			if schedulePath != "" {
				loaded, err := readSchedule(schedulePath)
				if err != nil {
					return err
				}
				schedule = loaded
			}

			grid := calendar.BuildGrid(ref, schedule)
			out := cmd.OutOrStdout()
			renderGrid(out, ref, grid)
			renderLegend(out, grid)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&date, "date", "d", "", "any day of the month to show, YYYY-MM-DD (default today)")
	flags.StringVarP(&schedulePath, "schedule", "s", "", "schedule CSV file (DATE;TYPE;DESCRIPTION)")

	return cmd
}

func readSchedule(path string) (calendar.Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schedule: %w", err)
	}
	defer f.Close()

	schedule, err := calendar.LoadSchedule(csv.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("load schedule %s: %w", path, err)
	}
	return schedule, nil
}

func renderGrid(w io.Writer, ref time.Time, grid calendar.Grid) {
	fmt.Fprintln(w, headerColor.Sprint(ref.Format("January 2006")))
	fmt.Fprintln(w, "Su Mo Tu We Th Fr Sa")

	for _, week := range grid.Weeks() {
		days := make([]string, 0, len(week))
		for _, cell := range week {
			day := fmt.Sprintf("%2d", cell.Date.Day())
			switch {
			case cell.Event != nil:
				day = eventDayColor.Sprint(day)
			case !cell.IsCurrentMonth:
				day = outOfMonthColor.Sprint(day)
			}
			days = append(days, day)
		}
		fmt.Fprintln(w, strings.Join(days, " "))
	}
}

func renderLegend(w io.Writer, grid calendar.Grid) {
	var lines []string
	for _, cell := range grid {
		if cell.Event == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s  %s: %s",
			cell.DateString,
			eventDayColor.Sprint(cell.Event.Type),
			cell.Event.Description,
		))
	}
	if len(lines) == 0 {
		return
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}
