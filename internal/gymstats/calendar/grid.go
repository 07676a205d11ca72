package calendar

import "time"

const (
	DaysPerWeek = 7
	GridWeeks   = 6
	GridSize    = GridWeeks * DaysPerWeek

	// DateLayout is the canonical date key format, e.g. 2024-03-15.
	DateLayout = "2006-01-02"
)

// ScheduledEvent is a planned activity attached to a calendar day.
type ScheduledEvent struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type DayCell struct {
	Date           time.Time       `json:"date"`
	DateString     string          `json:"dateString"`
	IsCurrentMonth bool            `json:"isCurrentMonth"`
	Event          *ScheduledEvent `json:"event,omitempty"`
}

// Grid holds GridSize day cells, row-major, weeks starting on Sunday.
type Grid []DayCell

// Weeks splits the grid into rows of DaysPerWeek cells.
func (g Grid) Weeks() [][]DayCell {
	weeks := make([][]DayCell, 0, len(g)/DaysPerWeek)
	for i := 0; i+DaysPerWeek <= len(g); i += DaysPerWeek {
		weeks = append(weeks, g[i:i+DaysPerWeek])
	}
	return weeks
}

// DateString formats t as a YYYY-MM-DD key in t's own location.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// BuildGrid lays out six full weeks starting from the Sunday on or before the
// first day of referenceDate's month. A cell gets an event when its date
// string is a key in events; each cell holds its own copy of the event.
//
// IsCurrentMonth only compares month numbers, the year is not taken into account.
func BuildGrid(referenceDate time.Time, events map[string]ScheduledEvent) Grid {
	loc := referenceDate.Location()
	firstOfMonth := time.Date(referenceDate.Year(), referenceDate.Month(), 1, 0, 0, 0, 0, loc)
	start := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))

	grid := make(Grid, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		day := start.AddDate(0, 0, i)
		cell := DayCell{
			Date:           day,
			DateString:     DateString(day),
			IsCurrentMonth: day.Month() == referenceDate.Month(),
		}
		if event, ok := events[cell.DateString]; ok {
			cell.Event = &event
		}
		grid = append(grid, cell)
	}

	return grid
}

// NextMonth returns the day after the last day of referenceDate's month.
func NextMonth(referenceDate time.Time) time.Time {
	return time.Date(referenceDate.Year(), referenceDate.Month()+1, 1, 0, 0, 0, 0, referenceDate.Location())
}

// PrevMonth returns the day before the first day of referenceDate's month.
func PrevMonth(referenceDate time.Time) time.Time {
	return time.Date(referenceDate.Year(), referenceDate.Month(), 0, 0, 0, 0, 0, referenceDate.Location())
}
