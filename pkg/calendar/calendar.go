// Package calendar derives the month grid shown in the calendar section.
// The grid is always exactly 42 cells (6 weeks, Sunday-first): leading cells
// show the trailing days of the previous month, then one cell per day of the
// viewed month, then enough next-month cells to fill the grid.
package calendar

import (
	"fmt"
	"time"

	"tablero.dev/tablero/pkg/catalog"
)

// GridSize is the fixed cell count of a rendered month.
const GridSize = 42

// Cell is one day cell of the month grid. OtherMonth cells belong to the
// adjacent months and are not interactive for event lookup.
type Cell struct {
	Day        int
	OtherMonth bool
	Today      bool
	HasEvents  bool
}

// Cursor is the viewed (year, month) pair. It is independent of the real
// current date and has no day component.
type Cursor struct {
	year  int
	month time.Month
}

// NewCursor returns a cursor positioned on t's month.
func NewCursor(t time.Time) *Cursor {
	return &Cursor{year: t.Year(), month: t.Month()}
}

// Year returns the viewed year.
func (c *Cursor) Year() int { return c.year }

// Month returns the viewed month.
func (c *Cursor) Month() time.Month { return c.month }

// Advance moves the cursor by delta months. The arithmetic goes through
// time.Date so an out-of-range month component normalizes across year
// boundaries for any integer delta.
func (c *Cursor) Advance(delta int) {
	t := time.Date(c.year, c.month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	c.year = t.Year()
	c.month = t.Month()
}

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Title renders the viewed month label, e.g. "Marzo 2024".
func (c *Cursor) Title() string {
	return fmt.Sprintf("%s %d", monthNames[c.month-1], c.year)
}

// Grid produces the 42-cell grid for the viewed month. The today tag is
// computed against now at render time; has-events compares calendar dates
// only, ignoring time of day. Trailing cells are labeled 1..N to fill the
// grid without clipping to the real day count of the next month.
func (c *Cursor) Grid(events []catalog.Event, now time.Time) []Cell {
	first := time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.UTC)
	leading := int(first.Weekday())
	daysInMonth := daysIn(c.year, c.month)
	// Day zero of the viewed month normalizes to the last day of the
	// previous month.
	daysInPrev := time.Date(c.year, c.month, 0, 0, 0, 0, 0, time.UTC).Day()

	eventDays := make(map[int]bool)
	for _, e := range events {
		if d, ok := e.Date(); ok && d.Year() == c.year && d.Month() == c.month {
			eventDays[d.Day()] = true
		}
	}

	cells := make([]Cell, 0, GridSize)
	for i := leading - 1; i >= 0; i-- {
		cells = append(cells, Cell{Day: daysInPrev - i, OtherMonth: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, Cell{
			Day:       day,
			Today:     c.year == now.Year() && c.month == now.Month() && day == now.Day(),
			HasEvents: eventDays[day],
		})
	}
	for day := 1; len(cells) < GridSize; day++ {
		cells = append(cells, Cell{Day: day, OtherMonth: true})
	}
	return cells
}

// DaysInMonth returns the day count of the viewed month.
func (c *Cursor) DaysInMonth() int {
	return daysIn(c.year, c.month)
}

// EventsOn returns every event whose calendar date equals (year, month,
// day). Zero arguments default to the cursor's month and year and to day 1.
// No matching events yields an empty slice.
func (c *Cursor) EventsOn(events []catalog.Event, day int, month time.Month, year int) []catalog.Event {
	if year == 0 {
		year = c.year
	}
	if month == 0 {
		month = c.month
	}
	if day <= 0 {
		day = 1
	}
	out := make([]catalog.Event, 0)
	for _, e := range events {
		if d, ok := e.Date(); ok && d.Year() == year && d.Month() == month && d.Day() == day {
			out = append(out, e)
		}
	}
	return out
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}
