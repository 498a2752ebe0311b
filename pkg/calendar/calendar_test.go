package calendar

import (
	"testing"
	"time"

	"tablero.dev/tablero/pkg/catalog"
)

func TestGridAlwaysFortyTwoCells(t *testing.T) {
	// a leap year and a non-leap year, every month
	for _, year := range []int{2023, 2024} {
		for month := time.January; month <= time.December; month++ {
			c := NewCursor(time.Date(year, month, 10, 0, 0, 0, 0, time.UTC))
			cells := c.Grid(nil, time.Now())
			if len(cells) != GridSize {
				t.Fatalf("%d-%02d: expected %d cells, got %d", year, month, GridSize, len(cells))
			}
		}
	}
}

func TestGridLeadingAndTrailingDays(t *testing.T) {
	// March 1, 2024 is a Friday: 5 leading cells, labeled with the last
	// days of February (a leap month), then 31 days, then 6 trailing cells.
	c := NewCursor(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	cells := c.Grid(nil, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))

	wantLeading := []int{25, 26, 27, 28, 29}
	for i, want := range wantLeading {
		if !cells[i].OtherMonth || cells[i].Day != want {
			t.Fatalf("leading cell %d: got day %d other=%v, want day %d other-month", i, cells[i].Day, cells[i].OtherMonth, want)
		}
	}
	if cells[5].Day != 1 || cells[5].OtherMonth {
		t.Fatalf("first current-month cell wrong: %+v", cells[5])
	}
	if cells[35].Day != 31 || cells[35].OtherMonth {
		t.Fatalf("last current-month cell wrong: %+v", cells[35])
	}
	for i, want := 36, 1; i < GridSize; i, want = i+1, want+1 {
		if !cells[i].OtherMonth || cells[i].Day != want {
			t.Fatalf("trailing cell %d: got day %d other=%v, want day %d other-month", i, cells[i].Day, cells[i].OtherMonth, want)
		}
	}
}

func TestAdvanceInverse(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		c := NewCursor(time.Date(2024, month, 15, 0, 0, 0, 0, time.UTC))
		y, m := c.Year(), c.Month()
		c.Advance(1)
		c.Advance(-1)
		if c.Year() != y || c.Month() != m {
			t.Fatalf("advance +1/-1 from %d-%02d landed on %d-%02d", y, m, c.Year(), c.Month())
		}
		c.Advance(-1)
		c.Advance(1)
		if c.Year() != y || c.Month() != m {
			t.Fatalf("advance -1/+1 from %d-%02d landed on %d-%02d", y, m, c.Year(), c.Month())
		}
	}
}

func TestAdvanceRollsOverYears(t *testing.T) {
	tests := []struct {
		start     time.Time
		delta     int
		wantYear  int
		wantMonth time.Month
	}{
		{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), -1, 2023, time.December},
		{time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 1, 2025, time.January},
		{time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC), 13, 2025, time.December},
		{time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), -14, 2022, time.December},
		{time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), 24, 2026, time.June},
	}
	for _, tt := range tests {
		c := NewCursor(tt.start)
		c.Advance(tt.delta)
		if c.Year() != tt.wantYear || c.Month() != tt.wantMonth {
			t.Fatalf("advance %d from %s: got %d-%02d, want %d-%02d",
				tt.delta, tt.start.Format("2006-01"), c.Year(), c.Month(), tt.wantYear, tt.wantMonth)
		}
	}
}

func TestGridMarksToday(t *testing.T) {
	now := time.Date(2024, time.March, 15, 13, 45, 0, 0, time.UTC)
	c := NewCursor(now)
	cells := c.Grid(nil, now)
	for _, cell := range cells {
		want := !cell.OtherMonth && cell.Day == 15
		if cell.Today != want {
			t.Fatalf("cell %+v: today=%v, want %v", cell, cell.Today, want)
		}
	}

	// viewing a different month never marks today
	c.Advance(1)
	for _, cell := range c.Grid(nil, now) {
		if cell.Today {
			t.Fatalf("april view marked today on cell %+v", cell)
		}
	}
}

func TestGridMarksEventDays(t *testing.T) {
	events := []catalog.Event{
		{DateRaw: "2024-03-15", Title: "Kickoff"},
		{DateRaw: "2024-03-15T09:30:00Z", Title: "Sync"},
		{DateRaw: "2024-04-02", Title: "Other month"},
		{DateRaw: "not a date", Title: "Ignored"},
	}
	c := NewCursor(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	cells := c.Grid(events, time.Now())
	for _, cell := range cells {
		want := !cell.OtherMonth && cell.Day == 15
		if cell.HasEvents != want {
			t.Fatalf("cell day %d other=%v: has-events=%v, want %v", cell.Day, cell.OtherMonth, cell.HasEvents, want)
		}
	}
}

func TestEventsOnDefaultsToCursorAndDayOne(t *testing.T) {
	events := []catalog.Event{
		{DateRaw: "2024-03-01", Title: "Apertura"},
		{DateRaw: "2024-03-15", Title: "Kickoff"},
	}
	c := NewCursor(time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC))

	got := c.EventsOn(events, 0, 0, 0)
	if len(got) != 1 || got[0].Title != "Apertura" {
		t.Fatalf("defaulted lookup: got %+v, want the day-1 event", got)
	}

	got = c.EventsOn(events, 15, 0, 0)
	if len(got) != 1 || got[0].Title != "Kickoff" {
		t.Fatalf("day 15 lookup: got %+v", got)
	}

	got = c.EventsOn(events, 16, 0, 0)
	if got == nil || len(got) != 0 {
		t.Fatalf("no-event day should give an empty, non-nil slice, got %#v", got)
	}
}

func TestEventsOnExplicitMonthAndYear(t *testing.T) {
	events := []catalog.Event{{DateRaw: "2023-12-31", Title: "Cierre"}}
	c := NewCursor(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	got := c.EventsOn(events, 31, time.December, 2023)
	if len(got) != 1 || got[0].Title != "Cierre" {
		t.Fatalf("explicit lookup: got %+v", got)
	}
}

func TestTitle(t *testing.T) {
	c := NewCursor(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	if got := c.Title(); got != "Marzo 2024" {
		t.Fatalf("title: got %q", got)
	}
	c.Advance(-3)
	if got := c.Title(); got != "Diciembre 2023" {
		t.Fatalf("title after advance: got %q", got)
	}
}
