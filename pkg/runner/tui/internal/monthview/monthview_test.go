package monthview

import (
	"strings"
	"testing"
	"time"

	"tablero.dev/tablero/pkg/calendar"
)

func TestRenderSixWeekRows(t *testing.T) {
	cur := calendar.NewCursor(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	cells := cur.Grid(nil, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))

	out := Render(cur.Title(), cells, 0, DefaultOptions())
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("expected title + header + 6 week rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Marzo 2024") {
		t.Fatalf("title row: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Do Lu Ma Mi Ju Vi Sa") {
		t.Fatalf("weekday header row: %q", lines[1])
	}
	// March 2024 starts on a Friday: the first row carries five
	// previous-month cells then days 1 and 2
	if !strings.Contains(lines[2], "25") || !strings.Contains(lines[2], " 1") {
		t.Fatalf("first week row: %q", lines[2])
	}
}

func TestRenderRowWidthIsUniform(t *testing.T) {
	cur := calendar.NewCursor(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	cells := cur.Grid(nil, time.Time{})

	out := Render(cur.Title(), cells, 0, Options{})
	lines := strings.Split(out, "\n")
	for _, row := range lines[2:] {
		// 7 two-wide cells joined by single spaces
		if len([]rune(row)) != 7*2+6 {
			t.Fatalf("row width %d: %q", len([]rune(row)), row)
		}
	}
}
