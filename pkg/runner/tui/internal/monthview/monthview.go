// Package monthview renders the fixed 42-cell month grid.
package monthview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tablero.dev/tablero/pkg/calendar"
)

// Options controls grid styling.
type Options struct {
	HeaderStyle     lipgloss.Style
	TitleStyle      lipgloss.Style
	DayStyle        lipgloss.Style
	OtherMonthStyle lipgloss.Style
	TodayStyle      lipgloss.Style
	EventStyle      lipgloss.Style
	SelectedStyle   lipgloss.Style
}

// DefaultOptions returns the styling used for the calendar section.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		TitleStyle:      lipgloss.NewStyle().Bold(true),
		DayStyle:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		OtherMonthStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		TodayStyle:      lipgloss.NewStyle().Underline(true),
		EventStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		SelectedStyle:   lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
	}
}

const weekdayHeader = "Do Lu Ma Mi Ju Vi Sa"

// Render produces the month title, weekday header, and six week rows.
// selectedDay highlights a current-month day; pass 0 for no selection.
func Render(title string, cells []calendar.Cell, selectedDay int, opts Options) string {
	lines := []string{
		opts.TitleStyle.Render(title),
		opts.HeaderStyle.Render(weekdayHeader),
	}

	for row := 0; row*7 < len(cells); row++ {
		rendered := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			idx := row*7 + col
			if idx >= len(cells) {
				break
			}
			rendered = append(rendered, renderCell(cells[idx], selectedDay, opts))
		}
		lines = append(lines, strings.Join(rendered, " "))
	}

	return strings.Join(lines, "\n")
}

func renderCell(c calendar.Cell, selectedDay int, opts Options) string {
	text := fmt.Sprintf("%2d", c.Day)

	if c.OtherMonth {
		return opts.OtherMonthStyle.Render(text)
	}

	style := opts.DayStyle
	if c.HasEvents {
		style = opts.EventStyle
	}
	if c.Today {
		style = style.Inherit(opts.TodayStyle)
	}
	if selectedDay > 0 && c.Day == selectedDay {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}
