package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the dashboard UI.
type Theme struct {
	Header       lipgloss.Style
	Counter      lipgloss.Style
	CounterLabel lipgloss.Style

	SectionTitle lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	Subtitle     lipgloss.Style
	Badge        lipgloss.Style
	BadgeSuccess lipgloss.Style
	BadgeWarning lipgloss.Style
	Faint        lipgloss.Style
	Link         lipgloss.Style

	Status lipgloss.Style
	Alert  lipgloss.Style

	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("63")).
		Padding(0, 1)

	return Theme{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Counter:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		CounterLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),

		SectionTitle: lipgloss.NewStyle().Bold(true).Underline(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
		CardTitle:    lipgloss.NewStyle().Bold(true),
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Badge:        badge,
		BadgeSuccess: badge.Background(lipgloss.Color("35")),
		BadgeWarning: badge.Background(lipgloss.Color("214")),
		Faint:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Link:         lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),

		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Alert:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().Bold(true),
	}
}
