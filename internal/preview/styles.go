package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/andersonsilva/portfolio/internal/theme"
)

// styles are the lipgloss styles for one theme mode.
type styles struct {
	Name     lipgloss.Style
	Headline lipgloss.Style
	Meta     lipgloss.Style
	Section  lipgloss.Style
	Card     lipgloss.Style
	CardHead lipgloss.Style
	Accent   lipgloss.Style
	Body     lipgloss.Style
	Chip     lipgloss.Style
	Link     lipgloss.Style
	Footer   lipgloss.Style
	Help     lipgloss.Style
	Toggle   lipgloss.Style
}

func newStyles(mode theme.Mode) styles {
	p := mode.Palette()
	accent := lipgloss.Color(p.Accent)
	muted := lipgloss.Color(p.Muted)
	text := lipgloss.Color(p.Text)

	toggle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#eab308")) // yellow-500 sun
	if !mode.IsDark() {
		toggle = toggle.Foreground(lipgloss.Color("#334155")) // slate-700 moon
	}

	return styles{
		Name:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Headline: lipgloss.NewStyle().Foreground(text),
		Meta:     lipgloss.NewStyle().Foreground(muted),
		Section:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Secondary)).MarginTop(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(0, 1),
		CardHead: lipgloss.NewStyle().Bold(true).Foreground(text),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Body:     lipgloss.NewStyle().Foreground(muted),
		Chip:     lipgloss.NewStyle().Foreground(text).Background(lipgloss.Color(p.Chip)).Padding(0, 1),
		Link:     lipgloss.NewStyle().Underline(true).Foreground(accent),
		Footer:   lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		Help:     lipgloss.NewStyle().Foreground(muted).Italic(true),
		Toggle:   toggle,
	}
}

// toggleGlyph is the terminal stand-in for the page's sun/moon icon.
func toggleGlyph(mode theme.Mode) string {
	if mode.ToggleIcon() == "sun" {
		return "☀"
	}
	return "☾"
}
