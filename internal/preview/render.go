// Package preview renders the portfolio in a terminal.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andersonsilva/portfolio/internal/content"
	"github.com/andersonsilva/portfolio/internal/theme"
	"github.com/andersonsilva/portfolio/internal/view"
)

const minWidth = 40

// Render returns the whole portfolio laid out for a terminal width columns wide, in the
// same section order as the web page.
func Render(c content.Content, mode theme.Mode, width int) string {
	if width < minWidth {
		width = minWidth
	}
	st := newStyles(mode)
	inner := width - 4 // card border + padding

	var b strings.Builder
	write := func(parts ...string) {
		for _, p := range parts {
			b.WriteString(p)
			b.WriteString("\n")
		}
	}

	write(renderHeader(c.Profile, mode, st, width))

	for _, s := range view.Sections {
		write(st.Section.Render("# " + s.Title))
		switch s.ID {
		case "sobre":
			for _, para := range c.Profile.About {
				write(st.Body.Width(width).Render(collapse(para)))
			}
		case "habilidades":
			for _, g := range c.Skills {
				write(st.Card.Width(inner).Render(skillCard(g, st, inner)))
			}
		case "projetos":
			for _, p := range c.Projects {
				write(st.Card.Width(inner).Render(projectCard(p, st, inner)))
			}
			write(st.Meta.Render("Mais Projetos em Breve"))
		case "experiencia":
			for _, e := range c.Experience {
				write(st.Card.Width(inner).Render(experienceCard(e, st, inner)))
			}
		case "educacao":
			for _, e := range c.Education {
				write(st.Card.Width(inner).Render(educationCard(e, st)))
			}
		}
	}

	write(st.Footer.Render("© " + c.Profile.Year + " " + c.Profile.Name + ". Todos os direitos reservados."))
	return b.String()
}

func renderHeader(p content.Profile, mode theme.Mode, st styles, width int) string {
	name := st.Name.Render(p.Name)
	toggle := st.Toggle.Render(toggleGlyph(mode))
	gap := width - lipgloss.Width(name) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}
	lines := []string{
		name + strings.Repeat(" ", gap) + toggle,
		st.Headline.Render(p.Headline),
	}
	var meta []string
	if p.Location != "" {
		meta = append(meta, p.Location)
	}
	if p.Phone != "" {
		meta = append(meta, p.Phone)
	}
	if len(meta) > 0 {
		lines = append(lines, st.Meta.Render(strings.Join(meta, "  ·  ")))
	}
	return strings.Join(lines, "\n")
}

func skillCard(g content.SkillGroup, st styles, width int) string {
	chips := make([]string, len(g.Skills))
	for i, s := range g.Skills {
		chips[i] = st.Chip.Render(s)
	}
	return st.CardHead.Render(g.Category) + "\n" + wrapChips(chips, width)
}

func projectCard(p content.Project, st styles, width int) string {
	lines := []string{
		st.CardHead.Render(p.Title),
		st.Body.Width(width).Render(p.Description),
	}
	if len(p.Technologies) > 0 {
		chips := make([]string, len(p.Technologies))
		for i, t := range p.Technologies {
			chips[i] = st.Chip.Render(t)
		}
		lines = append(lines, wrapChips(chips, width))
	}
	links := "GitHub: " + st.Link.Render(p.RepoURL)
	if p.HasDemo() {
		links += "  Demo: " + st.Link.Render(p.DemoURL)
	}
	lines = append(lines, links)
	return strings.Join(lines, "\n")
}

func experienceCard(e content.Experience, st styles, width int) string {
	lines := []string{
		st.CardHead.Render(e.Company),
		st.Accent.Render(e.Role),
		st.Meta.Render(e.Period),
	}
	for _, r := range e.Responsibilities {
		lines = append(lines, st.Body.Width(width).Render("• "+r))
	}
	return strings.Join(lines, "\n")
}

func educationCard(e content.Education, st styles) string {
	return strings.Join([]string{
		st.CardHead.Render(e.Course),
		st.Body.Render(e.Institution),
		st.Accent.Render("Conclusão: " + e.Year),
	}, "\n")
}

// wrapChips lays chips out left to right, breaking lines at width.
func wrapChips(chips []string, width int) string {
	var lines []string
	var line string
	for _, c := range chips {
		switch {
		case line == "":
			line = c
		case lipgloss.Width(line)+1+lipgloss.Width(c) > width:
			lines = append(lines, line)
			line = c
		default:
			line += " " + c
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// collapse joins the hard-wrapped lines of a paragraph.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
