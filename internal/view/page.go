package view

import (
	"github.com/andersonsilva/portfolio/internal/content"
	"github.com/andersonsilva/portfolio/internal/theme"
)

// Section is one anchored block of the page.
type Section struct {
	ID       string
	NavLabel string
	Title    string
}

// Template is the template name that renders the section on its own.
func (s Section) Template() string { return "section-" + s.ID }

// Sections is the fixed order of the anchored sections.
var Sections = []Section{
	{ID: "sobre", NavLabel: "Sobre", Title: "Resumo Profissional"},
	{ID: "habilidades", NavLabel: "Habilidades", Title: "Habilidades Técnicas"},
	{ID: "projetos", NavLabel: "Projetos", Title: "Projetos"},
	{ID: "experiencia", NavLabel: "Experiência", Title: "Experiência Profissional"},
	{ID: "educacao", NavLabel: "Educação", Title: "Formação Acadêmica"},
}

// LookupSection finds a section by anchor id.
func LookupSection(id string) (Section, bool) {
	for _, s := range Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Page is the view model of the portfolio.
type Page struct {
	Title    string
	Theme    theme.Mode
	Content  content.Content
	Sections []Section
}

// NewPage builds the view model for c rendered in mode.
func NewPage(c content.Content, mode theme.Mode) Page {
	title := c.Profile.Name
	if c.Profile.Headline != "" {
		title += " | " + c.Profile.Headline
	}
	return Page{
		Title:    title,
		Theme:    mode,
		Content:  c,
		Sections: Sections,
	}
}

// SectionTitle returns the heading text of the section with the given id.
func (p Page) SectionTitle(id string) string {
	s, _ := LookupSection(id)
	return s.Title
}

// SocialLinks returns the hero's social links in display order, skipping empty ones.
func (p Page) SocialLinks() []SocialLink {
	prof := p.Content.Profile
	candidates := []SocialLink{
		{Icon: "github", Label: "GitHub", Href: prof.GitHubURL},
		{Icon: "linkedin", Label: "LinkedIn", Href: prof.LinkedInURL},
		{Icon: "mail", Label: "E-mail", Href: prof.MailURL},
	}
	out := candidates[:0]
	for _, l := range candidates {
		if l.Href != "" {
			out = append(out, l)
		}
	}
	return out
}

// SocialLink is a round icon link in the hero.
type SocialLink struct {
	Icon  string
	Label string
	Href  string
}
