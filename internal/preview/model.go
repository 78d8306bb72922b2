package preview

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andersonsilva/portfolio/internal/content"
	"github.com/andersonsilva/portfolio/internal/theme"
)

const helpLine = "t: alternar tema  ↑/↓: rolar  q: sair"

// Model is the bubbletea model of the interactive preview. The theme is the only state
// that changes; every toggle re-renders the whole document.
type Model struct {
	content  content.Content
	mode     theme.Mode
	viewport viewport.Model
	ready    bool
	width    int
}

// NewModel returns a preview starting in mode.
func NewModel(c content.Content, mode theme.Mode) Model {
	return Model{content: c, mode: mode}
}

// Mode is the current theme.
func (m Model) Mode() theme.Mode { return m.mode }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := msg.Height - 1 // help line
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(Render(m.content, m.mode, m.width))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t":
			m.mode = m.mode.Toggle()
			if m.ready {
				m.viewport.SetContent(Render(m.content, m.mode, m.width))
			}
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "carregando..."
	}
	return m.viewport.View() + "\n" + newStyles(m.mode).Help.Render(helpLine)
}

// Run starts the interactive preview on the alternate screen and blocks until the user quits.
func Run(ctx context.Context, c content.Content, mode theme.Mode, in io.Reader, out io.Writer) (theme.Mode, error) {
	p := tea.NewProgram(NewModel(c, mode),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return mode, err
	}
	if fm, ok := final.(Model); ok {
		return fm.mode, nil
	}
	return mode, nil
}
