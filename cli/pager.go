package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pagerFrame = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			PaddingLeft(2).
			PaddingRight(2)

	pagerHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(2)
)

// pagerModel represents the state for the pager UI
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPager(title, content string) *pagerModel {
	return &pagerModel{
		title:   title,
		content: content,
	}
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		// 2 lines of help and 2 lines of border
		height := msg.Height - 4
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.Style = pagerFrame
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *pagerModel) View() string {
	if !m.ready {
		return "\nLoading..."
	}
	help := fmt.Sprintf("%s • %3.f%% • ↑/k ↓/j scroll • g/G top/bottom • q quit",
		m.title, m.viewport.ScrollPercent()*100)
	return m.viewport.View() + "\n" + pagerHelp.Render(help)
}

// runPager shows content full screen until the user quits
func runPager(title, content string) error {
	_, err := tea.NewProgram(
		newPager(title, content),
		tea.WithAltScreen(),
	).Run()
	return err
}
