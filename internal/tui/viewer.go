// internal/tui/viewer.go
// Package tui provides the interactive surface browser: one tab strip
// across the top, with the active tab's panels stacked in a scrollable
// viewport underneath.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/visor/internal/util"
	"github.com/mwiater/visor/surface"
)

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("229")).Foreground(lipgloss.Color("0")).Padding(0, 2)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 2)
	panelTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Underline(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
)

// model is the main application model for the Bubble Tea UI.
type model struct {
	manager       *surface.Manager
	tabs          []string
	activeTab     int
	viewport      viewport.Model
	width, height int
	ready         bool
}

// NewModel creates the viewer model for the given surface registry.
func NewModel(manager *surface.Manager) tea.Model {
	return model{
		manager: manager,
		tabs:    manager.Tabs(),
	}
}

// Run starts the full-screen viewer over the given surfaces and blocks
// until the user quits.
func Run(manager *surface.Manager) error {
	if len(manager.Tabs()) == 0 {
		return fmt.Errorf("nothing to view: no surfaces have been rendered")
	}
	p := tea.NewProgram(NewModel(manager), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.activeTab = (m.activeTab + 1) % util.Max(len(m.tabs), 1)
			m.refreshViewport()
			return m, nil
		case "shift+tab", "left", "h":
			m.activeTab = (m.activeTab - 1 + util.Max(len(m.tabs), 1)) % util.Max(len(m.tabs), 1)
			m.refreshViewport()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.refreshViewport()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m model) View() string {
	if !m.ready {
		return "loading surfaces..."
	}
	var b strings.Builder
	b.WriteString(m.tabStrip())
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/←→ switch tabs • ↑↓ scroll • q quit"))
	return b.String()
}

// tabStrip renders the tab row with the active tab highlighted.
func (m model) tabStrip() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeTabStyle.Render(tab))
			continue
		}
		parts = append(parts, inactiveTabStyle.Render(tab))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// refreshViewport rebuilds the viewport content from the active tab's
// panels, clipping long lines to the terminal width.
func (m *model) refreshViewport() {
	if !m.ready || len(m.tabs) == 0 {
		return
	}
	var sections []string
	for _, target := range m.manager.TabTargets(m.tabs[m.activeTab]) {
		content := target.Content()
		if content == "" {
			content = helpStyle.Render("(not rendered yet)")
		}
		sections = append(sections, panelTitleStyle.Render(target.Name())+"\n"+content)
	}
	body := strings.Join(sections, "\n\n")
	if m.width > 0 {
		body = util.TruncateToWidth(body, m.width)
	}
	m.viewport.SetContent(body)
	m.viewport.GotoTop()
}
