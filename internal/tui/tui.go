// ABOUTME: Bubbletea terminal dashboard: role side panel plus a scrollable main panel.
// ABOUTME: Each role change runs a fresh render cycle and replaces the main panel.
package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/galaxydash/internal/models"
	"github.com/harperreed/galaxydash/internal/render"
)

const sidebarWidth = 22

// Renderer runs one render cycle for a role.
type Renderer interface {
	Render(ctx context.Context, role models.Role) (*render.Page, error)
}

type pageMsg struct {
	role models.Role
	page *render.Page
}

type errMsg struct {
	role models.Role
	err  error
}

type model struct {
	ctx      context.Context
	renderer Renderer
	cursor   int
	page     *render.Page
	err      error
	loading  bool
	viewport viewport.Model
	width    int
	height   int
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	sidebarStyle  = lipgloss.NewStyle().Width(sidebarWidth).Padding(1, 1).BorderStyle(lipgloss.NormalBorder()).BorderRight(true)
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newModel(ctx context.Context, renderer Renderer, initial models.Role) *model {
	cursor := 0
	for i, r := range models.AllRoles {
		if r == initial {
			cursor = i
		}
	}
	return &model{
		ctx:      ctx,
		renderer: renderer,
		cursor:   cursor,
		loading:  true,
		viewport: viewport.New(80, 20),
		width:    80 + sidebarWidth,
		height:   24,
	}
}

func (m *model) role() models.Role {
	return models.AllRoles[m.cursor]
}

func (m *model) renderCmd() tea.Cmd {
	role := m.role()
	ctx := m.ctx
	renderer := m.renderer
	return func() tea.Msg {
		page, err := renderer.Render(ctx, role)
		if err != nil {
			return errMsg{role: role, err: err}
		}
		return pageMsg{role: role, page: page}
	}
}

func (m *model) Init() tea.Cmd {
	return m.renderCmd()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			return m, m.selectRole(m.cursor - 1)
		case "down", "j", "tab":
			return m, m.selectRole(m.cursor + 1)
		case "r", "enter":
			m.loading = true
			return m, m.renderCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-sidebarWidth-3, 10)
		m.viewport.Height = max(msg.Height-3, 3)
		m.refreshContent()
		return m, nil

	case pageMsg:
		if msg.role != m.role() {
			return m, nil
		}
		m.page = msg.page
		m.err = nil
		m.loading = false
		m.refreshContent()
		m.viewport.GotoTop()
		return m, nil

	case errMsg:
		if msg.role != m.role() {
			return m, nil
		}
		m.err = msg.err
		m.loading = false
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// selectRole moves the cursor, wrapping at both ends, and starts a new cycle.
func (m *model) selectRole(i int) tea.Cmd {
	n := len(models.AllRoles)
	m.cursor = (i%n + n) % n
	m.loading = true
	return m.renderCmd()
}

func (m *model) refreshContent() {
	if m.page == nil {
		return
	}
	var buf bytes.Buffer
	if err := render.WriteText(&buf, m.page); err != nil {
		m.err = err
		return
	}
	m.viewport.SetContent(buf.String())
}

func (m *model) View() string {
	var side strings.Builder
	side.WriteString(titleStyle.Render("Select Role"))
	side.WriteString("\n\n")
	for i, r := range models.AllRoles {
		if i == m.cursor {
			side.WriteString(activeStyle.Render("> " + string(r)))
		} else {
			side.WriteString(inactiveStyle.Render("  " + string(r)))
		}
		side.WriteString("\n")
	}

	var main string
	switch {
	case m.err != nil:
		main = errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	case m.page == nil:
		main = "Loading..."
	default:
		main = m.viewport.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebarStyle.Render(side.String()), " ", main)
	help := helpStyle.Render(" ↑/↓ role • r reload • pgup/pgdn scroll • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, help)
}

// Run starts the terminal dashboard on initial and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, renderer Renderer, initial models.Role) error {
	p := tea.NewProgram(newModel(ctx, renderer, initial), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
