package sponsors

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sponsorsdto "confmate/internal/modules/sponsors/dto"
	"confmate/internal/ui/theme"
)

type SponsorsPort interface {
	Sponsors(ctx context.Context) ([]sponsorsdto.GroupOutput, error)
}

type GroupsLoadedMsg struct {
	Groups []sponsorsdto.GroupOutput
	Err    error
}

type Model struct {
	port    SponsorsPort
	groups  []sponsorsdto.GroupOutput
	body    viewport.Model
	spinner spinner.Model
	loading bool
	loaded  bool
	errText string
	width   int
	height  int
}

func New(port SponsorsPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, body: vp, spinner: sp}
}

func (m Model) Init() tea.Cmd { return nil }

// Activate lazily loads sponsors when the tab is first shown. The app model
// calls this on tab switch.
func (m *Model) Activate() tea.Cmd {
	if m.loaded || m.loading {
		return nil
	}
	m.loading = true
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 4
		m.body.Height = m.height - 2

	case GroupsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			m.body.SetContent(theme.Bad.Render("sponsors: " + m.errText))
			return m, nil
		}
		m.loaded = true
		m.errText = ""
		m.groups = msg.Groups
		m.body.SetContent(m.renderGroups())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			m.loaded = false
			cmds = append(cmds, m.loadCmd(), m.spinner.Tick)
		}
	}

	var vpCmd tea.Cmd
	m.body, vpCmd = m.body.Update(msg)
	cmds = append(cmds, vpCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading sponsors…")
	}
	return m.body.View()
}

func (m Model) renderGroups() string {
	if len(m.groups) == 0 {
		return theme.Muted.Render("No sponsors listed for this event.")
	}
	var sb strings.Builder
	for i, group := range m.groups {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(theme.LevelStyle(group.Level).Render(group.Level) + "\n")
		for _, sponsor := range group.Sponsors {
			sb.WriteString("  " + sponsor.URL + "\n")
			for _, session := range sponsor.Sessions {
				sb.WriteString(theme.Muted.Render("    "+session.Start+"  "+session.Title+" ("+session.Room+")") + "\n")
			}
		}
	}
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		groups, err := m.port.Sponsors(context.Background())
		return GroupsLoadedMsg{Groups: groups, Err: err}
	}
}
