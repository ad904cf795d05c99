package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	eventdto "confmate/internal/modules/event/dto"
	sponsorsdto "confmate/internal/modules/sponsors/dto"
	apperrors "confmate/internal/platform/errors"
	"confmate/internal/ui/components"
	"confmate/internal/ui/theme"
	agendaview "confmate/internal/ui/views/agenda"
	feedbackview "confmate/internal/ui/views/feedback"
	sponsorsview "confmate/internal/ui/views/sponsors"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type eventPort interface {
	Refresh(ctx context.Context) (eventdto.RefreshOutput, error)
	Agenda(ctx context.Context) (eventdto.AgendaOutput, error)
	Toggle(ctx context.Context, sessionID string) (eventdto.ToggleOutput, error)
	Bookmarked(ctx context.Context) ([]eventdto.SessionOutput, error)
	Sponsors(ctx context.Context) ([]sponsorsdto.GroupOutput, error)
	Options(ctx context.Context) ([]eventdto.OptionOutput, error)
	SetOption(ctx context.Context, name string, selected bool) error
	SetSubOption(ctx context.Context, option, sub string, selected bool) error
}

type feedbackPort interface {
	Submit(ctx context.Context, sessionID string, rating int, comment string) error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabAgenda tabID = iota
	tabSponsors
	tabFeedback
	tabCount
)

var tabLabels = [tabCount]string{"Agenda", "Sponsors", "Feedback"}

// ─── async messages ───────────────────────────────────────────────────────────

type bookmarkedLoadedMsg struct {
	sessions []eventdto.SessionOutput
	err      error
}

type filterChangedMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
	Refresh  key.Binding
	Bookmark key.Binding
	Filter   key.Binding
	Feedback key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Bookmark: key.NewBinding(key.WithKeys("b", " "), key.WithHelp("b", "bookmark")),
		Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
		Feedback: key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "feedback")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Refresh, k.Bookmark},
		{k.Filter, k.Feedback},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the status bar,
// the help overlay, and the command palette. All business logic is delegated
// to port interfaces; all rendering is delegated to sub-views.
type Model struct {
	eventName string
	deviceID  string

	event    eventPort
	feedback feedbackPort

	agendaView   agendaview.Model
	sponsorsView sponsorsview.Model
	feedbackView feedbackview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(eventName, deviceID string, event eventPort, feedback feedbackPort) Model {
	return Model{
		eventName:    eventName,
		deviceID:     deviceID,
		event:        event,
		feedback:     feedback,
		agendaView:   agendaview.New(event),
		sponsorsView: sponsorsview.New(event),
		feedbackView: feedbackview.New(feedback),
		activeTab:    tabAgenda,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.agendaView.Init(), m.feedbackView.Init())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	// RefreshedMsg is produced by the agenda view but bubbles up through the
	// top level so the status bar can report fetch outcomes.
	case agendaview.RefreshedMsg:
		m.status = refreshStatus(msg)
		var cmd tea.Cmd
		m.agendaView, cmd = m.agendaView.Update(msg)
		return m, cmd

	case feedbackview.SubmittedMsg:
		if msg.Err != nil {
			m.status = "feedback: " + msg.Err.Error()
		} else {
			m.status = "feedback sent for " + msg.SessionID
		}
		var cmd tea.Cmd
		m.feedbackView, cmd = m.feedbackView.Update(msg)
		return m, cmd

	case bookmarkedLoadedMsg:
		if msg.err != nil {
			m.status = "bookmarks: " + msg.err.Error()
		} else if len(msg.sessions) == 0 {
			m.status = "no bookmarks yet"
		} else {
			titles := make([]string, 0, len(msg.sessions))
			for _, s := range msg.sessions {
				titles = append(titles, s.Title)
			}
			m.status = "bookmarked: " + strings.Join(titles, " · ")
		}

	case filterChangedMsg:
		if msg.err != nil {
			m.status = "filters: " + msg.err.Error()
		} else {
			m.status = "filters updated"
			var cmd tea.Cmd
			m.agendaView, cmd = m.agendaView.Update(agendaview.RefreshedMsg{})
			return m, cmd
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the feedback form while a text field has focus.
		if m.activeTab == tabFeedback && m.feedbackView.Editing() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.setTab((m.activeTab + 1) % tabCount)
			cmds = append(cmds, m.activateTab())
			return m, tea.Batch(cmds...)
		case "shift+tab":
			m.setTab((m.activeTab + tabCount - 1) % tabCount)
			cmds = append(cmds, m.activateTab())
			return m, tea.Batch(cmds...)
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "F":
			if m.activeTab == tabAgenda {
				if id, ok := m.agendaView.SelectedSessionID(); ok {
					m.setTab(tabFeedback)
					m.feedbackView.SetSession(id)
					m.status = "feedback for " + id
					return m, nil
				}
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabAgenda:
		m.agendaView, tabCmd = m.agendaView.Update(msg)
	case tabSponsors:
		m.sponsorsView, tabCmd = m.sponsorsView.Update(msg)
	case tabFeedback:
		m.feedbackView, tabCmd = m.feedbackView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabAgenda:
		return m.agendaView.View()
	case tabSponsors:
		return m.sponsorsView.View()
	case tabFeedback:
		return m.feedbackView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := m.eventName + "  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "refresh":
		m.setTab(tabAgenda)
		m.status = "refreshing…"
		return m, m.agendaView.RefreshCmd()

	case "bookmark":
		if len(parts) < 2 {
			m.status = "usage: bookmark <session-id>"
			return m, nil
		}
		return m, m.toggleBookmarkCmd(parts[1])

	case "bookmarks":
		return m, m.loadBookmarkedCmd()

	case "filter:mine":
		if len(parts) < 2 || (parts[1] != "on" && parts[1] != "off") {
			m.status = "usage: filter:mine on|off"
			return m, nil
		}
		m.setTab(tabAgenda)
		return m, m.setOptionCmd("My Timeline", "", parts[1] == "on")

	case "filter:room":
		if len(parts) < 2 {
			m.status = "usage: filter:room <name>"
			return m, nil
		}
		m.setTab(tabAgenda)
		name := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		return m, m.setOptionCmd("Rooms", name, true)

	case "filter:time":
		if len(parts) < 2 {
			m.status = "usage: filter:time <label>"
			return m, nil
		}
		m.setTab(tabAgenda)
		label := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		return m, m.setOptionCmd("Times", label, true)

	case "filter:clear":
		m.setTab(tabAgenda)
		return m, m.clearFiltersCmd()

	case "sponsors":
		m.setTab(tabSponsors)
		return m, m.activateTab()

	case "feedback":
		m.setTab(tabFeedback)
		if len(parts) >= 2 {
			m.feedbackView.SetSession(parts[1])
		}
		m.status = "feedback form"
		return m, nil

	case "device":
		m.status = "device id: " + m.deviceID
		return m, nil

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) setTab(tab tabID) {
	m.activeTab = tab
}

// activateTab gives the newly shown tab a chance to lazy-load.
func (m *Model) activateTab() tea.Cmd {
	if m.activeTab == tabSponsors {
		return m.sponsorsView.Activate()
	}
	return nil
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.agendaView, _ = m.agendaView.Update(sz)
	m.sponsorsView, _ = m.sponsorsView.Update(sz)
	m.feedbackView, _ = m.feedbackView.Update(sz)
}

func refreshStatus(msg agendaview.RefreshedMsg) string {
	switch {
	case msg.Err != nil && errors.Is(msg.Err, apperrors.ErrTimeout):
		return "request timed out — schedule unchanged"
	case msg.Err != nil && errors.Is(msg.Err, apperrors.ErrMalformed):
		return "schedule response malformed — schedule unchanged"
	case msg.Err != nil:
		return "refresh failed: " + msg.Err.Error()
	case msg.Out.Superseded:
		return "refresh superseded by a newer one"
	default:
		return fmt.Sprintf("schedule updated: %d sessions, %d speakers",
			msg.Out.Sessions, msg.Out.Speakers)
	}
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) toggleBookmarkCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.event.Toggle(context.Background(), sessionID)
		return agendaview.ToggledMsg{Out: out, Err: err}
	}
}

func (m Model) loadBookmarkedCmd() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.event.Bookmarked(context.Background())
		return bookmarkedLoadedMsg{sessions: sessions, err: err}
	}
}

func (m Model) setOptionCmd(option, sub string, selected bool) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if sub == "" {
			err = m.event.SetOption(ctx, option, selected)
		} else {
			err = m.event.SetSubOption(ctx, option, sub, selected)
		}
		return filterChangedMsg{err: err}
	}
}

func (m Model) clearFiltersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		options, err := m.event.Options(ctx)
		if err != nil {
			return filterChangedMsg{err: err}
		}
		for _, option := range options {
			if option.Selected {
				if err := m.event.SetOption(ctx, option.Name, false); err != nil {
					return filterChangedMsg{err: err}
				}
			}
			for _, sub := range option.Options {
				if sub.Selected {
					if err := m.event.SetSubOption(ctx, option.Name, sub.Name, false); err != nil {
						return filterChangedMsg{err: err}
					}
				}
			}
		}
		return filterChangedMsg{}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
