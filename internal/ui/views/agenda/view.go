package agenda

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	eventdto "confmate/internal/modules/event/dto"
	"confmate/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AgendaPort interface {
	Refresh(ctx context.Context) (eventdto.RefreshOutput, error)
	Agenda(ctx context.Context) (eventdto.AgendaOutput, error)
	Toggle(ctx context.Context, sessionID string) (eventdto.ToggleOutput, error)
	Options(ctx context.Context) ([]eventdto.OptionOutput, error)
	SetOption(ctx context.Context, name string, selected bool) error
	SetSubOption(ctx context.Context, option, sub string, selected bool) error
}

// ─── messages ────────────────────────────────────────────────────────────────

// RefreshedMsg bubbles to the app model so the status bar can report fetch
// outcomes (including timeouts) globally.
type RefreshedMsg struct {
	Out eventdto.RefreshOutput
	Err error
}

type AgendaLoadedMsg struct {
	Out eventdto.AgendaOutput
	Err error
}

type ToggledMsg struct {
	Out eventdto.ToggleOutput
	Err error
}

type OptionsLoadedMsg struct {
	Options []eventdto.OptionOutput
	Err     error
}

type filterAppliedMsg struct{ err error }

// ─── rows ────────────────────────────────────────────────────────────────────

type rowKind int

const (
	rowHeader rowKind = iota
	rowSession
)

// row is one rendered line of the sectioned agenda. Headers are skipped by
// cursor movement.
type row struct {
	kind    rowKind
	title   string
	session eventdto.SessionOutput
}

// filterRow addresses one entry of the filter panel: a top-level option when
// sub is empty, a sub-option otherwise.
type filterRow struct {
	option string
	sub    string
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port AgendaPort

	rows    []row
	cursor  int
	body    viewport.Model
	spinner spinner.Model
	loading bool
	empty   string

	filterOpen   bool
	options      []eventdto.OptionOutput
	filterRows   []filterRow
	filterCursor int

	width  int
	height int
}

func New(port AgendaPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		body:    vp,
		spinner: sp,
		loading: true,
		empty:   "No sessions yet. Press r to fetch the schedule.",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.RefreshCmd(), m.spinner.Tick)
}

// RefreshCmd kicks off a remote fetch. The app model also calls this for the
// palette's refresh command.
func (m Model) RefreshCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Refresh(context.Background())
		return RefreshedMsg{Out: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 4
		m.body.Height = m.height - 2

	case RefreshedMsg:
		m.loading = false
		if msg.Err != nil {
			return m, nil
		}
		if msg.Out.Superseded {
			return m, nil
		}
		cmds = append(cmds, m.loadAgendaCmd(), m.loadOptionsCmd())

	case AgendaLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.rows = nil
			m.empty = msg.Err.Error()
			m.body.SetContent(m.renderRows())
			return m, nil
		}
		m.setSections(msg.Out.Sections)
		m.body.SetContent(m.renderRows())

	case ToggledMsg:
		if msg.Err == nil {
			cmds = append(cmds, m.loadAgendaCmd())
		}

	case OptionsLoadedMsg:
		if msg.Err == nil {
			m.setOptions(msg.Options)
		}

	case filterAppliedMsg:
		if msg.err == nil {
			cmds = append(cmds, m.loadAgendaCmd(), m.loadOptionsCmd())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.filterOpen {
			return m.updateFilterPanel(msg)
		}
		switch msg.String() {
		case "up", "k":
			m.moveCursor(-1)
			m.body.SetContent(m.renderRows())
		case "down", "j":
			m.moveCursor(1)
			m.body.SetContent(m.renderRows())
		case "b", " ":
			if id, ok := m.SelectedSessionID(); ok {
				cmds = append(cmds, m.toggleCmd(id))
			}
		case "r":
			m.loading = true
			cmds = append(cmds, m.RefreshCmd(), m.spinner.Tick)
		case "f":
			m.filterOpen = true
			m.filterCursor = 0
		}
	}

	var vpCmd tea.Cmd
	m.body, vpCmd = m.body.Update(msg)
	cmds = append(cmds, vpCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) updateFilterPanel(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f", "q":
		m.filterOpen = false
		return m, nil
	case "up", "k":
		if m.filterCursor > 0 {
			m.filterCursor--
		}
	case "down", "j":
		if m.filterCursor < len(m.filterRows)-1 {
			m.filterCursor++
		}
	case " ", "enter":
		if m.filterCursor < len(m.filterRows) {
			return m, m.toggleFilterCmd(m.filterRows[m.filterCursor])
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Fetching schedule…")
	}
	if m.filterOpen {
		panel := theme.PaneActive.Width(min(m.width-6, 48)).Render(m.renderFilterPanel())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
	}
	return m.body.View()
}

// SelectedSessionID returns the session under the cursor, if any.
func (m Model) SelectedSessionID() (string, bool) {
	if m.cursor >= 0 && m.cursor < len(m.rows) && m.rows[m.cursor].kind == rowSession {
		return m.rows[m.cursor].session.ID, true
	}
	return "", false
}

// FilterPanelOpen reports whether the filter overlay is consuming keys.
func (m Model) FilterPanelOpen() bool { return m.filterOpen }

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) setSections(sections []eventdto.SectionOutput) {
	prevID, _ := m.SelectedSessionID()
	m.rows = m.rows[:0]
	for _, section := range sections {
		m.rows = append(m.rows, row{kind: rowHeader, title: section.Title})
		for _, session := range section.Sessions {
			m.rows = append(m.rows, row{kind: rowSession, session: session})
		}
	}
	m.cursor = -1
	for i, r := range m.rows {
		if r.kind != rowSession {
			continue
		}
		if m.cursor < 0 || r.session.ID == prevID {
			m.cursor = i
		}
		if r.session.ID == prevID {
			break
		}
	}
}

func (m *Model) setOptions(options []eventdto.OptionOutput) {
	m.options = options
	m.filterRows = m.filterRows[:0]
	for _, option := range options {
		m.filterRows = append(m.filterRows, filterRow{option: option.Name})
		for _, sub := range option.Options {
			m.filterRows = append(m.filterRows, filterRow{option: option.Name, sub: sub.Name})
		}
	}
	if m.filterCursor >= len(m.filterRows) {
		m.filterCursor = 0
	}
}

func (m *Model) moveCursor(delta int) {
	i := m.cursor
	for {
		i += delta
		if i < 0 || i >= len(m.rows) {
			return
		}
		if m.rows[i].kind == rowSession {
			m.cursor = i
			return
		}
	}
}

func (m Model) renderRows() string {
	if len(m.rows) == 0 {
		return theme.Muted.Render(m.empty)
	}
	var sb strings.Builder
	for i, r := range m.rows {
		switch r.kind {
		case rowHeader:
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(theme.Title.Render(r.title) + "\n")
		case rowSession:
			s := r.session
			mark := "  "
			if s.Bookmarked {
				mark = theme.Marked.Render("★ ")
			}
			line := fmt.Sprintf("%s%s", mark, s.Title)
			meta := fmt.Sprintf("    %s · %s–%s", s.Room, s.Starts, s.Ends)
			if len(s.Speakers) > 0 {
				names := make([]string, len(s.Speakers))
				for j, sp := range s.Speakers {
					names[j] = sp.FullName
				}
				meta += " · " + strings.Join(names, ", ")
			}
			if i == m.cursor {
				sb.WriteString(theme.Hot.Render("▸ "+line) + "\n")
			} else {
				sb.WriteString("  " + line + "\n")
			}
			sb.WriteString(theme.Muted.Render(meta) + "\n")
		}
	}
	return sb.String()
}

func (m Model) renderFilterPanel() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Filters") + "\n\n")
	for i, fr := range m.filterRows {
		label, selected := m.filterEntry(fr)
		box := "[ ]"
		if selected {
			box = theme.Good.Render("[x]")
		}
		indent := ""
		if fr.sub != "" {
			indent = "  "
		}
		line := fmt.Sprintf("%s%s %s", indent, box, label)
		if i == m.filterCursor {
			sb.WriteString(theme.Hot.Render("▸ "+line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("space: toggle  esc: close"))
	return sb.String()
}

func (m Model) filterEntry(fr filterRow) (string, bool) {
	for _, option := range m.options {
		if option.Name != fr.option {
			continue
		}
		if fr.sub == "" {
			return option.Name, option.Selected
		}
		for _, sub := range option.Options {
			if sub.Name == fr.sub {
				return sub.Name, sub.Selected
			}
		}
	}
	return fr.sub, false
}

func (m Model) loadAgendaCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Agenda(context.Background())
		return AgendaLoadedMsg{Out: out, Err: err}
	}
}

func (m Model) loadOptionsCmd() tea.Cmd {
	return func() tea.Msg {
		options, err := m.port.Options(context.Background())
		return OptionsLoadedMsg{Options: options, Err: err}
	}
}

func (m Model) toggleCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Toggle(context.Background(), sessionID)
		return ToggledMsg{Out: out, Err: err}
	}
}

func (m Model) toggleFilterCmd(fr filterRow) tea.Cmd {
	_, selected := m.filterEntry(fr)
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if fr.sub == "" {
			err = m.port.SetOption(ctx, fr.option, !selected)
		} else {
			err = m.port.SetSubOption(ctx, fr.option, fr.sub, !selected)
		}
		return filterAppliedMsg{err: err}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
