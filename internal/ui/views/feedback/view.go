package feedback

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"confmate/internal/ui/theme"
)

type FeedbackPort interface {
	Submit(ctx context.Context, sessionID string, rating int, comment string) error
}

// SubmittedMsg bubbles to the app model for status reporting.
type SubmittedMsg struct {
	SessionID string
	Err       error
}

type field int

const (
	fieldSession field = iota
	fieldRating
	fieldComment
	fieldCount
)

// Model is a small three-field form: session id, star rating, comment.
type Model struct {
	port FeedbackPort

	session textinput.Model
	comment textinput.Model
	rating  int
	focus   field

	submitting bool
	result     string
	width      int
	height     int
}

func New(port FeedbackPort) Model {
	session := textinput.New()
	session.Placeholder = "session id"
	session.CharLimit = 64
	session.Focus()

	comment := textinput.New()
	comment.Placeholder = "comment (optional)"
	comment.CharLimit = 500

	return Model{port: port, session: session, comment: comment, rating: 0, focus: fieldSession}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// SetSession pre-fills the session id, used when feedback is started from a
// selected agenda row.
func (m *Model) SetSession(id string) {
	m.session.SetValue(id)
	m.focus = fieldRating
	m.session.Blur()
	m.comment.Blur()
	m.result = ""
}

// Editing reports whether a text field is focused, in which case global key
// bindings must yield.
func (m Model) Editing() bool {
	return m.session.Focused() || m.comment.Focused()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case SubmittedMsg:
		m.submitting = false
		if msg.Err != nil {
			m.result = theme.Bad.Render("submit failed: " + msg.Err.Error())
		} else {
			m.result = theme.Good.Render("feedback sent — thanks!")
			m.session.SetValue("")
			m.comment.SetValue("")
			m.rating = 0
			m.focus = fieldSession
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			if msg.String() == "shift+tab" || msg.String() == "up" {
				m.focus = (m.focus + fieldCount - 1) % fieldCount
			} else {
				m.focus = (m.focus + 1) % fieldCount
			}
			m.syncFocus(&cmds)
			return m, tea.Batch(cmds...)
		case "enter":
			if !m.submitting {
				return m, m.submitCmd()
			}
			return m, nil
		case "esc":
			m.session.Blur()
			m.comment.Blur()
			return m, nil
		}
		if m.focus == fieldRating {
			if s := msg.String(); len(s) == 1 && s >= "1" && s <= "5" {
				m.rating = int(s[0] - '0')
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldSession:
		m.session, cmd = m.session.Update(msg)
	case fieldComment:
		m.comment, cmd = m.comment.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Session Feedback") + "\n\n")
	sb.WriteString(m.fieldLabel(fieldSession, "Session") + m.session.View() + "\n")
	sb.WriteString(m.fieldLabel(fieldRating, "Rating ") + m.renderStars() + "\n")
	sb.WriteString(m.fieldLabel(fieldComment, "Comment") + m.comment.View() + "\n\n")
	if m.submitting {
		sb.WriteString(theme.Muted.Render("sending…") + "\n")
	} else if m.result != "" {
		sb.WriteString(m.result + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("tab: next field  1-5: rate  enter: submit"))

	form := theme.Pane.Width(min(m.width-6, 64)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) syncFocus(cmds *[]tea.Cmd) {
	m.session.Blur()
	m.comment.Blur()
	switch m.focus {
	case fieldSession:
		*cmds = append(*cmds, m.session.Focus())
	case fieldComment:
		*cmds = append(*cmds, m.comment.Focus())
	}
}

func (m Model) fieldLabel(f field, label string) string {
	if m.focus == f {
		return theme.Hot.Render("▸ "+label+"  ")
	}
	return theme.Muted.Render("  " + label + "  ")
}

func (m Model) renderStars() string {
	var sb strings.Builder
	for i := 1; i <= 5; i++ {
		if i <= m.rating {
			sb.WriteString(theme.Marked.Render("★"))
		} else {
			sb.WriteString(theme.Muted.Render("☆"))
		}
	}
	return sb.String()
}

func (m *Model) submitCmd() tea.Cmd {
	sessionID := strings.TrimSpace(m.session.Value())
	rating := m.rating
	comment := m.comment.Value()
	m.submitting = true
	m.result = ""
	return func() tea.Msg {
		err := m.port.Submit(context.Background(), sessionID, rating, comment)
		return SubmittedMsg{SessionID: sessionID, Err: err}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
