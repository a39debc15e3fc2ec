package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harborview/marinadesk/internal/api"
)

// loginModel is the sign-in screen shown before any data loads and again
// whenever the session expires
type loginModel struct {
	email      textinput.Model
	password   textinput.Model
	focus      int
	submitting bool
	notice     string
}

func newLogin() loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 80
	email.Width = 36
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 80
	password.Width = 36
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginModel{email: email, password: password}
}

// update returns submit=true when the user pressed enter with both fields
// filled; the root model owns the actual login command
func (m loginModel) update(msg tea.Msg) (loginModel, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	if m.submitting {
		return m, nil, false
	}

	switch keyMsg.String() {
	case "tab", "shift+tab", "up", "down":
		m.focus = 1 - m.focus
		if m.focus == 0 {
			m.email.Focus()
			m.password.Blur()
		} else {
			m.email.Blur()
			m.password.Focus()
		}
		return m, nil, false

	case "enter":
		if m.focus == 0 {
			m.focus = 1
			m.email.Blur()
			m.password.Focus()
			return m, nil, false
		}
		if strings.TrimSpace(m.email.Value()) == "" || m.password.Value() == "" {
			m.notice = "Email and password are required"
			return m, nil, false
		}
		m.notice = ""
		m.submitting = true
		return m, nil, true
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd, false
}

func (m *loginModel) fail(err error) {
	m.submitting = false
	m.password.SetValue("")
	m.notice = api.UserMessage(err)
}

func (m loginModel) view() string {
	lines := []string{
		titleStyle.Render("Harborview Marina"),
		"",
		fieldLabelStyle.Render("Email") + " " + m.email.View(),
		fieldLabelStyle.Render("Password") + " " + m.password.View(),
	}
	if m.submitting {
		lines = append(lines, "", mutedStyle.Render("Signing in..."))
	}
	if m.notice != "" {
		lines = append(lines, "", errorStyle.Render("✗ "+m.notice))
	}
	lines = append(lines, "", helpStyle.Render("Enter: Sign In • Ctrl+C: Quit"))
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
