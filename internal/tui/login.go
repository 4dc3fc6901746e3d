package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dsubhasis934/task-management-tui/internal/api"
)

// loginForm holds the anonymous entry view's state
type loginForm struct {
	email      textinput.Model
	password   textinput.Model
	focus      int // 0 email, 1 password, 2 submit
	submitting bool
	errMsg     string
	notice     string
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 100
	email.Width = 36
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 100
	password.Width = 36
	password.EchoMode = textinput.EchoPassword

	return loginForm{email: email, password: password}
}

func (f *loginForm) setFocus(focus int) {
	f.focus = focus
	f.email.Blur()
	f.password.Blur()
	switch focus {
	case 0:
		f.email.Focus()
	case 1:
		f.password.Focus()
	}
}

// registerForm holds the account registration view's state
type registerForm struct {
	name       textinput.Model
	email      textinput.Model
	password   textinput.Model
	focus      int // 0 name, 1 email, 2 password, 3 submit
	submitting bool
	errMsg     string
}

func newRegisterForm() registerForm {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 100
	name.Width = 36
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 100
	email.Width = 36

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 100
	password.Width = 36
	password.EchoMode = textinput.EchoPassword

	return registerForm{name: name, email: email, password: password}
}

func (f *registerForm) setFocus(focus int) {
	f.focus = focus
	f.name.Blur()
	f.email.Blur()
	f.password.Blur()
	switch focus {
	case 0:
		f.name.Focus()
	case 1:
		f.email.Focus()
	case 2:
		f.password.Focus()
	}
}

// updateLoginKey handles keys on the login view
func (m Model) updateLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.submitting {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+r":
		m.register = newRegisterForm()
		m.route = RouteRegister
		return m, nil
	case "tab", "down":
		m.login.setFocus((m.login.focus + 1) % 3)
		return m, nil
	case "shift+tab", "up":
		m.login.setFocus((m.login.focus + 2) % 3)
		return m, nil
	case "enter":
		if m.login.focus < 2 {
			m.login.setFocus(m.login.focus + 1)
			return m, nil
		}
		return m.submitLogin()
	}

	var cmd tea.Cmd
	switch m.login.focus {
	case 0:
		m.login.email, cmd = m.login.email.Update(msg)
	case 1:
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

// submitLogin validates client-side, then issues the login request
func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(m.login.email.Value())
	password := m.login.password.Value()

	switch {
	case email == "":
		m.login.errMsg = "Email is required"
		return m, nil
	case password == "":
		m.login.errMsg = "Password is required"
		return m, nil
	}

	m.login.errMsg = ""
	m.login.notice = ""
	m.login.submitting = true
	return m, m.loginCmd(email, password)
}

// updateLoginResult applies a finished login attempt. On success the
// viewer is routed by role: admins land on the dashboard, users on
// their task list.
func (m Model) updateLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	if msg.err != nil {
		m.login.errMsg = api.Message(msg.err, "An error occurred during login.")
		return m, nil
	}

	m.session = m.store.Session()
	m.login = newLoginForm()
	m.debug.AddEvent("login", sessionLabel(m.session))

	isAdmin := msg.resp.Role == "admin" || msg.resp.User.IsAdmin()
	if isAdmin {
		m.route = RouteDashboard
		m.loadingDashboard = true
		return m, m.loadDashboardCmd()
	}
	m.route = RouteTasks
	m.loadingTasks = true
	return m, m.loadTasksCmd()
}

// updateRegisterKey handles keys on the register view
func (m Model) updateRegisterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.register.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.route = RouteLogin
		return m, nil
	case "tab", "down":
		m.register.setFocus((m.register.focus + 1) % 4)
		return m, nil
	case "shift+tab", "up":
		m.register.setFocus((m.register.focus + 3) % 4)
		return m, nil
	case "enter":
		if m.register.focus < 3 {
			m.register.setFocus(m.register.focus + 1)
			return m, nil
		}
		return m.submitRegister()
	}

	var cmd tea.Cmd
	switch m.register.focus {
	case 0:
		m.register.name, cmd = m.register.name.Update(msg)
	case 1:
		m.register.email, cmd = m.register.email.Update(msg)
	case 2:
		m.register.password, cmd = m.register.password.Update(msg)
	}
	return m, cmd
}

func (m Model) submitRegister() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.register.name.Value())
	email := strings.TrimSpace(m.register.email.Value())
	password := m.register.password.Value()

	switch {
	case name == "":
		m.register.errMsg = "Name is required"
		return m, nil
	case email == "":
		m.register.errMsg = "Email is required"
		return m, nil
	case password == "":
		m.register.errMsg = "Password is required"
		return m, nil
	}

	m.register.errMsg = ""
	m.register.submitting = true
	return m, m.signupCmd(api.SignupRequest{Name: name, Email: email, Password: password})
}

// updateSignupResult applies a finished registration. Signing up does
// not authenticate: the viewer is sent back to login.
func (m Model) updateSignupResult(msg signupResultMsg) (tea.Model, tea.Cmd) {
	m.register.submitting = false
	if msg.err != nil {
		m.register.errMsg = api.Message(msg.err, "Registration failed")
		return m, nil
	}

	notice := "Account created. Please log in."
	if msg.resp != nil && msg.resp.Message != "" {
		notice = msg.resp.Message
	}
	m.login = newLoginForm()
	m.login.notice = notice
	m.route = RouteLogin
	return m, nil
}

// loginView renders the anonymous entry view
func (m Model) loginView() string {
	th := m.theme
	var b strings.Builder

	b.WriteString(th.TitleStyle().Render("TASK MANAGER"))
	b.WriteString("\n")
	b.WriteString(th.SubtitleStyle().Render("Login"))
	b.WriteString("\n\n")

	if m.login.notice != "" {
		b.WriteString(th.NoticeStyle().Render(m.login.notice))
		b.WriteString("\n\n")
	}
	if m.login.errMsg != "" {
		b.WriteString(th.ErrorStyle().Render(m.login.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(th.SubtitleStyle().Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.login.email.View())
	b.WriteString("\n\n")
	b.WriteString(th.SubtitleStyle().Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.login.password.View())
	b.WriteString("\n\n")

	label := "Login"
	if m.login.submitting {
		label = spinnerFrames[m.spinnerIndex%len(spinnerFrames)] + " Logging in..."
	}
	if m.login.focus == 2 {
		b.WriteString(th.SelectedStyle().Render("▸ " + label))
	} else {
		b.WriteString(th.ItemStyle().Render("  " + label))
	}
	b.WriteString("\n\n")
	b.WriteString(th.HintStyle().Render("Don't have an account? ctrl+r to register"))

	box := th.BoxStyle().Render(b.String())
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, box)
}

// registerView renders the account registration view
func (m Model) registerView() string {
	th := m.theme
	var b strings.Builder

	b.WriteString(th.TitleStyle().Render("TASK MANAGER"))
	b.WriteString("\n")
	b.WriteString(th.SubtitleStyle().Render("Register"))
	b.WriteString("\n\n")

	if m.register.errMsg != "" {
		b.WriteString(th.ErrorStyle().Render(m.register.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(th.SubtitleStyle().Render("Name"))
	b.WriteString("\n")
	b.WriteString(m.register.name.View())
	b.WriteString("\n\n")
	b.WriteString(th.SubtitleStyle().Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.register.email.View())
	b.WriteString("\n\n")
	b.WriteString(th.SubtitleStyle().Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.register.password.View())
	b.WriteString("\n\n")

	label := "Register"
	if m.register.submitting {
		label = spinnerFrames[m.spinnerIndex%len(spinnerFrames)] + " Registering..."
	}
	if m.register.focus == 3 {
		b.WriteString(th.SelectedStyle().Render("▸ " + label))
	} else {
		b.WriteString(th.ItemStyle().Render("  " + label))
	}
	b.WriteString("\n\n")
	b.WriteString(th.HintStyle().Render("Already have an account? esc to login"))

	box := th.BoxStyle().Render(b.String())
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, box)
}
