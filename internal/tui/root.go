package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dsubhasis934/task-management-tui/internal/api"
	"github.com/dsubhasis934/task-management-tui/internal/auth"
	"github.com/dsubhasis934/task-management-tui/internal/config"
	"github.com/dsubhasis934/task-management-tui/internal/model"
)

// Service is the slice of the REST client the views call. Each method
// is a single attempt whose failure is surfaced unmodified.
type Service interface {
	GetTasks() ([]model.Task, error)
	GetUserTasks(userID string) ([]model.Task, error)
	GetUsers() ([]model.User, error)
	CreateTask(draft api.TaskDraft) (*api.TaskResponse, error)
	UpdateTask(id string, draft api.TaskDraft) (*api.TaskResponse, error)
	DeleteTask(id string) (*api.DeleteResponse, error)
	GetDashboard() ([]model.DashboardRow, error)
	AssignTask(req api.AssignRequest) (*api.AssignResponse, error)
	AdminUpdateTask(id string, draft api.TaskDraft) (*api.TaskResponse, error)
	AdminDeleteTask(id string) (*api.DeleteResponse, error)
}

// DeleteOutcome records the result of one delete call within the admin
// bulk delete. The operation has no atomicity; callers get every
// per-item result rather than a single success flag.
type DeleteOutcome struct {
	TaskID string
	Err    error
}

// Messages
type bootstrapDoneMsg struct {
	session auth.Session
}

type loginResultMsg struct {
	resp *api.LoginResponse
	err  error
}

type signupResultMsg struct {
	resp *api.SignupResponse
	err  error
}

type tasksLoadedMsg struct {
	tasks []model.Task
	err   error
}

type usersLoadedMsg struct {
	users []model.User
	err   error
}

type dashboardLoadedMsg struct {
	rows []model.DashboardRow
	err  error
}

// taskSavedMsg is sent when a create or update finishes
type taskSavedMsg struct {
	resp    *api.TaskResponse
	created bool
	err     error
}

type taskAssignedMsg struct {
	resp *api.AssignResponse
	err  error
}

type taskDeletedMsg struct {
	err error
}

// bulkDeleteDoneMsg carries the per-item outcomes of an admin
// delete-all. err is set only when the task list could not be fetched.
type bulkDeleteDoneMsg struct {
	outcomes []DeleteOutcome
	err      error
}

type themeSavedMsg struct {
	err error
}

type spinnerTickMsg struct{}

// Spinner animation frames
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Model is the root Bubble Tea model
type Model struct {
	// Terminal dimensions
	width  int
	height int
	ready  bool

	store *auth.Store
	svc   Service
	cfg   *config.Config

	route    Route
	session  auth.Session
	showHelp bool

	theme Theme
	keys  KeyMap
	debug DebugPanel

	// Login / register forms
	login    loginForm
	register registerForm

	// Task list state. viewUser is set when an admin drills into
	// another user's tasks; editDrill marks the edit-oriented variant.
	tasks        []model.Task
	taskIndex    int
	loadingTasks bool
	taskErr      string
	notice       string
	viewUser     *model.DashboardRow
	editDrill    bool

	// Dashboard state
	rows             []model.DashboardRow
	rowIndex         int
	loadingDashboard bool
	dashErr          string
	dashNotice       string
	confirmRow       *model.DashboardRow
	bulkDeleting     bool

	// Modal form
	form *taskForm

	spinnerIndex int
}

// NewRootModel creates the root model. The session starts in the
// bootstrapping state; Init kicks off the restore. With debug set the
// event log panel is rendered beneath every view.
func NewRootModel(store *auth.Store, svc Service, cfg *config.Config, debug bool) Model {
	return Model{
		store:    store,
		svc:      svc,
		cfg:      cfg,
		route:    RouteLogin,
		session:  store.Session(),
		theme:    ThemeFor(cfg.Theme),
		keys:     DefaultKeyMap(),
		debug:    NewDebugPanel(debug),
		login:    newLoginForm(),
		register: newRegisterForm(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		spinnerTickCmd(),
		m.bootstrapCmd(),
	)
}

// bootstrapCmd restores the session from the persisted credential
func (m Model) bootstrapCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		return bootstrapDoneMsg{session: store.Bootstrap()}
	}
}

func (m Model) loginCmd(email, password string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		resp, err := store.Login(email, password)
		return loginResultMsg{resp: resp, err: err}
	}
}

func (m Model) signupCmd(req api.SignupRequest) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		resp, err := store.Signup(req)
		return signupResultMsg{resp: resp, err: err}
	}
}

// loadTasksCmd fetches the task collection for the current scope: the
// viewer's own tasks, or the drilled-into user's tasks for an admin
func (m Model) loadTasksCmd() tea.Cmd {
	svc := m.svc
	var userID string
	if m.viewUser != nil {
		userID = m.viewUser.UserID
	}
	return func() tea.Msg {
		var tasks []model.Task
		var err error
		if userID != "" {
			tasks, err = svc.GetUserTasks(userID)
		} else {
			tasks, err = svc.GetTasks()
		}
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m Model) loadDashboardCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		rows, err := svc.GetDashboard()
		return dashboardLoadedMsg{rows: rows, err: err}
	}
}

func (m Model) loadUsersCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		users, err := svc.GetUsers()
		return usersLoadedMsg{users: users, err: err}
	}
}

// saveTaskCmd issues the create or update for a submitted form
func (m Model) saveTaskCmd(f *taskForm) tea.Cmd {
	svc := m.svc
	draft := f.draft()
	editingID := f.editingID
	adminEdit := f.adminEdit
	return func() tea.Msg {
		var resp *api.TaskResponse
		var err error
		switch {
		case editingID == "":
			resp, err = svc.CreateTask(draft)
		case adminEdit:
			resp, err = svc.AdminUpdateTask(editingID, draft)
		default:
			resp, err = svc.UpdateTask(editingID, draft)
		}
		return taskSavedMsg{resp: resp, created: editingID == "", err: err}
	}
}

func (m Model) assignTaskCmd(f *taskForm) tea.Cmd {
	svc := m.svc
	req := f.assignRequest()
	return func() tea.Msg {
		resp, err := svc.AssignTask(req)
		return taskAssignedMsg{resp: resp, err: err}
	}
}

func (m Model) deleteTaskCmd(id string, admin bool) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		var err error
		if admin {
			_, err = svc.AdminDeleteTask(id)
		} else {
			_, err = svc.DeleteTask(id)
		}
		return taskDeletedMsg{err: err}
	}
}

// bulkDeleteCmd implements the admin delete-all: fetch the user's
// tasks, then one delete call per task. There is no rollback; every
// per-item outcome is reported.
func (m Model) bulkDeleteCmd(userID string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		tasks, err := svc.GetUserTasks(userID)
		if err != nil {
			return bulkDeleteDoneMsg{err: err}
		}
		outcomes := make([]DeleteOutcome, 0, len(tasks))
		for _, task := range tasks {
			_, err := svc.AdminDeleteTask(task.ID)
			outcomes = append(outcomes, DeleteOutcome{TaskID: task.ID, Err: err})
		}
		return bulkDeleteDoneMsg{outcomes: outcomes}
	}
}

func (m Model) saveThemeCmd() tea.Cmd {
	cfg := *m.cfg
	return func() tea.Msg {
		return themeSavedMsg{err: config.Save(&cfg)}
	}
}

func spinnerTickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

// applyGate rewrites the route per the access gate's decision
func (m *Model) applyGate() {
	switch ResolveRoute(m.session, m.route) {
	case GateRedirectLogin:
		m.route = RouteLogin
	case GateRedirectHome:
		m.route = RouteTasks
		m.viewUser = nil
		m.editDrill = false
	}
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinnerTickMsg:
		m.spinnerIndex++
		return m, spinnerTickCmd()

	case bootstrapDoneMsg:
		m.session = msg.session
		m.route = RouteTasks
		m.applyGate()
		m.debug.AddEvent("bootstrap", sessionLabel(m.session))
		if m.session.State() == auth.StateAuthenticated {
			m.loadingTasks = true
			return m, m.loadTasksCmd()
		}
		return m, nil

	case loginResultMsg:
		return m.updateLoginResult(msg)

	case signupResultMsg:
		return m.updateSignupResult(msg)

	case tasksLoadedMsg:
		m.loadingTasks = false
		if msg.err != nil {
			m.taskErr = "Failed to fetch tasks"
			m.debug.AddEvent("tasks", msg.err.Error())
			return m, nil
		}
		m.taskErr = ""
		m.tasks = msg.tasks
		if m.taskIndex >= len(m.tasks) {
			m.taskIndex = 0
		}
		return m, nil

	case usersLoadedMsg:
		if m.form != nil && m.form.adminAssign {
			if msg.err != nil {
				m.form.loadingUsers = false
				m.form.errMsg = api.Message(msg.err, "Failed to fetch users")
				return m, nil
			}
			actingID := ""
			if m.session.User != nil {
				actingID = m.session.User.ID
			}
			m.form.setUsers(msg.users, actingID)
		}
		return m, nil

	case dashboardLoadedMsg:
		m.loadingDashboard = false
		if msg.err != nil {
			m.dashErr = "Failed to fetch dashboard data"
			m.debug.AddEvent("dashboard", msg.err.Error())
			return m, nil
		}
		m.dashErr = ""
		m.rows = msg.rows
		if m.rowIndex >= len(m.rows) {
			m.rowIndex = 0
		}
		return m, nil

	case taskSavedMsg:
		return m.updateTaskSaved(msg)

	case taskAssignedMsg:
		return m.updateTaskAssigned(msg)

	case taskDeletedMsg:
		if msg.err != nil {
			m.taskErr = api.Message(msg.err, "Failed to delete task")
			return m, nil
		}
		// Server state is authoritative; refetch rather than patch
		m.loadingTasks = true
		return m, m.loadTasksCmd()

	case bulkDeleteDoneMsg:
		return m.updateBulkDeleteDone(msg)

	case themeSavedMsg:
		if msg.err != nil {
			m.debug.AddEvent("theme", msg.err.Error())
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

// updateKey dispatches a key press to the active surface
func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.session.Bootstrapping {
		return m, nil
	}

	// Modal form captures everything while open
	if m.form != nil {
		return m.updateFormKey(msg)
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.route {
	case RouteLogin:
		return m.updateLoginKey(msg)
	case RouteRegister:
		return m.updateRegisterKey(msg)
	case RouteDashboard:
		return m.updateDashboardKey(msg)
	default:
		return m.updateTasksKey(msg)
	}
}

// updateFormKey routes keys into the open modal
func (m Model) updateFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Cancel, unless a submission is in flight
	if msg.String() == "esc" {
		if !m.form.submitting {
			m.form = nil
		}
		return m, nil
	}

	submitted, cmd := m.form.handleKey(msg)
	if !submitted {
		return m, cmd
	}
	if m.form.adminAssign {
		return m, m.assignTaskCmd(m.form)
	}
	return m, m.saveTaskCmd(m.form)
}

// handleChromeKey processes keys shared by every authenticated view.
// Returns handled=false when the key is not a chrome key.
func (m Model) handleChromeKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "?":
		m.showHelp = true
		return m, nil, true
	case "t":
		if m.theme.Name == config.ThemeDark {
			m.theme = LightTheme()
		} else {
			m.theme = DarkTheme()
		}
		m.cfg.Theme = m.theme.Name
		return m, m.saveThemeCmd(), true
	case "L":
		m.store.Logout()
		m.session = m.store.Session()
		m.route = RouteLogin
		m.tasks = nil
		m.rows = nil
		m.viewUser = nil
		m.editDrill = false
		m.notice = ""
		m.taskErr = ""
		m.dashErr = ""
		m.debug.AddEvent("logout", "")
		return m, nil, true
	}
	return m, nil, false
}

// debugPanelHeight is the rows reserved for the event log when enabled
const debugPanelHeight = 10

// contentHeight is the height available to the active view, minus the
// event log panel when one is shown
func (m Model) contentHeight() int {
	if !m.debug.IsEnabled() {
		return m.height
	}
	h := m.height - debugPanelHeight
	if h < 1 {
		h = 1
	}
	return h
}

// View renders the model
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	view := m.activeView()
	if m.debug.IsEnabled() {
		panel := m.debug.Render(m.theme, m.width, debugPanelHeight)
		view = lipgloss.JoinVertical(lipgloss.Left, view, panel)
	}
	return view
}

func (m Model) activeView() string {
	// Gate contract: while bootstrapping, nothing but a placeholder
	if m.session.Bootstrapping {
		return m.loadingView("Restoring session...")
	}

	if m.showHelp {
		return m.helpView()
	}

	if m.form != nil {
		return m.form.render(m.theme, m.width, m.contentHeight())
	}

	switch m.route {
	case RouteLogin:
		return m.loginView()
	case RouteRegister:
		return m.registerView()
	case RouteDashboard:
		return m.chrome(m.dashboardView())
	default:
		return m.chrome(m.tasksView())
	}
}

// chrome renders the persistent navigation bar above a view body
func (m Model) chrome(body string) string {
	th := m.theme

	title := th.TitleStyle().Render("TASK MANAGER")

	var userInfo string
	if m.session.User != nil {
		role := string(m.session.User.Role)
		userInfo = th.SubtitleStyle().Render(" · " + m.session.User.Name + " (" + role + ")")
	}

	themeLabel := th.SubtitleStyle().Render(" · " + string(m.theme.Name))

	header := lipgloss.NewStyle().
		PaddingLeft(1).
		Width(m.width).
		Render(title + userInfo + themeLabel) + "\n"

	hints := "t theme • L logout • ? help • q quit"
	if m.session.User != nil && m.session.User.IsAdmin() {
		hints = "g dashboard • " + hints
	}
	statusBar := th.HintStyle().PaddingLeft(1).Render(hints)

	bodyHeight := m.contentHeight() - 3
	bodyBox := lipgloss.NewStyle().Height(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, bodyBox, statusBar)
}

// loadingView renders a centered spinner placeholder
func (m Model) loadingView(text string) string {
	spinner := spinnerFrames[m.spinnerIndex%len(spinnerFrames)]
	content := m.theme.WarnStyle().Render(spinner + " " + text)
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, content)
}

// helpView renders the key binding overlay
func (m Model) helpView() string {
	th := m.theme
	var b []string
	b = append(b, th.LabelStyle().Render("Key Bindings"), "")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b = append(b, th.ItemStyle().Render(h.Key+"  "+h.Desc))
		}
		b = append(b, "")
	}
	b = append(b, th.HintStyle().Render("press any key to close"))
	box := th.BoxStyle().Render(lipgloss.JoinVertical(lipgloss.Left, b...))
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, box)
}

func sessionLabel(s auth.Session) string {
	switch s.State() {
	case auth.StateAuthenticated:
		return "authenticated as " + s.User.Email
	case auth.StateAnonymous:
		return "anonymous"
	default:
		return "bootstrapping"
	}
}
