package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dsubhasis934/task-management-tui/internal/api"
	"github.com/dsubhasis934/task-management-tui/internal/model"
)

// ValidationError is a client-side form failure, caught before any
// request is sent
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// errSelectUser is the admin-assign rejection, deliberately distinct
// from field validation messages
const errSelectUser = "Please select at least one user to assign the task"

// Form focus slots, in tab order
const (
	fieldTitle = iota
	fieldDescription
	fieldDueDate
	fieldStatus
	fieldAssignees
	fieldSubmit
)

// taskForm is the modal create/edit form. One form is open at a time;
// its submitting flag blocks duplicate submits while a request is in
// flight.
type taskForm struct {
	adminAssign bool   // admin creating a task for selected users
	adminEdit   bool   // admin editing another user's task
	editingID   string // empty means create

	title       textinput.Model
	description textinput.Model
	dueDate     textinput.Model
	statusIdx   int

	// Assign picker state (adminAssign only)
	users        []model.User
	loadingUsers bool
	selected     map[string]bool
	userIdx      int

	focus      int
	submitting bool
	errMsg     string
}

// newTaskForm creates an empty create form
func newTaskForm(adminAssign bool) *taskForm {
	f := &taskForm{
		adminAssign:  adminAssign,
		loadingUsers: adminAssign,
		selected:     make(map[string]bool),
	}
	f.initInputs("", "", "")
	return f
}

// newEditForm creates a form pre-filled from an existing task
func newEditForm(task model.Task, adminEdit bool) *taskForm {
	f := &taskForm{
		editingID: task.ID,
		adminEdit: adminEdit,
		selected:  make(map[string]bool),
	}
	f.initInputs(task.Title, task.Description, dateOnly(task.DueDate))
	for i, s := range model.TaskStatuses {
		if s == task.Status {
			f.statusIdx = i
		}
	}
	return f
}

func (f *taskForm) initInputs(title, description, dueDate string) {
	f.title = textinput.New()
	f.title.Placeholder = "Task Title"
	f.title.CharLimit = 200
	f.title.Width = 40
	f.title.SetValue(title)
	f.title.Focus()

	f.description = textinput.New()
	f.description.Placeholder = "Task Description"
	f.description.CharLimit = 1000
	f.description.Width = 40
	f.description.SetValue(description)

	f.dueDate = textinput.New()
	f.dueDate.Placeholder = "YYYY-MM-DD"
	f.dueDate.CharLimit = 10
	f.dueDate.Width = 40
	f.dueDate.SetValue(dueDate)
}

// dateOnly trims a server timestamp down to its calendar date
func dateOnly(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func (f *taskForm) status() model.TaskStatus {
	return model.TaskStatuses[f.statusIdx]
}

// validate checks the required fields. Status cannot be invalid through
// the UI since it only cycles the enumerated values.
func (f *taskForm) validate() []ValidationError {
	var errs []ValidationError
	if strings.TrimSpace(f.title.Value()) == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "Title is required"})
	}
	due := strings.TrimSpace(f.dueDate.Value())
	if due == "" {
		errs = append(errs, ValidationError{Field: "dueDate", Message: "Due date is required"})
	} else if _, err := time.Parse("2006-01-02", due); err != nil {
		errs = append(errs, ValidationError{Field: "dueDate", Message: "Due date must be YYYY-MM-DD"})
	}
	if !f.status().Valid() {
		errs = append(errs, ValidationError{Field: "status", Message: "Status is invalid"})
	}
	return errs
}

// selectedIDs returns the checked user IDs, in picker order
func (f *taskForm) selectedIDs() []string {
	var ids []string
	for _, u := range f.users {
		if f.selected[u.ID] {
			ids = append(ids, u.ID)
		}
	}
	return ids
}

// draft builds the create/update payload. Non-admin drafts carry no
// assignment fields at all.
func (f *taskForm) draft() api.TaskDraft {
	return api.TaskDraft{
		Title:       strings.TrimSpace(f.title.Value()),
		Description: strings.TrimSpace(f.description.Value()),
		DueDate:     strings.TrimSpace(f.dueDate.Value()),
		Status:      f.status(),
	}
}

// assignRequest builds the admin bulk-assignment payload
func (f *taskForm) assignRequest() api.AssignRequest {
	return api.AssignRequest{
		Title:           strings.TrimSpace(f.title.Value()),
		Description:     strings.TrimSpace(f.description.Value()),
		DueDate:         strings.TrimSpace(f.dueDate.Value()),
		AssignedUserIDs: f.selectedIDs(),
	}
}

// setUsers installs the assign picker options, excluding the acting
// admin, and clears any previous selection
func (f *taskForm) setUsers(users []model.User, actingUserID string) {
	f.users = nil
	for _, u := range users {
		if u.ID != actingUserID {
			f.users = append(f.users, u)
		}
	}
	f.selected = make(map[string]bool)
	f.userIdx = 0
	f.loadingUsers = false
}

// fields returns the active focus slots in tab order
func (f *taskForm) fields() []int {
	fs := []int{fieldTitle, fieldDescription, fieldDueDate, fieldStatus}
	if f.adminAssign {
		fs = append(fs, fieldAssignees)
	}
	return append(fs, fieldSubmit)
}

func (f *taskForm) setFocus(slot int) {
	f.focus = slot
	f.title.Blur()
	f.description.Blur()
	f.dueDate.Blur()
	switch slot {
	case fieldTitle:
		f.title.Focus()
	case fieldDescription:
		f.description.Focus()
	case fieldDueDate:
		f.dueDate.Focus()
	}
}

func (f *taskForm) nextField() {
	fs := f.fields()
	for i, s := range fs {
		if s == f.focus {
			f.setFocus(fs[(i+1)%len(fs)])
			return
		}
	}
	f.setFocus(fs[0])
}

func (f *taskForm) prevField() {
	fs := f.fields()
	for i, s := range fs {
		if s == f.focus {
			f.setFocus(fs[(i-1+len(fs))%len(fs)])
			return
		}
	}
	f.setFocus(fs[0])
}

// submit runs client-side validation and reports whether the request
// may be issued. The zero-selection admin case gets its own message,
// distinct from field validation.
func (f *taskForm) submit() bool {
	if f.submitting {
		return false
	}
	if errs := f.validate(); len(errs) > 0 {
		f.errMsg = errs[0].Message
		return false
	}
	if f.adminAssign && len(f.selectedIDs()) == 0 {
		f.errMsg = errSelectUser
		return false
	}
	f.errMsg = ""
	f.submitting = true
	return true
}

// handleKey processes a key press while the form is open. It returns
// true when the key requested submission (and validation passed).
func (f *taskForm) handleKey(msg tea.KeyMsg) (submitted bool, cmd tea.Cmd) {
	// In-flight submission freezes the form's own affordances
	if f.submitting {
		return false, nil
	}

	switch msg.String() {
	case "tab":
		f.nextField()
		return false, nil
	case "shift+tab":
		f.prevField()
		return false, nil
	case "enter":
		if f.focus == fieldSubmit {
			return f.submit(), nil
		}
		if f.focus == fieldAssignees {
			f.toggleSelected()
			return false, nil
		}
		f.nextField()
		return false, nil
	}

	switch f.focus {
	case fieldStatus:
		switch msg.String() {
		case "left", "h":
			f.statusIdx = (f.statusIdx - 1 + len(model.TaskStatuses)) % len(model.TaskStatuses)
		case "right", "l", " ":
			f.statusIdx = (f.statusIdx + 1) % len(model.TaskStatuses)
		case "up":
			f.prevField()
		case "down":
			f.nextField()
		}
		return false, nil
	case fieldAssignees:
		switch msg.String() {
		case "up", "k":
			if f.userIdx > 0 {
				f.userIdx--
			}
		case "down", "j":
			if f.userIdx < len(f.users)-1 {
				f.userIdx++
			}
		case " ":
			f.toggleSelected()
		}
		return false, nil
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
		return false, cmd
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
		return false, cmd
	case fieldDueDate:
		f.dueDate, cmd = f.dueDate.Update(msg)
		return false, cmd
	}
	return false, nil
}

func (f *taskForm) toggleSelected() {
	if f.userIdx < len(f.users) {
		id := f.users[f.userIdx].ID
		f.selected[id] = !f.selected[id]
	}
}

// formTitle is the modal heading
func (f *taskForm) formTitle() string {
	switch {
	case f.adminAssign:
		return "Create Task for Users"
	case f.editingID != "":
		return "Edit Task"
	default:
		return "Create New Task"
	}
}

func (f *taskForm) submitLabel() string {
	if f.editingID != "" {
		return "Update Task"
	}
	return "Create Task"
}

// render draws the modal form
func (f *taskForm) render(th Theme, width, height int) string {
	var b strings.Builder

	b.WriteString(th.LabelStyle().Render(f.formTitle()))
	b.WriteString("\n\n")

	writeField := func(label string, view string, focused bool) {
		style := th.SubtitleStyle()
		if focused {
			style = th.LabelStyle()
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
		b.WriteString(view)
		b.WriteString("\n\n")
	}

	writeField("Title", f.title.View(), f.focus == fieldTitle)
	writeField("Description", f.description.View(), f.focus == fieldDescription)
	writeField("Due Date", f.dueDate.View(), f.focus == fieldDueDate)

	// Status selector
	var statuses []string
	for i, s := range model.TaskStatuses {
		label := model.Task{Status: s}.StatusLabel()
		if i == f.statusIdx {
			statuses = append(statuses, th.SelectedStyle().Render(label))
		} else {
			statuses = append(statuses, th.ItemStyle().Render(label))
		}
	}
	writeField("Status", strings.Join(statuses, " "), f.focus == fieldStatus)

	if f.adminAssign {
		b.WriteString(f.renderAssignees(th))
	}

	if f.errMsg != "" {
		b.WriteString(th.ErrorStyle().Render(f.errMsg))
		b.WriteString("\n\n")
	}

	// Submit row
	label := f.submitLabel()
	if f.submitting {
		label = spinnerFrames[0] + " " + label
	}
	if f.focus == fieldSubmit {
		b.WriteString(th.SelectedStyle().Render("▸ " + label))
	} else {
		b.WriteString(th.ItemStyle().Render("  " + label))
	}
	b.WriteString("\n\n")
	b.WriteString(th.HintStyle().Render("tab next field • enter submit • esc cancel"))

	box := th.BoxStyle().Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderAssignees draws the user multi-select
func (f *taskForm) renderAssignees(th Theme) string {
	var b strings.Builder

	label := th.SubtitleStyle()
	if f.focus == fieldAssignees {
		label = th.LabelStyle()
	}
	b.WriteString(label.Render("Assign To Users"))
	b.WriteString("\n")

	switch {
	case f.loadingUsers:
		b.WriteString(th.WarnStyle().Render(spinnerFrames[0] + " Loading users..."))
		b.WriteString("\n")
	case len(f.users) == 0:
		b.WriteString(th.SubtitleStyle().Render("No other users found"))
		b.WriteString("\n")
	default:
		for i, u := range f.users {
			check := "[ ]"
			if f.selected[u.ID] {
				check = "[x]"
			}
			line := check + " " + u.Name + " (" + u.Email + ")"
			if f.focus == fieldAssignees && i == f.userIdx {
				b.WriteString(th.SelectedStyle().Render("▸ " + line))
			} else {
				b.WriteString(th.ItemStyle().Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	if len(f.selectedIDs()) == 0 {
		b.WriteString(th.WarnStyle().Render("Please select at least one user"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
