package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dsubhasis934/task-management-tui/internal/api"
	"github.com/dsubhasis934/task-management-tui/internal/model"
)

// updateTasksKey handles keys on the task list view
func (m Model) updateTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if next, cmd, handled := m.handleChromeKey(msg); handled {
		return next, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.taskIndex > 0 {
			m.taskIndex--
		}
		return m, nil
	case "down", "j":
		if m.taskIndex < len(m.tasks)-1 {
			m.taskIndex++
		}
		return m, nil
	case "n":
		// Creating is a self-service action; drill-down views only
		// edit or delete the viewed user's tasks
		if m.viewUser == nil {
			m.form = newTaskForm(false)
			m.notice = ""
			return m, nil
		}
		return m, nil
	case "e":
		if m.taskIndex < len(m.tasks) {
			m.form = newEditForm(m.tasks[m.taskIndex], m.viewUser != nil)
			m.notice = ""
		}
		return m, nil
	case "d":
		if m.taskIndex < len(m.tasks) {
			return m, m.deleteTaskCmd(m.tasks[m.taskIndex].ID, m.viewUser != nil)
		}
		return m, nil
	case "r":
		m.loadingTasks = true
		return m, m.loadTasksCmd()
	case "g":
		if m.session.User != nil && m.session.User.IsAdmin() {
			m.route = RouteDashboard
			m.viewUser = nil
			m.editDrill = false
			m.loadingDashboard = true
			return m, m.loadDashboardCmd()
		}
		return m, nil
	case "esc":
		if m.viewUser != nil {
			// Back to dashboard
			m.route = RouteDashboard
			m.viewUser = nil
			m.editDrill = false
			m.tasks = nil
			m.loadingDashboard = true
			return m, m.loadDashboardCmd()
		}
		return m, nil
	}

	return m, nil
}

// updateTaskSaved applies a finished create or update. The response is
// applied even if the form has since been dismissed; on success the
// collection is refetched so the view reflects authoritative server
// state.
func (m Model) updateTaskSaved(msg taskSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.form != nil {
			m.form.submitting = false
			m.form.errMsg = api.Message(msg.err, "Failed to save task")
		}
		return m, nil
	}

	m.form = nil
	if msg.created {
		m.notice = "Task created successfully"
		if msg.resp != nil && msg.resp.EmailSent && msg.resp.Message != "" {
			m.notice = msg.resp.Message
		}
	}
	m.loadingTasks = true
	return m, m.loadTasksCmd()
}

// tasksView renders the task list
func (m Model) tasksView() string {
	th := m.theme
	var b strings.Builder

	heading := "My Tasks"
	if m.viewUser != nil {
		heading = m.viewUser.Name + "'s Tasks"
		if m.editDrill {
			heading += " (editing)"
		}
	}
	b.WriteString(th.LabelStyle().PaddingLeft(1).Render(heading))
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(th.NoticeStyle().PaddingLeft(1).Render(m.notice))
		b.WriteString("\n\n")
	}

	switch {
	case m.taskErr != "":
		b.WriteString(th.ErrorStyle().PaddingLeft(1).Render(m.taskErr))
		b.WriteString("\n")
	case m.loadingTasks:
		spinner := spinnerFrames[m.spinnerIndex%len(spinnerFrames)]
		b.WriteString(th.WarnStyle().PaddingLeft(1).Render(spinner + " Loading tasks..."))
		b.WriteString("\n")
	case len(m.tasks) == 0:
		b.WriteString(th.SubtitleStyle().PaddingLeft(1).Render("No tasks found. Create one to get started!"))
		b.WriteString("\n")
	default:
		for i, task := range m.tasks {
			status := task.Status
			badge := th.StatusStyle(status == model.TaskStatusCompleted, status == model.TaskStatusInProgress).
				Render(task.StatusIcon() + " " + task.StatusLabel())

			line := task.Title + "  " + badge + th.SubtitleStyle().Render("  due "+dateOnly(task.DueDate))
			if i == m.taskIndex {
				b.WriteString(th.SelectedStyle().Render("▸ " + line))
			} else {
				b.WriteString(th.ItemStyle().Render("  " + line))
			}
			b.WriteString("\n")
			if i == m.taskIndex && task.Description != "" {
				b.WriteString(th.SubtitleStyle().PaddingLeft(4).Render(task.Description))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	hints := "n new • e edit • d delete • r refresh"
	if m.viewUser != nil {
		hints = "e edit • d delete • r refresh • esc back to dashboard"
	}
	b.WriteString(th.HintStyle().PaddingLeft(1).Render(hints))

	return b.String()
}
