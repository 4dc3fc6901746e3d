package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dsubhasis934/task-management-tui/internal/api"
)

// updateDashboardKey handles keys on the admin dashboard
func (m Model) updateDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Pending delete-all confirmation captures y/n first
	if m.confirmRow != nil {
		switch msg.String() {
		case "y", "Y":
			row := m.confirmRow
			m.confirmRow = nil
			m.bulkDeleting = true
			m.dashNotice = ""
			m.dashErr = ""
			return m, m.bulkDeleteCmd(row.UserID)
		case "n", "N", "esc":
			m.confirmRow = nil
			return m, nil
		}
		return m, nil
	}

	if m.bulkDeleting {
		return m, nil
	}

	if next, cmd, handled := m.handleChromeKey(msg); handled {
		return next, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.rowIndex > 0 {
			m.rowIndex--
		}
		return m, nil
	case "down", "j":
		if m.rowIndex < len(m.rows)-1 {
			m.rowIndex++
		}
		return m, nil
	case "enter", "v":
		return m.drillIntoUser(false)
	case "e":
		return m.drillIntoUser(true)
	case "x":
		if m.rowIndex < len(m.rows) {
			row := m.rows[m.rowIndex]
			m.confirmRow = &row
		}
		return m, nil
	case "n":
		m.form = newTaskForm(true)
		m.dashNotice = ""
		return m, m.loadUsersCmd()
	case "r":
		m.loadingDashboard = true
		return m, m.loadDashboardCmd()
	}

	return m, nil
}

// drillIntoUser opens the selected user's task list
func (m Model) drillIntoUser(edit bool) (tea.Model, tea.Cmd) {
	if m.rowIndex >= len(m.rows) {
		return m, nil
	}
	row := m.rows[m.rowIndex]
	m.viewUser = &row
	m.editDrill = edit
	m.route = RouteUserTasks
	m.tasks = nil
	m.taskIndex = 0
	m.notice = ""
	m.loadingTasks = true
	return m, m.loadTasksCmd()
}

// updateTaskAssigned applies a finished admin bulk assignment
func (m Model) updateTaskAssigned(msg taskAssignedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.form != nil {
			m.form.submitting = false
			m.form.errMsg = api.Message(msg.err, "Failed to create task")
		}
		return m, nil
	}

	m.form = nil
	m.dashNotice = "Task assigned successfully"
	if msg.resp != nil && msg.resp.Message != "" {
		m.dashNotice = msg.resp.Message
	}
	m.loadingDashboard = true
	return m, m.loadDashboardCmd()
}

// updateBulkDeleteDone applies a finished delete-all. Partial failure
// is reported, never masked; the dashboard is refetched either way as a
// compensating refresh.
func (m Model) updateBulkDeleteDone(msg bulkDeleteDoneMsg) (tea.Model, tea.Cmd) {
	m.bulkDeleting = false

	switch {
	case msg.err != nil:
		m.dashErr = api.Message(msg.err, "Failed to delete tasks")
	default:
		failed := 0
		for _, o := range msg.outcomes {
			if o.Err != nil {
				failed++
			}
		}
		if failed > 0 {
			m.dashErr = fmt.Sprintf("Failed to delete %d of %d tasks", failed, len(msg.outcomes))
		} else {
			m.dashErr = ""
			m.dashNotice = "All tasks deleted successfully"
		}
	}

	m.loadingDashboard = true
	return m, m.loadDashboardCmd()
}

// dashboardView renders the per-user statistics table
func (m Model) dashboardView() string {
	th := m.theme
	var b strings.Builder

	b.WriteString(th.LabelStyle().PaddingLeft(1).Render("Admin Dashboard"))
	b.WriteString("\n\n")

	if m.dashNotice != "" {
		b.WriteString(th.NoticeStyle().PaddingLeft(1).Render(m.dashNotice))
		b.WriteString("\n\n")
	}
	if m.dashErr != "" {
		b.WriteString(th.ErrorStyle().PaddingLeft(1).Render(m.dashErr))
		b.WriteString("\n\n")
	}

	switch {
	case m.loadingDashboard:
		spinner := spinnerFrames[m.spinnerIndex%len(spinnerFrames)]
		b.WriteString(th.WarnStyle().PaddingLeft(1).Render(spinner + " Loading dashboard..."))
		b.WriteString("\n")
	case m.bulkDeleting:
		spinner := spinnerFrames[m.spinnerIndex%len(spinnerFrames)]
		b.WriteString(th.WarnStyle().PaddingLeft(1).Render(spinner + " Deleting tasks..."))
		b.WriteString("\n")
	case len(m.rows) == 0:
		b.WriteString(th.SubtitleStyle().PaddingLeft(1).Render("No users found"))
		b.WriteString("\n")
	default:
		header := fmt.Sprintf("%-20s %-28s %6s %10s %12s %8s",
			"User Name", "Email", "Total", "Completed", "In Progress", "Pending")
		b.WriteString(th.LabelStyle().PaddingLeft(3).Render(header))
		b.WriteString("\n")
		for i, row := range m.rows {
			line := fmt.Sprintf("%-20s %-28s %6d %10d %12d %8d",
				truncate(row.Name, 20), truncate(row.Email, 28),
				row.TotalTasks, row.CompletedTasks, row.InProgressTasks, row.PendingTasks)
			if i == m.rowIndex {
				b.WriteString(th.SelectedStyle().Render("▸ " + line))
			} else {
				b.WriteString(th.ItemStyle().Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	if m.confirmRow != nil {
		b.WriteString("\n")
		prompt := fmt.Sprintf("Delete all tasks for %s? (y/n)", m.confirmRow.Name)
		b.WriteString(th.ErrorStyle().Bold(true).PaddingLeft(1).Render(prompt))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(th.HintStyle().PaddingLeft(1).Render(
		"enter/v view tasks • e edit tasks • x delete all • n create for users • r refresh"))

	return b.String()
}

// truncate shortens s to max characters for column alignment
func truncate(s string, max int) string {
	if lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
