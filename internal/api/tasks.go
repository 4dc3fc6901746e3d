package api

import (
	"net/http"

	"github.com/dsubhasis934/task-management-tui/internal/model"
)

// GetTasks returns the current user's tasks
func (c *Client) GetTasks() ([]model.Task, error) {
	var env tasksEnvelope
	if err := c.do(http.MethodGet, "/task", nil, &env); err != nil {
		return nil, err
	}
	return env.Tasks, nil
}

// GetTask returns a single task by ID
func (c *Client) GetTask(id string) (*model.Task, error) {
	var task model.Task
	if err := c.do(http.MethodGet, "/task/"+id, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a task owned by the current user
func (c *Client) CreateTask(draft TaskDraft) (*TaskResponse, error) {
	var resp TaskResponse
	if err := c.do(http.MethodPost, "/task", draft, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTask replaces the editable fields of one of the current user's tasks
func (c *Client) UpdateTask(id string, draft TaskDraft) (*TaskResponse, error) {
	var resp TaskResponse
	if err := c.do(http.MethodPut, "/task/"+id, draft, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTask deletes one of the current user's tasks
func (c *Client) DeleteTask(id string) (*DeleteResponse, error) {
	var resp DeleteResponse
	if err := c.do(http.MethodDelete, "/task/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDashboard returns per-user aggregated task statistics (admin only)
func (c *Client) GetDashboard() ([]model.DashboardRow, error) {
	var rows []model.DashboardRow
	if err := c.do(http.MethodGet, "/task/admin/dashboard", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// AssignTask creates a task assigned to the given users (admin only)
func (c *Client) AssignTask(req AssignRequest) (*AssignResponse, error) {
	var resp AssignResponse
	if err := c.do(http.MethodPost, "/task/admin/assign", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminUpdateTask replaces the editable fields of any user's task (admin only)
func (c *Client) AdminUpdateTask(id string, draft TaskDraft) (*TaskResponse, error) {
	var resp TaskResponse
	if err := c.do(http.MethodPut, "/task/admin/"+id, draft, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminDeleteTask deletes any user's task (admin only)
func (c *Client) AdminDeleteTask(id string) (*DeleteResponse, error) {
	var resp DeleteResponse
	if err := c.do(http.MethodDelete, "/task/admin/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetUserTasks returns one user's tasks (admin only)
func (c *Client) GetUserTasks(userID string) ([]model.Task, error) {
	var env tasksEnvelope
	if err := c.do(http.MethodGet, "/task/admin/user/"+userID, nil, &env); err != nil {
		return nil, err
	}
	return env.Tasks, nil
}
