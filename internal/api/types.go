package api

import "github.com/dsubhasis934/task-management-tui/internal/model"

// LoginRequest is the credentials payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the (user, token) pair returned by a successful login.
// Role is duplicated at the top level so callers can route by it without
// digging into the user object.
type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
	Role  model.Role `json:"role,omitempty"`
}

// SignupRequest is the registration payload for POST /auth/signup
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse is the created-account payload. Signing up does not
// authenticate; the caller must log in separately.
type SignupResponse struct {
	Message string      `json:"message,omitempty"`
	User    *model.User `json:"user,omitempty"`
}

// TaskDraft is the editable-fields payload for task create and update
type TaskDraft struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	DueDate     string           `json:"dueDate"`
	Status      model.TaskStatus `json:"status"`
}

// AssignRequest is the admin bulk-assignment payload for
// POST /task/admin/assign
type AssignRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DueDate         string   `json:"dueDate"`
	AssignedUserIDs []string `json:"assignedUserIds"`
}

// TaskResponse is the payload for task create and update. On create the
// server may report that a notification email was sent.
type TaskResponse struct {
	Task      *model.Task `json:"task,omitempty"`
	Message   string      `json:"message,omitempty"`
	EmailSent bool        `json:"emailSent,omitempty"`
}

// AssignResponse is the payload for admin bulk assignment
type AssignResponse struct {
	Tasks   []model.Task `json:"tasks,omitempty"`
	Message string       `json:"message,omitempty"`
}

// DeleteResponse is the confirmation payload for task deletion
type DeleteResponse struct {
	Message string `json:"message,omitempty"`
}

// tasksEnvelope wraps task collections the way the server sends them
type tasksEnvelope struct {
	Tasks []model.Task `json:"tasks"`
}
