package model

// TaskStatus represents the status of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists every valid status, in form-cycle order
var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// Valid reports whether the status is one of the enumerated values
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task represents a unit of work owned by one or more users.
// The server is the sole source of truth; a task is never assumed to
// exist beyond the last successful fetch.
type Task struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     string     `json:"dueDate"` // ISO date, as the server sends it
	Status      TaskStatus `json:"status"`
}

// StatusIcon returns the icon for the task status
func (t Task) StatusIcon() string {
	switch t.Status {
	case TaskStatusPending:
		return "○"
	case TaskStatusInProgress:
		return "●"
	case TaskStatusCompleted:
		return "✓"
	default:
		return "○"
	}
}

// StatusLabel returns the display label for the task status
func (t Task) StatusLabel() string {
	switch t.Status {
	case TaskStatusPending:
		return "Pending"
	case TaskStatusInProgress:
		return "In Progress"
	case TaskStatusCompleted:
		return "Completed"
	default:
		return string(t.Status)
	}
}
