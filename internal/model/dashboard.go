package model

// DashboardRow is one user's aggregated task statistics, computed
// entirely server-side. The client renders it and nothing more.
type DashboardRow struct {
	UserID          string `json:"_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	TotalTasks      int    `json:"totalTasks"`
	CompletedTasks  int    `json:"completedTasks"`
	InProgressTasks int    `json:"inProgressTasks"`
	PendingTasks    int    `json:"pendingTasks"`
}
