package tui

import (
	"testing"

	"github.com/dsubhasis934/task-management-tui/internal/auth"
	"github.com/dsubhasis934/task-management-tui/internal/model"
)

func TestResolveRoute(t *testing.T) {
	bootstrapping := auth.Session{Bootstrapping: true}
	anonymous := auth.Session{}
	user := auth.Session{User: &model.User{ID: "u1", Role: model.RoleUser}, Token: "t1"}
	admin := auth.Session{User: &model.User{ID: "a1", Role: model.RoleAdmin}, Token: "t2"}

	tests := []struct {
		name  string
		sess  auth.Session
		route Route
		want  GateOutcome
	}{
		// Bootstrapping always shows a placeholder, nothing else
		{"bootstrapping login", bootstrapping, RouteLogin, GateLoading},
		{"bootstrapping tasks", bootstrapping, RouteTasks, GateLoading},
		{"bootstrapping dashboard", bootstrapping, RouteDashboard, GateLoading},

		// Anonymous viewers see the entry views, nothing protected
		{"anonymous login", anonymous, RouteLogin, GateRender},
		{"anonymous register", anonymous, RouteRegister, GateRender},
		{"anonymous tasks", anonymous, RouteTasks, GateRedirectLogin},
		{"anonymous dashboard", anonymous, RouteDashboard, GateRedirectLogin},
		{"anonymous user tasks", anonymous, RouteUserTasks, GateRedirectLogin},

		// Authenticated users leave the entry views and cannot reach
		// admin routes; role mismatch goes home, not to login
		{"user login", user, RouteLogin, GateRedirectHome},
		{"user register", user, RouteRegister, GateRedirectHome},
		{"user tasks", user, RouteTasks, GateRender},
		{"user dashboard", user, RouteDashboard, GateRedirectHome},
		{"user drill-down", user, RouteUserTasks, GateRedirectHome},

		// Admins reach everything protected
		{"admin tasks", admin, RouteTasks, GateRender},
		{"admin dashboard", admin, RouteDashboard, GateRender},
		{"admin drill-down", admin, RouteUserTasks, GateRender},
		{"admin login", admin, RouteLogin, GateRedirectHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRoute(tt.sess, tt.route); got != tt.want {
				t.Errorf("ResolveRoute() = %v, want %v", got, tt.want)
			}
		})
	}
}
