package tui

import "github.com/dsubhasis934/task-management-tui/internal/auth"

// Route identifies a navigable view
type Route int

const (
	RouteLogin Route = iota
	RouteRegister
	RouteTasks
	RouteDashboard
	RouteUserTasks
)

// Protected reports whether the route requires an authenticated session
func (r Route) Protected() bool {
	switch r {
	case RouteTasks, RouteDashboard, RouteUserTasks:
		return true
	}
	return false
}

// AdminOnly reports whether the route additionally requires the admin role
func (r Route) AdminOnly() bool {
	switch r {
	case RouteDashboard, RouteUserTasks:
		return true
	}
	return false
}

// GateOutcome is the access gate's decision for a (session, route) pair
type GateOutcome int

const (
	// GateRender means the requested route may render
	GateRender GateOutcome = iota
	// GateLoading means the session is still bootstrapping; render only
	// a placeholder
	GateLoading
	// GateRedirectLogin means the viewer is anonymous on a protected
	// route
	GateRedirectLogin
	// GateRedirectHome means the route does not apply: an authenticated
	// viewer on login/register, or a non-admin on an admin route. A role
	// mismatch is not an authentication failure, so it goes to the task
	// list, not to login.
	GateRedirectHome
)

// ResolveRoute decides what may render for the session and route
func ResolveRoute(sess auth.Session, route Route) GateOutcome {
	if sess.Bootstrapping {
		return GateLoading
	}

	authenticated := sess.User != nil

	if !route.Protected() {
		if authenticated {
			return GateRedirectHome
		}
		return GateRender
	}

	if !authenticated {
		return GateRedirectLogin
	}

	if route.AdminOnly() && !sess.User.IsAdmin() {
		return GateRedirectHome
	}

	return GateRender
}
