package portal

import "lumina/models"

// Route identifies a portal screen.
type Route string

// The fixed screen enumeration.
const (
	RouteHome           Route = "home"
	RouteTimetable      Route = "timetable"
	RouteEvaluation     Route = "evaluation"
	RouteQABoard        Route = "qa-board"
	RouteStore          Route = "store"
	RouteSettings       Route = "settings"
	RouteAdminCourses   Route = "admin-courses"
	RouteAdminUsers     Route = "admin-users"
	RouteAdminReports   Route = "admin-reports"
	RouteContentManager Route = "content-manager"
	RouteLiveScheduler  Route = "live-scheduler"
)

var allRoutes = map[Route]bool{
	RouteHome: true, RouteTimetable: true, RouteEvaluation: true,
	RouteQABoard: true, RouteStore: true, RouteSettings: true,
	RouteAdminCourses: true, RouteAdminUsers: true, RouteAdminReports: true,
	RouteContentManager: true, RouteLiveScheduler: true,
}

var adminRoutes = map[Route]bool{
	RouteAdminCourses: true,
	RouteAdminUsers:   true,
	RouteAdminReports: true,
}

// Valid reports whether the route is part of the fixed enumeration.
func (r Route) Valid() bool {
	return allRoutes[r]
}

// Authorize is the single permission gate: admin-only routes collapse to home
// for anyone who is not an admin. Every render re-evaluates it, so no
// navigation path can land a non-admin on an admin screen.
func Authorize(user *models.User, route Route) Route {
	if adminRoutes[route] && (user == nil || user.Role != models.RoleAdmin) {
		return RouteHome
	}
	return route
}
