package session

import "bookcatalog/pkg/domain"

// Decision is the outcome of a guard check.
type Decision int

const (
	Allow Decision = iota
	Redirect
)

// Navigation surface.
const (
	LoginPath          = "/login"
	SignupPath         = "/signup"
	AdminDashboardPath = "/admin/dashboard"
	UserDashboardPath  = "/user/dashboard"
)

// Check decides whether a session may enter a view requiring the given
// role. A role mismatch is treated identically to no session at all.
// The check is pure and re-evaluated on every call, never cached.
func Check(s domain.Session, required domain.Role) Decision {
	if !s.Authenticated() {
		return Redirect
	}
	if s.Role != required {
		return Redirect
	}
	return Allow
}

// Route is one destination on the navigation surface.
type Route struct {
	Path     string
	Requires domain.Role
	Public   bool
}

// Routes is the guarded navigation surface: two role-gated dashboards,
// public auth pages, and a fallback for everything else.
type Routes struct {
	routes   []Route
	fallback string
}

// DefaultRoutes builds the catalog navigation surface.
func DefaultRoutes() *Routes {
	return &Routes{
		routes: []Route{
			{Path: LoginPath, Public: true},
			{Path: SignupPath, Public: true},
			{Path: AdminDashboardPath, Requires: domain.RoleAdmin},
			{Path: UserDashboardPath, Requires: domain.RoleUser},
		},
		fallback: LoginPath,
	}
}

// Resolve returns the destination the session actually lands on when
// navigating to path: the path itself when public or allowed, otherwise
// the fallback. Unmatched paths always fall back.
func (r *Routes) Resolve(path string, s domain.Session) string {
	for _, route := range r.routes {
		if route.Path != path {
			continue
		}
		if route.Public || Check(s, route.Requires) == Allow {
			return route.Path
		}
		return r.fallback
	}
	return r.fallback
}

// HomeFor returns the dashboard a freshly authenticated role lands on.
func HomeFor(role domain.Role) string {
	if role == domain.RoleAdmin {
		return AdminDashboardPath
	}
	return UserDashboardPath
}
