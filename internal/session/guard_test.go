package session

import (
	"testing"

	"bookcatalog/pkg/domain"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		session  domain.Session
		required domain.Role
		want     Decision
	}{
		{"no session, admin route", domain.Session{}, domain.RoleAdmin, Redirect},
		{"no session, user route", domain.Session{}, domain.RoleUser, Redirect},
		{"user on admin route", domain.Session{Token: "tok1", Role: domain.RoleUser}, domain.RoleAdmin, Redirect},
		{"admin on user route", domain.Session{Token: "tok1", Role: domain.RoleAdmin}, domain.RoleUser, Redirect},
		{"admin on admin route", domain.Session{Token: "tok1", Role: domain.RoleAdmin}, domain.RoleAdmin, Allow},
		{"user on user route", domain.Session{Token: "tok1", Role: domain.RoleUser}, domain.RoleUser, Allow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Check(tt.session, tt.required); got != tt.want {
				t.Fatalf("Check(%+v, %s) = %v, want %v", tt.session, tt.required, got, tt.want)
			}
		})
	}
}

func TestRoutesResolve(t *testing.T) {
	routes := DefaultRoutes()
	admin := domain.Session{Token: "tok1", Role: domain.RoleAdmin}
	user := domain.Session{Token: "tok1", Role: domain.RoleUser}
	anon := domain.Session{}

	tests := []struct {
		name    string
		path    string
		session domain.Session
		want    string
	}{
		{"admin reaches admin dashboard", AdminDashboardPath, admin, AdminDashboardPath},
		{"user reaches user dashboard", UserDashboardPath, user, UserDashboardPath},
		{"user redirected off admin dashboard", AdminDashboardPath, user, LoginPath},
		{"anonymous redirected off user dashboard", UserDashboardPath, anon, LoginPath},
		{"login is public", LoginPath, anon, LoginPath},
		{"signup is public", SignupPath, anon, SignupPath},
		{"unmatched path falls back", "/no/such/page", admin, LoginPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := routes.Resolve(tt.path, tt.session); got != tt.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestHomeFor(t *testing.T) {
	if got := HomeFor(domain.RoleAdmin); got != AdminDashboardPath {
		t.Fatalf("HomeFor(ADMIN) = %q", got)
	}
	if got := HomeFor(domain.RoleUser); got != UserDashboardPath {
		t.Fatalf("HomeFor(USER) = %q", got)
	}
}
