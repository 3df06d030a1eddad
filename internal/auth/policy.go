package auth

import (
	"strings"

	"barberia_backend/internal/models"
)

// RoutePolicy maps a protected path prefix to the roles allowed past it.
// This is the single source of truth consulted by the access gate; role
// checks must not be duplicated inline anywhere else.
type RoutePolicy struct {
	Prefix  string
	Allowed map[models.UserRole]bool
}

var policies = []RoutePolicy{
	{
		Prefix:  "/admin",
		Allowed: roleSet(models.UserRoleAdmin),
	},
	{
		Prefix:  "/dashboard",
		Allowed: roleSet(models.UserRoleAdmin, models.UserRoleBarber),
	},
}

func roleSet(roles ...models.UserRole) map[models.UserRole]bool {
	set := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		set[r] = true
	}
	return set
}

// Authorize classifies path and reports whether role may access it.
// Paths outside every protected prefix only require a valid token,
// which the gate has already established by the time it consults us.
func Authorize(path string, role models.UserRole) bool {
	for _, p := range policies {
		if path == p.Prefix || strings.HasPrefix(path, p.Prefix+"/") {
			return p.Allowed[role]
		}
	}
	return true
}

// HomePath returns the role-specific landing path used when a request
// targets the generic dashboard entry point.
func HomePath(role models.UserRole) string {
	switch role {
	case models.UserRoleAdmin:
		return "/dashboard/admin"
	case models.UserRoleBarber:
		return "/dashboard/barbero"
	default:
		return "/cliente"
	}
}
