// Package guard decides whether the current session may enter a surface.
// The decision is stateless and recomputed on every command run, since the
// session can change between runs via logout or a 401-triggered clear.
package guard

import "github.com/jobtrack-dev/jobtrack/internal/cli/session"

// Access is the capability a surface requires
type Access int

const (
	// AccessPublic surfaces render for anyone
	AccessPublic Access = iota
	// AccessAuthenticated surfaces require any session
	AccessAuthenticated
	// AccessAdminOnly surfaces require an ADMIN or SUPER_ADMIN session
	AccessAdminOnly
)

// Decision is the outcome of an access check
type Decision int

const (
	// Allow renders the surface
	Allow Decision = iota
	// RedirectLogin sends the caller to the login surface
	RedirectLogin
	// RedirectHome sends an authenticated non-admin to the default
	// landing surface
	RedirectHome
)

// Evaluate checks the current session against the required access level.
// Authenticated non-admins hitting an admin surface are sent home, never to
// login, so the check does not reveal to them whether admin surfaces exist.
func Evaluate(store session.Store, access Access) Decision {
	switch access {
	case AccessAuthenticated:
		if !session.IsAuthenticated(store) {
			return RedirectLogin
		}
	case AccessAdminOnly:
		if !session.IsAuthenticated(store) {
			return RedirectLogin
		}
		if !session.HasRole(store, session.RoleAdmin, session.RoleSuperAdmin) {
			return RedirectHome
		}
	}
	return Allow
}
