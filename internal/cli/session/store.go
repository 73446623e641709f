package session

// Role is the capability tier assigned to a user by the server. The client
// never computes or upgrades roles locally.
type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// ParseRole parses a string into a Role, reporting whether it is one of the
// roles the server can assign.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}

// IsValid reports whether the role is one of the predefined roles
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role grants access to admin surfaces
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// UserRecord is the user identity as returned by the server
type UserRecord struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"isActive"`
}

// Session is the authenticated identity held client-side. Token and User are
// always set together; a session with only one half is never observable.
type Session struct {
	Token string
	User  UserRecord
}

// Store persists the session across process restarts.
// This interface allows swapping the durable store for an in-memory one in tests.
type Store interface {
	// Save replaces any prior session wholesale. Both halves become
	// visible together.
	Save(token string, user UserRecord) error

	// Load returns the current session, or nil when none exists. If the
	// underlying storage holds only one of token/user, Load treats that
	// as no session.
	Load() (*Session, error)

	// Clear removes the session. Clearing an empty store is a no-op.
	Clear() error
}

// IsAuthenticated reports whether a session is present
func IsAuthenticated(s Store) bool {
	sess, err := s.Load()
	return err == nil && sess != nil
}

// HasRole reports whether a session is present and its user holds one of the
// given roles
func HasRole(s Store, roles ...Role) bool {
	sess, err := s.Load()
	if err != nil || sess == nil {
		return false
	}
	for _, role := range roles {
		if sess.User.Role == role {
			return true
		}
	}
	return false
}
