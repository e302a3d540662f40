package models

// Role is the authorization class of a user. Exactly one role is assigned
// per user; an authenticated session never carries an empty role.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"

	// RoleUser is the legacy two-role variant still returned by older
	// deployments of the backend. It is treated as a distinct role, not
	// aliased, so gates configured for it keep working.
	RoleUser Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleUser:
		return true
	}
	return false
}

// User is the resolved identity of the authenticated user as returned by
// the backend.
type User struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Resolved reports whether all identity fields are present. A session is
// only considered logged in once the user is fully resolved.
func (u *User) Resolved() bool {
	return u != nil && u.ID != "" && u.Name != "" && u.Role != ""
}
