package enums

// Role defines the user role type
type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleLecturer   Role = "LECTURER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// Valid reports whether the role is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleLecturer, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role carries admin privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// CollectionPath returns the path segment the users API uses for this
// role ("students", "lecturers" or "admins"). Super admins live in the
// admins collection.
func (r Role) CollectionPath() string {
	switch r {
	case RoleStudent:
		return "students"
	case RoleLecturer:
		return "lecturers"
	case RoleAdmin, RoleSuperAdmin:
		return "admins"
	default:
		return ""
	}
}
