package auth

// Role is the access level assigned to a user account.
type Role string

const (
	RoleAppAdmin Role = "App_Admin"
	RoleOwner    Role = "Owner"
	RoleEditor   Role = "Editor"
	RoleViewer   Role = "Viewer"
)

// Permission is a single action a role may perform.
type Permission string

const (
	PermCreate      Permission = "create"
	PermRead        Permission = "read"
	PermUpdate      Permission = "update"
	PermDelete      Permission = "delete"
	PermManageUsers Permission = "manage_users"
	PermManageRoles Permission = "manage_roles"
)

// roleRanks orders roles for minimum-role checks. Higher wins.
var roleRanks = map[Role]int{
	RoleAppAdmin: 4,
	RoleOwner:    3,
	RoleEditor:   2,
	RoleViewer:   1,
}

// rolePermissions is the single authoritative permission table. The roles
// table in the database is seeded from this and never consulted at runtime.
var rolePermissions = map[Role][]Permission{
	RoleAppAdmin: {PermCreate, PermRead, PermUpdate, PermDelete, PermManageUsers, PermManageRoles},
	RoleOwner:    {PermCreate, PermRead, PermUpdate, PermDelete, PermManageUsers},
	RoleEditor:   {PermCreate, PermRead, PermUpdate},
	RoleViewer:   {PermRead},
}

// roleDescriptions is seed reference data for the roles table.
var roleDescriptions = map[Role]string{
	RoleAppAdmin: "Full system access including user and role management",
	RoleOwner:    "Manage content and users, cannot modify roles",
	RoleEditor:   "Create, read, and update content",
	RoleViewer:   "Read-only access to content",
}

// AllRoles returns every known role, highest rank first.
func AllRoles() []Role {
	return []Role{RoleAppAdmin, RoleOwner, RoleEditor, RoleViewer}
}

// IsValidRole reports whether r is one of the known roles.
func IsValidRole(r Role) bool {
	_, ok := roleRanks[r]
	return ok
}

// HasPermission reports whether the role is granted the permission.
func HasPermission(r Role, p Permission) bool {
	for _, granted := range rolePermissions[r] {
		if granted == p {
			return true
		}
	}
	return false
}

// HasMinimumRole reports whether userRole ranks at or above required.
// Unknown roles rank zero.
func HasMinimumRole(userRole, required Role) bool {
	return roleRanks[userRole] >= roleRanks[required]
}

// Describe returns the human description used when seeding the roles table.
func Describe(r Role) string {
	return roleDescriptions[r]
}
