package domain

// Permission keys, one per guarded operation.
const (
	PermAssignationsCreate = "ASSIGNATIONS.CREATE"
	PermAssignationsRead   = "ASSIGNATIONS.READ"
	PermAssignationsUpdate = "ASSIGNATIONS.UPDATE"
	PermRolesRead          = "ROLES.READ"
)

// Permission is a single allowed action on a resource.
type Permission struct {
	ID  int64  `json:"id" db:"id"`
	Key string `json:"key" db:"key"`
}

// Role is a named bundle of permissions granted to users.
type Role struct {
	ID          int64        `json:"id" db:"id"`
	Key         string       `json:"key" db:"key"`
	Title       *string      `json:"title,omitempty" db:"title"`
	Description *string      `json:"description,omitempty" db:"description"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// Principal is the request identity resolved at authentication time:
// the user plus its roles with permissions already loaded.
type Principal struct {
	User  User   `json:"user"`
	Roles []Role `json:"roles"`
}

// Authorize decides allow/deny for an operation. It fails closed: an
// empty requirement denies, a disabled caller denies, and the required
// key must appear in at least one of the caller's roles. Pure function
// over already-resolved data.
func Authorize(requiredPermission string, roles []Role, enabled bool) bool {
	if requiredPermission == "" || !enabled {
		return false
	}
	for _, role := range roles {
		for _, p := range role.Permissions {
			if p.Key == requiredPermission {
				return true
			}
		}
	}
	return false
}
