package access

// Role is the closed set of application roles. A user may hold several at
// once; there is no implied hierarchy between them.
type Role string

const (
	RoleReader           Role = "reader"
	RoleRegisteredReader Role = "registered_reader"
	RolePaidReader       Role = "paid_reader"
	RoleReporter         Role = "reporter"
	RoleAdmin            Role = "admin"
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleReader, RoleRegisteredReader, RolePaidReader, RoleReporter, RoleAdmin:
		return true
	}
	return false
}

// RoleSet is the set of roles assigned to one user.
type RoleSet []Role

func (rs RoleSet) Has(r Role) bool {
	for _, v := range rs {
		if v == r {
			return true
		}
	}
	return false
}

func (rs RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if rs.Has(r) {
			return true
		}
	}
	return false
}
